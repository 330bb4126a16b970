// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/safetap/internal/sticker/internal/domain"
	"github.com/ecodeclub/safetap/internal/sticker/internal/repository/cache"
	"github.com/ecodeclub/safetap/internal/sticker/internal/repository/dao"
)

var ErrStickerNotFound = dao.ErrStickerNotFound

//go:generate mockgen -source=repository.go -package=repomocks -destination=./mocks/repository.mock.go StickerRepository
type StickerRepository interface {
	CreateStickers(ctx context.Context, stickers []domain.Sticker) error
	FindBySlug(ctx context.Context, slug string) (domain.Sticker, error)
	FindByIDAndOwnerID(ctx context.Context, id, ownerID int64) (domain.Sticker, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]domain.Sticker, error)
	FindByOrderSN(ctx context.Context, orderSN string) ([]domain.Sticker, error)
	UpdateStatusByOrderSN(ctx context.Context, orderSN string, status domain.Status) error
	LinkProfile(ctx context.Context, id, ownerID, profileID int64) error
}

// NewCachedRepository 按 slug 的读路径走缓存, 状态同步与关联变更时主动失效
func NewCachedRepository(d dao.StickerDAO, c cache.StickerCache) StickerRepository {
	return &stickerRepository{dao: d, cache: c}
}

type stickerRepository struct {
	dao   dao.StickerDAO
	cache cache.StickerCache
}

func (s *stickerRepository) CreateStickers(ctx context.Context, stickers []domain.Sticker) error {
	return s.dao.BatchInsert(ctx, slice.Map(stickers, func(idx int, src domain.Sticker) dao.Sticker {
		return s.toEntity(src)
	}))
}

func (s *stickerRepository) FindBySlug(ctx context.Context, slug string) (domain.Sticker, error) {
	res, err := s.cache.GetBySlug(ctx, slug)
	if err == nil && res.ID > 0 {
		return res, nil
	}
	sticker, err := s.dao.FindBySlug(ctx, slug)
	if err != nil {
		return domain.Sticker{}, err
	}
	res = s.toDomain(sticker)
	// 缓存写失败不影响读路径
	_ = s.cache.Set(ctx, res)
	return res, nil
}

func (s *stickerRepository) FindByIDAndOwnerID(ctx context.Context, id, ownerID int64) (domain.Sticker, error) {
	sticker, err := s.dao.FindByIDAndOwnerID(ctx, id, ownerID)
	if err != nil {
		return domain.Sticker{}, err
	}
	return s.toDomain(sticker), nil
}

func (s *stickerRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]domain.Sticker, error) {
	stickers, err := s.dao.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return slice.Map(stickers, func(idx int, src dao.Sticker) domain.Sticker {
		return s.toDomain(src)
	}), nil
}

func (s *stickerRepository) FindByOrderSN(ctx context.Context, orderSN string) ([]domain.Sticker, error) {
	stickers, err := s.dao.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return nil, err
	}
	return slice.Map(stickers, func(idx int, src dao.Sticker) domain.Sticker {
		return s.toDomain(src)
	}), nil
}

func (s *stickerRepository) UpdateStatusByOrderSN(ctx context.Context, orderSN string, status domain.Status) error {
	err := s.dao.UpdateStatusByOrderSN(ctx, orderSN, status.ToUint8())
	if err != nil {
		return err
	}
	return s.invalidateByOrderSN(ctx, orderSN)
}

func (s *stickerRepository) LinkProfile(ctx context.Context, id, ownerID, profileID int64) error {
	sticker, err := s.dao.FindByIDAndOwnerID(ctx, id, ownerID)
	if err != nil {
		return err
	}
	err = s.dao.LinkProfile(ctx, id, ownerID, profileID)
	if err != nil {
		return err
	}
	return s.cache.DeleteBySlug(ctx, sticker.Slug)
}

func (s *stickerRepository) invalidateByOrderSN(ctx context.Context, orderSN string) error {
	stickers, err := s.dao.FindByOrderSN(ctx, orderSN)
	if err != nil {
		return err
	}
	for _, sticker := range stickers {
		if er := s.cache.DeleteBySlug(ctx, sticker.Slug); er != nil {
			err = er
		}
	}
	return err
}

func (s *stickerRepository) toEntity(sticker domain.Sticker) dao.Sticker {
	return dao.Sticker{
		Id:        sticker.ID,
		Slug:      sticker.Slug,
		OwnerId:   sticker.OwnerID,
		OrderSn:   sticker.OrderSN,
		ProfileId: sticker.ProfileID,
		Status:    sticker.Status.ToUint8(),
	}
}

func (s *stickerRepository) toDomain(sticker dao.Sticker) domain.Sticker {
	return domain.Sticker{
		ID:        sticker.Id,
		Slug:      sticker.Slug,
		OwnerID:   sticker.OwnerId,
		OrderSN:   sticker.OrderSn,
		ProfileID: sticker.ProfileId,
		Status:    domain.Status(sticker.Status),
		Ctime:     sticker.Ctime,
		Utime:     sticker.Utime,
	}
}
