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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/safetap/internal/profile/internal/domain"
	"github.com/ecodeclub/safetap/internal/profile/internal/repository/cache"
	"github.com/ecodeclub/safetap/internal/profile/internal/repository/dao"
)

var ErrProfileNotFound = dao.ErrProfileNotFound

//go:generate mockgen -source=repository.go -package=repomocks -destination=./mocks/repository.mock.go ProfileRepository
type ProfileRepository interface {
	Create(ctx context.Context, p domain.Profile) (int64, error)
	Update(ctx context.Context, p domain.Profile) error
	FindByID(ctx context.Context, id int64) (domain.Profile, error)
	FindByIDAndOwnerID(ctx context.Context, id, ownerID int64) (domain.Profile, error)
	FindByOwnerID(ctx context.Context, ownerID int64) ([]domain.Profile, error)
	Delete(ctx context.Context, id, ownerID int64) error
}

// NewCachedRepository 按ID的读路径走缓存, 更新与删除时主动失效
func NewCachedRepository(d dao.ProfileDAO, c cache.ProfileCache) ProfileRepository {
	return &profileRepository{dao: d, cache: c}
}

type profileRepository struct {
	dao   dao.ProfileDAO
	cache cache.ProfileCache
}

func (p *profileRepository) Create(ctx context.Context, profile domain.Profile) (int64, error) {
	return p.dao.Insert(ctx, p.toEntity(profile))
}

func (p *profileRepository) Update(ctx context.Context, profile domain.Profile) error {
	err := p.dao.Update(ctx, p.toEntity(profile))
	if err != nil {
		return err
	}
	return p.cache.Delete(ctx, profile.ID)
}

func (p *profileRepository) FindByID(ctx context.Context, id int64) (domain.Profile, error) {
	res, err := p.cache.Get(ctx, id)
	if err == nil {
		return res, nil
	}
	profile, err := p.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	res = p.toDomain(profile)
	// 缓存写失败不影响读路径
	_ = p.cache.Set(ctx, res)
	return res, nil
}

func (p *profileRepository) FindByIDAndOwnerID(ctx context.Context, id, ownerID int64) (domain.Profile, error) {
	profile, err := p.dao.FindByIDAndOwnerID(ctx, id, ownerID)
	if err != nil {
		return domain.Profile{}, err
	}
	return p.toDomain(profile), nil
}

func (p *profileRepository) FindByOwnerID(ctx context.Context, ownerID int64) ([]domain.Profile, error) {
	profiles, err := p.dao.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return slice.Map(profiles, func(idx int, src dao.Profile) domain.Profile {
		return p.toDomain(src)
	}), nil
}

func (p *profileRepository) Delete(ctx context.Context, id, ownerID int64) error {
	err := p.dao.Delete(ctx, id, ownerID)
	if err != nil {
		return err
	}
	return p.cache.Delete(ctx, id)
}

func (p *profileRepository) toEntity(profile domain.Profile) dao.Profile {
	return dao.Profile{
		Id:          profile.ID,
		OwnerId:     profile.OwnerID,
		Name:        profile.Name,
		BloodType:   profile.BloodType,
		Allergies:   profile.Allergies,
		Medications: profile.Medications,
		Conditions:  profile.Conditions,
		Notes:       profile.Notes,
		Contacts:    sqlx.JsonColumn[[]domain.Contact]{Val: profile.Contacts, Valid: len(profile.Contacts) > 0},
	}
}

func (p *profileRepository) toDomain(profile dao.Profile) domain.Profile {
	return domain.Profile{
		ID:          profile.Id,
		OwnerID:     profile.OwnerId,
		Name:        profile.Name,
		BloodType:   profile.BloodType,
		Allergies:   profile.Allergies,
		Medications: profile.Medications,
		Conditions:  profile.Conditions,
		Notes:       profile.Notes,
		Contacts:    profile.Contacts.Val,
		Ctime:       profile.Ctime,
		Utime:       profile.Utime,
	}
}
