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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/safetap/internal/pkg/sequencenumber"
	"github.com/ecodeclub/safetap/internal/profile"
	"github.com/ecodeclub/safetap/internal/sticker/internal/domain"
	"github.com/ecodeclub/safetap/internal/sticker/internal/repository"
	"github.com/skip2/go-qrcode"
)

var (
	ErrStickerNotFound = repository.ErrStickerNotFound
	// ErrStickerNotLinked 贴纸尚未关联急救资料
	ErrStickerNotLinked = errors.New("贴纸尚未关联急救资料")
	// ErrStickerNotActive 贴纸未激活, 扫码不对外提供资料
	ErrStickerNotActive = errors.New("贴纸未激活")
	// ErrProfileNotOwned 关联的急救资料不属于当前用户
	ErrProfileNotOwned = errors.New("急救资料不属于当前用户")
)

// ScanBaseURL 扫码落地页的基础地址, 烧录进二维码
type ScanBaseURL string

//go:generate mockgen -source=service.go -package=stickermocks -destination=../../mocks/sticker.mock.go Service
type Service interface {
	// CreateStickersForOrder 订单支付后按购买数量生成贴纸
	CreateStickersForOrder(ctx context.Context, orderSN string, ownerID, quantity int64) error
	// Scan 公开扫码入口, 只服务已激活且已关联资料的贴纸
	Scan(ctx context.Context, slug string) (profile.PublicView, error)
	QRCodePNG(ctx context.Context, slug string) ([]byte, error)
	ListStickers(ctx context.Context, ownerID int64) ([]domain.Sticker, error)
	LinkProfile(ctx context.Context, id, ownerID, profileID int64) error
	SyncStatusForOrder(ctx context.Context, orderSN string, status domain.Status) error
}

func NewService(repo repository.StickerRepository,
	profileSvc profile.Service,
	slugGenerator *sequencenumber.Generator,
	scanBaseURL ScanBaseURL) Service {
	return &service{
		repo:          repo,
		profileSvc:    profileSvc,
		slugGenerator: slugGenerator,
		scanBaseURL:   string(scanBaseURL),
	}
}

type service struct {
	repo          repository.StickerRepository
	profileSvc    profile.Service
	slugGenerator *sequencenumber.Generator
	scanBaseURL   string
}

func (s *service) CreateStickersForOrder(ctx context.Context, orderSN string, ownerID, quantity int64) error {
	stickers := make([]domain.Sticker, 0, quantity)
	for i := int64(0); i < quantity; i++ {
		slug, err := s.slugGenerator.GenerateSlug()
		if err != nil {
			return fmt.Errorf("生成贴纸标识失败: %w", err)
		}
		stickers = append(stickers, domain.Sticker{
			Slug:    slug,
			OwnerID: ownerID,
			OrderSN: orderSN,
			Status:  domain.StatusPending,
		})
	}
	return s.repo.CreateStickers(ctx, stickers)
}

func (s *service) Scan(ctx context.Context, slug string) (profile.PublicView, error) {
	sticker, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return profile.PublicView{}, err
	}
	if sticker.Status != domain.StatusActive {
		return profile.PublicView{}, fmt.Errorf("%w: %s", ErrStickerNotActive, slug)
	}
	if sticker.ProfileID == 0 {
		return profile.PublicView{}, fmt.Errorf("%w: %s", ErrStickerNotLinked, slug)
	}
	return s.profileSvc.PublicView(ctx, sticker.ProfileID)
}

func (s *service) QRCodePNG(ctx context.Context, slug string) ([]byte, error) {
	if _, err := s.repo.FindBySlug(ctx, slug); err != nil {
		return nil, err
	}
	png, err := qrcode.Encode(fmt.Sprintf("%s/s/%s", s.scanBaseURL, slug), qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("生成二维码失败: %w", err)
	}
	return png, nil
}

func (s *service) ListStickers(ctx context.Context, ownerID int64) ([]domain.Sticker, error) {
	return s.repo.FindByOwnerID(ctx, ownerID)
}

func (s *service) LinkProfile(ctx context.Context, id, ownerID, profileID int64) error {
	// 资料归属校验, 防止把别人的资料挂到自己的贴纸上
	_, err := s.profileSvc.Detail(ctx, profileID, ownerID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return fmt.Errorf("%w: profileID=%d", ErrProfileNotOwned, profileID)
	}
	if err != nil {
		return fmt.Errorf("查找急救资料失败: %w", err)
	}
	return s.repo.LinkProfile(ctx, id, ownerID, profileID)
}

func (s *service) SyncStatusForOrder(ctx context.Context, orderSN string, status domain.Status) error {
	return s.repo.UpdateStatusByOrderSN(ctx, orderSN, status)
}
