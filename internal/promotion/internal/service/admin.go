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

	"github.com/ecodeclub/safetap/internal/promotion/internal/domain"
	"github.com/ecodeclub/safetap/internal/promotion/internal/repository"
	"golang.org/x/sync/errgroup"
)

type AdminService interface {
	SavePromotion(ctx context.Context, p domain.Promotion) (int64, error)
	ListPromotions(ctx context.Context, offset, limit int) ([]domain.Promotion, int64, error)
	UpdatePromotionActive(ctx context.Context, id int64, active bool) error

	SaveDiscountCode(ctx context.Context, c domain.DiscountCode) (int64, error)
	ListDiscountCodes(ctx context.Context, offset, limit int) ([]domain.DiscountCode, int64, error)
	UpdateDiscountCodeActive(ctx context.Context, id int64, active bool) error
}

func NewAdminService(repo repository.PromotionRepository) AdminService {
	return &adminService{repo: repo}
}

type adminService struct {
	repo repository.PromotionRepository
}

func (a *adminService) SavePromotion(ctx context.Context, p domain.Promotion) (int64, error) {
	return a.repo.SavePromotion(ctx, p)
}

func (a *adminService) ListPromotions(ctx context.Context, offset, limit int) ([]domain.Promotion, int64, error) {
	var (
		eg    errgroup.Group
		ps    []domain.Promotion
		total int64
	)
	eg.Go(func() error {
		var err error
		ps, err = a.repo.ListPromotions(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = a.repo.TotalPromotions(ctx)
		return err
	})
	return ps, total, eg.Wait()
}

func (a *adminService) UpdatePromotionActive(ctx context.Context, id int64, active bool) error {
	return a.repo.UpdatePromotionActive(ctx, id, active)
}

func (a *adminService) SaveDiscountCode(ctx context.Context, c domain.DiscountCode) (int64, error) {
	return a.repo.SaveDiscountCode(ctx, c)
}

func (a *adminService) ListDiscountCodes(ctx context.Context, offset, limit int) ([]domain.DiscountCode, int64, error) {
	var (
		eg    errgroup.Group
		cs    []domain.DiscountCode
		total int64
	)
	eg.Go(func() error {
		var err error
		cs, err = a.repo.ListDiscountCodes(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = a.repo.TotalDiscountCodes(ctx)
		return err
	})
	return cs, total, eg.Wait()
}

func (a *adminService) UpdateDiscountCodeActive(ctx context.Context, id int64, active bool) error {
	return a.repo.UpdateDiscountCodeActive(ctx, id, active)
}
