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
	"github.com/ecodeclub/safetap/internal/promotion/internal/domain"
	"github.com/ecodeclub/safetap/internal/promotion/internal/repository/dao"
)

var (
	ErrPromotionNotFound    = dao.ErrPromotionNotFound
	ErrDiscountCodeNotFound = dao.ErrDiscountCodeNotFound
)

//go:generate mockgen -source=repository.go -package=repomocks -destination=./mocks/repository.mock.go PromotionRepository
type PromotionRepository interface {
	SavePromotion(ctx context.Context, p domain.Promotion) (int64, error)
	FindPromotionById(ctx context.Context, id int64) (domain.Promotion, error)
	FindActivePromotions(ctx context.Context) ([]domain.Promotion, error)
	ListPromotions(ctx context.Context, offset, limit int) ([]domain.Promotion, error)
	TotalPromotions(ctx context.Context) (int64, error)
	UpdatePromotionActive(ctx context.Context, id int64, active bool) error

	SaveDiscountCode(ctx context.Context, c domain.DiscountCode) (int64, error)
	FindDiscountCodeByCode(ctx context.Context, code string) (domain.DiscountCode, error)
	ListDiscountCodes(ctx context.Context, offset, limit int) ([]domain.DiscountCode, error)
	TotalDiscountCodes(ctx context.Context) (int64, error)
	UpdateDiscountCodeActive(ctx context.Context, id int64, active bool) error
}

func NewRepository(d dao.PromotionDAO) PromotionRepository {
	return &promotionRepository{d: d}
}

type promotionRepository struct {
	d dao.PromotionDAO
}

func (p *promotionRepository) SavePromotion(ctx context.Context, promo domain.Promotion) (int64, error) {
	return p.d.Save(ctx, p.toEntity(promo))
}

func (p *promotionRepository) FindPromotionById(ctx context.Context, id int64) (domain.Promotion, error) {
	promo, err := p.d.FindById(ctx, id)
	if err != nil {
		return domain.Promotion{}, err
	}
	return p.toDomain(promo), nil
}

func (p *promotionRepository) FindActivePromotions(ctx context.Context) ([]domain.Promotion, error) {
	ps, err := p.d.FindActive(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Promotion) domain.Promotion {
		return p.toDomain(src)
	}), nil
}

func (p *promotionRepository) ListPromotions(ctx context.Context, offset, limit int) ([]domain.Promotion, error) {
	ps, err := p.d.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(ps, func(idx int, src dao.Promotion) domain.Promotion {
		return p.toDomain(src)
	}), nil
}

func (p *promotionRepository) TotalPromotions(ctx context.Context) (int64, error) {
	return p.d.Count(ctx)
}

func (p *promotionRepository) UpdatePromotionActive(ctx context.Context, id int64, active bool) error {
	return p.d.UpdateActive(ctx, id, active)
}

func (p *promotionRepository) SaveDiscountCode(ctx context.Context, c domain.DiscountCode) (int64, error) {
	return p.d.SaveDiscountCode(ctx, p.toCodeEntity(c))
}

func (p *promotionRepository) FindDiscountCodeByCode(ctx context.Context, code string) (domain.DiscountCode, error) {
	c, err := p.d.FindDiscountCodeByCode(ctx, code)
	if err != nil {
		return domain.DiscountCode{}, err
	}
	return p.toCodeDomain(c), nil
}

func (p *promotionRepository) ListDiscountCodes(ctx context.Context, offset, limit int) ([]domain.DiscountCode, error) {
	cs, err := p.d.ListDiscountCodes(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.DiscountCode) domain.DiscountCode {
		return p.toCodeDomain(src)
	}), nil
}

func (p *promotionRepository) TotalDiscountCodes(ctx context.Context) (int64, error) {
	return p.d.CountDiscountCodes(ctx)
}

func (p *promotionRepository) UpdateDiscountCodeActive(ctx context.Context, id int64, active bool) error {
	return p.d.UpdateDiscountCodeActive(ctx, id, active)
}

func (p *promotionRepository) toEntity(promo domain.Promotion) dao.Promotion {
	return dao.Promotion{
		Id:          promo.ID,
		Name:        promo.Name,
		Description: promo.Description,
		MinQuantity: promo.MinQuantity,
		Type:        promo.Type.ToUint8(),
		Value:       promo.Value,
		Active:      promo.Active,
		Priority:    promo.Priority,
		StartAt:     promo.StartAt,
		EndAt:       promo.EndAt,
	}
}

func (p *promotionRepository) toDomain(promo dao.Promotion) domain.Promotion {
	return domain.Promotion{
		ID:          promo.Id,
		Name:        promo.Name,
		Description: promo.Description,
		MinQuantity: promo.MinQuantity,
		Type:        domain.DiscountType(promo.Type),
		Value:       promo.Value,
		Active:      promo.Active,
		Priority:    promo.Priority,
		StartAt:     promo.StartAt,
		EndAt:       promo.EndAt,
		Ctime:       promo.Ctime,
		Utime:       promo.Utime,
	}
}

func (p *promotionRepository) toCodeEntity(c domain.DiscountCode) dao.DiscountCode {
	return dao.DiscountCode{
		Id:       c.ID,
		Code:     c.Code,
		Type:     c.Type.ToUint8(),
		Value:    c.Value,
		MinTotal: c.MinTotal,
		Active:   c.Active,
		StartAt:  c.StartAt,
		EndAt:    c.EndAt,
	}
}

func (p *promotionRepository) toCodeDomain(c dao.DiscountCode) domain.DiscountCode {
	return domain.DiscountCode{
		ID:       c.Id,
		Code:     c.Code,
		Type:     domain.DiscountType(c.Type),
		Value:    c.Value,
		MinTotal: c.MinTotal,
		Active:   c.Active,
		StartAt:  c.StartAt,
		EndAt:    c.EndAt,
		Ctime:    c.Ctime,
		Utime:    c.Utime,
	}
}
