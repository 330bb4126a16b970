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
	"time"

	"github.com/ecodeclub/safetap/internal/promotion/internal/domain"
	"github.com/ecodeclub/safetap/internal/promotion/internal/repository"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ErrPromotionNotFound    = repository.ErrPromotionNotFound
	ErrDiscountCodeNotFound = repository.ErrDiscountCodeNotFound
)

var appliedCounter = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "safetap_promotions_applied_total",
	Help: "Number of quotes a promotion was applied to",
}, []string{"promotion"})

//go:generate mockgen -source=service.go -package=promotionmocks -destination=../../mocks/promotion.mock.go -typed Service
type Service interface {
	// Preview 对购物车报价, 无副作用, 可重复调用
	Preview(ctx context.Context, cart []domain.CartItem) (domain.Quote, error)
	// ValidateCode 预览式校验优惠码, 不记录核销.
	// 业务拒绝(不存在/停用/过期/未达门槛)通过 CodeValidation.Valid=false 表达,
	// error 只表示数据访问失败
	ValidateCode(ctx context.Context, code string, cartTotal int64) (domain.CodeValidation, error)
}

func NewService(repo repository.PromotionRepository) Service {
	return &service{repo: repo, now: func() int64 { return time.Now().UnixMilli() }}
}

type service struct {
	repo repository.PromotionRepository
	now  func() int64
}

func (s *service) Preview(ctx context.Context, cart []domain.CartItem) (domain.Quote, error) {
	promos, err := s.repo.FindActivePromotions(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("查找可用活动失败: %w", err)
	}
	quote := Calculate(cart, promos, s.now())
	for _, p := range quote.Applied {
		appliedCounter.WithLabelValues(p.Name).Inc()
	}
	return quote, nil
}

func (s *service) ValidateCode(ctx context.Context, code string, cartTotal int64) (domain.CodeValidation, error) {
	c, err := s.repo.FindDiscountCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrDiscountCodeNotFound) {
			return domain.CodeValidation{Valid: false, Message: "优惠码不存在"}, nil
		}
		return domain.CodeValidation{}, fmt.Errorf("查找优惠码失败: %w", err)
	}
	return ValidateCode(c, cartTotal, s.now()), nil
}
