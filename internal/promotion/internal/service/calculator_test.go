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
	"testing"
	"time"

	"github.com/ecodeclub/safetap/internal/promotion/internal/domain"
	"github.com/stretchr/testify/assert"
)

// 数量阶梯: 满2件9折, 满5件85折, 满10件8折, 满25件75折
func quantityTiers() []domain.Promotion {
	return []domain.Promotion{
		{ID: 1, Name: "满2件9折", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 10, Active: true, Priority: 1},
		{ID: 2, Name: "满5件85折", MinQuantity: 5, Type: domain.DiscountTypePercentage, Value: 15, Active: true, Priority: 2},
		{ID: 3, Name: "满10件8折", MinQuantity: 10, Type: domain.DiscountTypePercentage, Value: 20, Active: true, Priority: 3},
		{ID: 4, Name: "满25件75折", MinQuantity: 25, Type: domain.DiscountTypePercentage, Value: 25, Active: true, Priority: 4},
	}
}

func TestCalculate(t *testing.T) {
	t.Parallel()
	now := time.Now().UnixMilli()

	testCases := []struct {
		name    string
		cart    []domain.CartItem
		promos  []domain.Promotion
		wantRes domain.Quote
	}{
		{
			name:   "7件命中85折",
			cart:   []domain.CartItem{{SKU: "sticker", UnitPrice: 6990, Quantity: 7}},
			promos: quantityTiers(),
			wantRes: domain.Quote{
				OriginalTotal: 48930,
				Discount:      7340,
				FinalTotal:    41590,
				Applied:       []domain.Promotion{quantityTiers()[1]},
			},
		},
		{
			name:   "1件无可用活动",
			cart:   []domain.CartItem{{SKU: "sticker", UnitPrice: 6990, Quantity: 1}},
			promos: quantityTiers(),
			wantRes: domain.Quote{
				OriginalTotal: 6990,
				Discount:      0,
				FinalTotal:    6990,
				Applied:       []domain.Promotion{},
			},
		},
		{
			name:   "空购物车",
			cart:   nil,
			promos: quantityTiers(),
			wantRes: domain.Quote{
				OriginalTotal: 0,
				Discount:      0,
				FinalTotal:    0,
				Applied:       []domain.Promotion{},
			},
		},
		{
			name: "多行项按总数量计",
			cart: []domain.CartItem{
				{SKU: "sticker-red", UnitPrice: 6990, Quantity: 3},
				{SKU: "sticker-blue", UnitPrice: 6990, Quantity: 4},
			},
			promos: quantityTiers(),
			wantRes: domain.Quote{
				OriginalTotal: 48930,
				Discount:      7340,
				FinalTotal:    41590,
				Applied:       []domain.Promotion{quantityTiers()[1]},
			},
		},
		{
			name: "同优先级取ID小者",
			cart: []domain.CartItem{{SKU: "sticker", UnitPrice: 1000, Quantity: 5}},
			promos: []domain.Promotion{
				{ID: 9, Name: "B", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 20, Active: true, Priority: 7},
				{ID: 3, Name: "A", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 10, Active: true, Priority: 7},
			},
			wantRes: domain.Quote{
				OriginalTotal: 5000,
				Discount:      500,
				FinalTotal:    4500,
				Applied: []domain.Promotion{
					{ID: 3, Name: "A", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 10, Active: true, Priority: 7},
				},
			},
		},
		{
			name: "停用活动不参与",
			cart: []domain.CartItem{{SKU: "sticker", UnitPrice: 1000, Quantity: 5}},
			promos: []domain.Promotion{
				{ID: 1, Name: "停用", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 50, Active: false, Priority: 9},
				{ID: 2, Name: "可用", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 10, Active: true, Priority: 1},
			},
			wantRes: domain.Quote{
				OriginalTotal: 5000,
				Discount:      500,
				FinalTotal:    4500,
				Applied: []domain.Promotion{
					{ID: 2, Name: "可用", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 10, Active: true, Priority: 1},
				},
			},
		},
		{
			name: "窗口外活动不参与",
			cart: []domain.CartItem{{SKU: "sticker", UnitPrice: 1000, Quantity: 5}},
			promos: []domain.Promotion{
				{ID: 1, Name: "已结束", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 50, Active: true, Priority: 9, EndAt: now - 1000},
				{ID: 2, Name: "未开始", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 50, Active: true, Priority: 8, StartAt: now + 1000},
			},
			wantRes: domain.Quote{
				OriginalTotal: 5000,
				Discount:      0,
				FinalTotal:    5000,
				Applied:       []domain.Promotion{},
			},
		},
		{
			name: "固定减免不超过总价",
			cart: []domain.CartItem{{SKU: "sticker", UnitPrice: 500, Quantity: 2}},
			promos: []domain.Promotion{
				{ID: 1, Name: "立减100元", MinQuantity: 2, Type: domain.DiscountTypeFixed, Value: 10000, Active: true, Priority: 1},
			},
			wantRes: domain.Quote{
				OriginalTotal: 1000,
				Discount:      1000,
				FinalTotal:    0,
				Applied: []domain.Promotion{
					{ID: 1, Name: "立减100元", MinQuantity: 2, Type: domain.DiscountTypeFixed, Value: 10000, Active: true, Priority: 1},
				},
			},
		},
		{
			name: "百分比四舍五入到分",
			cart: []domain.CartItem{{SKU: "sticker", UnitPrice: 333, Quantity: 3}},
			promos: []domain.Promotion{
				{ID: 1, Name: "85折", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 15, Active: true, Priority: 1},
			},
			wantRes: domain.Quote{
				// 999 * 0.15 = 149.85 -> 150
				OriginalTotal: 999,
				Discount:      150,
				FinalTotal:    849,
				Applied: []domain.Promotion{
					{ID: 1, Name: "85折", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 15, Active: true, Priority: 1},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := Calculate(tc.cart, tc.promos, now)
			assert.Equal(t, tc.wantRes, res)
			// 恒等式
			assert.Equal(t, res.OriginalTotal-res.Discount, res.FinalTotal)
			assert.GreaterOrEqual(t, res.FinalTotal, int64(0))
		})
	}
}

func TestCalculate_AtMostOnePromotion(t *testing.T) {
	t.Parallel()
	res := Calculate(
		[]domain.CartItem{{SKU: "sticker", UnitPrice: 6990, Quantity: 30}},
		quantityTiers(),
		time.Now().UnixMilli(),
	)
	// 满足全部阶梯时只套用优先级最高的一个, 不叠加
	assert.Len(t, res.Applied, 1)
	assert.Equal(t, int64(4), res.Applied[0].ID)
}

func TestValidateCode(t *testing.T) {
	t.Parallel()
	now := time.Now().UnixMilli()

	testCases := []struct {
		name      string
		code      domain.DiscountCode
		cartTotal int64
		wantRes   domain.CodeValidation
	}{
		{
			name:      "百分比优惠码有效",
			code:      domain.DiscountCode{Code: "SAFE15", Type: domain.DiscountTypePercentage, Value: 15, Active: true},
			cartTotal: 48930,
			wantRes:   domain.CodeValidation{Valid: true, Discount: 7340, FinalTotal: 41590},
		},
		{
			name:      "固定金额优惠码有效",
			code:      domain.DiscountCode{Code: "MINUS10", Type: domain.DiscountTypeFixed, Value: 1000, Active: true},
			cartTotal: 5000,
			wantRes:   domain.CodeValidation{Valid: true, Discount: 1000, FinalTotal: 4000},
		},
		{
			name:      "已停用",
			code:      domain.DiscountCode{Code: "OLD", Type: domain.DiscountTypeFixed, Value: 1000, Active: false},
			cartTotal: 5000,
			wantRes:   domain.CodeValidation{Valid: false, Message: "优惠码已停用"},
		},
		{
			name:      "已过期",
			code:      domain.DiscountCode{Code: "EXPIRED", Type: domain.DiscountTypeFixed, Value: 1000, Active: true, EndAt: now - 1},
			cartTotal: 5000,
			wantRes:   domain.CodeValidation{Valid: false, Message: "优惠码已过期"},
		},
		{
			name:      "尚未生效",
			code:      domain.DiscountCode{Code: "SOON", Type: domain.DiscountTypeFixed, Value: 1000, Active: true, StartAt: now + 10000},
			cartTotal: 5000,
			wantRes:   domain.CodeValidation{Valid: false, Message: "优惠码尚未生效"},
		},
		{
			name:      "未达最低消费",
			code:      domain.DiscountCode{Code: "BIG", Type: domain.DiscountTypeFixed, Value: 1000, Active: true, MinTotal: 10000},
			cartTotal: 5000,
			wantRes:   domain.CodeValidation{Valid: false, Message: "未达到优惠码最低消费金额"},
		},
		{
			name:      "减免封顶到购物车总价",
			code:      domain.DiscountCode{Code: "HUGE", Type: domain.DiscountTypeFixed, Value: 99999, Active: true},
			cartTotal: 5000,
			wantRes:   domain.CodeValidation{Valid: true, Discount: 5000, FinalTotal: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := ValidateCode(tc.code, tc.cartTotal, now)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}
