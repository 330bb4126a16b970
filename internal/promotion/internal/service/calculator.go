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
	"github.com/ecodeclub/safetap/internal/promotion/internal/domain"
)

// Calculate 纯函数, 对购物车应用最优的数量型折扣.
// 候选条件: Active, 时间窗口包含 now, 购物车总数量 >= MinQuantity.
// 同时满足多个时取 Priority 最大者; Priority 相同取 ID 最小者, 保证结果确定.
// 至多应用一个 Promotion, 不叠加.
func Calculate(cart []domain.CartItem, promos []domain.Promotion, now int64) domain.Quote {
	var originalTotal, totalQuantity int64
	for _, item := range cart {
		originalTotal += item.UnitPrice * item.Quantity
		totalQuantity += item.Quantity
	}
	res := domain.Quote{
		OriginalTotal: originalTotal,
		FinalTotal:    originalTotal,
		Applied:       []domain.Promotion{},
	}
	if originalTotal <= 0 {
		return res
	}

	best, ok := pickBest(promos, totalQuantity, now)
	if !ok {
		return res
	}

	discount := discountAmount(best.Type, best.Value, originalTotal)
	res.Discount = discount
	res.FinalTotal = originalTotal - discount
	if res.FinalTotal < 0 {
		res.FinalTotal = 0
	}
	res.Applied = []domain.Promotion{best}
	return res
}

func pickBest(promos []domain.Promotion, totalQuantity, now int64) (domain.Promotion, bool) {
	var best domain.Promotion
	var found bool
	for _, p := range promos {
		if !p.Active || !p.WindowContains(now) || totalQuantity < p.MinQuantity {
			continue
		}
		if !found ||
			p.Priority > best.Priority ||
			(p.Priority == best.Priority && p.ID < best.ID) {
			best = p
			found = true
		}
	}
	return best, found
}

// discountAmount 百分比折扣四舍五入到分, 固定减免不超过总价
func discountAmount(t domain.DiscountType, value, total int64) int64 {
	switch t {
	case domain.DiscountTypePercentage:
		return (total*value + 50) / 100
	case domain.DiscountTypeFixed:
		if value > total {
			return total
		}
		return value
	default:
		return 0
	}
}

// ValidateCode 纯函数, 预览式校验优惠码, 不记录核销.
// 所有业务拒绝都以 Valid=false + Message 返回, 不返回 error.
func ValidateCode(code domain.DiscountCode, cartTotal, now int64) domain.CodeValidation {
	switch {
	case !code.Active:
		return domain.CodeValidation{Valid: false, Message: "优惠码已停用"}
	case code.StartAt > 0 && now < code.StartAt:
		return domain.CodeValidation{Valid: false, Message: "优惠码尚未生效"}
	case code.EndAt > 0 && now > code.EndAt:
		return domain.CodeValidation{Valid: false, Message: "优惠码已过期"}
	case cartTotal < code.MinTotal:
		return domain.CodeValidation{Valid: false, Message: "未达到优惠码最低消费金额"}
	}
	discount := discountAmount(code.Type, code.Value, cartTotal)
	final := cartTotal - discount
	if final < 0 {
		final = 0
	}
	return domain.CodeValidation{
		Valid:      true,
		Discount:   discount,
		FinalTotal: final,
	}
}
