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

package domain

type DiscountType uint8

func (t DiscountType) ToUint8() uint8 {
	return uint8(t)
}

const (
	// DiscountTypePercentage Value 为百分比, 15 表示 85 折
	DiscountTypePercentage DiscountType = 1
	// DiscountTypeFixed Value 为固定减免金额, 单位为分
	DiscountTypeFixed DiscountType = 2
)

// CartItem 购物车行项, 单价单位为分
type CartItem struct {
	SKU       string
	UnitPrice int64
	Quantity  int64
}

// Promotion 按购买数量触发的折扣规则
type Promotion struct {
	ID          int64
	Name        string
	Description string
	MinQuantity int64
	Type        DiscountType
	Value       int64
	Active      bool
	Priority    int64
	// StartAt/EndAt 为毫秒时间戳, 0 表示不限
	StartAt int64
	EndAt   int64
	Ctime   int64
	Utime   int64
}

// WindowContains 判断 now(毫秒) 是否落在活动时间窗口内
func (p Promotion) WindowContains(now int64) bool {
	if p.StartAt > 0 && now < p.StartAt {
		return false
	}
	if p.EndAt > 0 && now > p.EndAt {
		return false
	}
	return true
}

// Quote 一次报价结果, 恒有 FinalTotal = OriginalTotal - Discount 且 FinalTotal >= 0
type Quote struct {
	OriginalTotal int64
	Discount      int64
	FinalTotal    int64
	Applied       []Promotion
}

// DiscountCode 字符串优惠码, 与数量型 Promotion 相互独立, 不叠加
type DiscountCode struct {
	ID       int64
	Code     string
	Type     DiscountType
	Value    int64
	MinTotal int64
	Active   bool
	StartAt  int64
	EndAt    int64
	Ctime    int64
	Utime    int64
}

// CodeValidation 优惠码校验结果, 业务拒绝通过 Valid=false 表达而非 error
type CodeValidation struct {
	Valid      bool
	Message    string
	Discount   int64
	FinalTotal int64
}
