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

package web

// PreviewReq 购物车报价
type PreviewReq struct {
	Items []CartItem `json:"items"`
}

type CartItem struct {
	SKU       string `json:"sku"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int64  `json:"quantity"`
}

type PreviewResp struct {
	OriginalTotal     int64       `json:"originalTotal"`
	TotalDiscount     int64       `json:"totalDiscount"`
	FinalTotal        int64       `json:"finalTotal"`
	AppliedPromotions []Promotion `json:"appliedPromotions"`
}

type Promotion struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MinQuantity int64  `json:"minQuantity"`
	Type        uint8  `json:"type"`
	Value       int64  `json:"value"`
	Active      bool   `json:"active"`
	Priority    int64  `json:"priority"`
	StartAt     int64  `json:"startAt,omitempty"`
	EndAt       int64  `json:"endAt,omitempty"`
	Utime       int64  `json:"utime,omitempty"`
}

// ValidateCodeReq 预览式校验优惠码
type ValidateCodeReq struct {
	Code      string `json:"code"`
	CartTotal int64  `json:"cartTotal"`
}

type ValidateCodeResp struct {
	Valid          bool   `json:"valid"`
	Message        string `json:"message,omitempty"`
	DiscountAmount int64  `json:"discountAmount"`
	FinalTotal     int64  `json:"finalTotal"`
}

// SavePromotionReq 后台创建/编辑活动
type SavePromotionReq struct {
	Promotion Promotion `json:"promotion"`
}

type ListPromotionsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListPromotionsResp struct {
	Total      int64       `json:"total"`
	Promotions []Promotion `json:"promotions"`
}

type UpdateActiveReq struct {
	ID     int64 `json:"id"`
	Active bool  `json:"active"`
}

// SaveDiscountCodeReq 后台创建/编辑优惠码
type SaveDiscountCodeReq struct {
	Code DiscountCode `json:"code"`
}

type DiscountCode struct {
	ID       int64  `json:"id,omitempty"`
	Code     string `json:"code"`
	Type     uint8  `json:"type"`
	Value    int64  `json:"value"`
	MinTotal int64  `json:"minTotal"`
	Active   bool   `json:"active"`
	StartAt  int64  `json:"startAt,omitempty"`
	EndAt    int64  `json:"endAt,omitempty"`
	Utime    int64  `json:"utime,omitempty"`
}

type ListDiscountCodesReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListDiscountCodesResp struct {
	Total int64          `json:"total"`
	Codes []DiscountCode `json:"codes"`
}
