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

// CreateOrderReq 创建订单请求
type CreateOrderReq struct {
	RequestID string `json:"requestID"` // 请求去重, 防止订单重复提交
	Items     []Item `json:"items"`
}

type Item struct {
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	OriginalPrice int64  `json:"originalPrice"`
	RealPrice     int64  `json:"realPrice"`
	Quantity      int64  `json:"quantity"`
}

type CreateOrderResp struct {
	OrderSN string `json:"orderSN"` // 前端用于轮询订单状态
}

// RetrieveOrderStatusReq 获取订单状态
type RetrieveOrderStatusReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderStatusResp struct {
	OrderStatus uint8 `json:"status"`
}

// ListOrdersReq 分页查询订单
type ListOrdersReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListOrdersResp struct {
	Total  int64   `json:"total,omitempty"`
	Orders []Order `json:"orders,omitempty"`
}

// RetrieveOrderDetailReq 获取订单详情
type RetrieveOrderDetailReq struct {
	OrderSN string `json:"sn"`
}

type RetrieveOrderDetailResp struct {
	Order Order `json:"order"`
}

type Order struct {
	SN                 string  `json:"sn"`
	Payment            Payment `json:"payment"`
	OriginalTotalPrice int64   `json:"originalTotalPrice"`
	TotalDiscount      int64   `json:"totalDiscount"`
	RealTotalPrice     int64   `json:"realTotalPrice"`
	Status             uint8   `json:"status"`
	Items              []Item  `json:"items"`
	Ctime              int64   `json:"ctime"`
	Utime              int64   `json:"utime"`
}

type Payment struct {
	SN     string `json:"sn"`
	Status uint8  `json:"status,omitempty"`
}

// CancelOrderReq 取消订单
type CancelOrderReq struct {
	OrderSN string `json:"sn"`
}

// UpdateOrderStatusReq 后台正向推进订单状态
type UpdateOrderStatusReq struct {
	OrderSN string `json:"sn"`
	Status  uint8  `json:"status"`
}

// OverrideOrderStatusReq 后台回退修正订单状态, 需要填写原因
type OverrideOrderStatusReq struct {
	OrderSN string `json:"sn"`
	Status  uint8  `json:"status"`
	Reason  string `json:"reason"`
}
