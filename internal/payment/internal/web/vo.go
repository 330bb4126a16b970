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

// ListPaymentsReq 后台分页查询支付记录
type ListPaymentsReq struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ListPaymentsResp struct {
	Total    int64     `json:"total"`
	Payments []Payment `json:"payments"`
}

type Payment struct {
	SN          string `json:"sn"`
	OrderSN     string `json:"orderSn"`
	PayerID     int64  `json:"payerId"`
	TotalAmount int64  `json:"totalAmount"`
	Status      uint8  `json:"status"`
	PaidAt      int64  `json:"paidAt"`
	Utime       int64  `json:"utime"`
}

// MarkTransferredReq 标记支付款项已转账
type MarkTransferredReq struct {
	PaymentSN string `json:"paymentSn"`
}
