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

type Order struct {
	ID                 int64
	SN                 string
	BuyerID            int64
	PaymentID          int64
	PaymentSN          string
	OriginalTotalPrice int64
	TotalDiscount      int64
	RealTotalPrice     int64
	AppliedPromotionID int64
	Status             Status
	Items              []Item
	ClosedAt           int64
	Ctime              int64
	Utime              int64
}

// Item 订单行项, 每行对应一种贴纸SKU
type Item struct {
	OrderID       int64
	SKU           string
	Name          string
	OriginalPrice int64
	RealPrice     int64
	Quantity      int64
}

// StatusOverride 后台人工修正状态的审计记录
type StatusOverride struct {
	ID       int64
	OrderSN  string
	AdminUID int64
	Before   Status
	After    Status
	Reason   string
	Ctime    int64
}
