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

package event

const orderStatusChangedEvents = "order_status_changed_events"

// OrderStatusChangedEvent 与订单模块发布的事件结构保持一致
type OrderStatusChangedEvent struct {
	OrderSN  string `json:"orderSN"`
	BuyerID  int64  `json:"buyerID"`
	Before   uint8  `json:"before"`
	After    uint8  `json:"after"`
	Override bool   `json:"override"`
	ChangeAt int64  `json:"changeAt"`
}
