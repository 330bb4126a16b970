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

const StatusChangedEventName = "order_status_changed_events"

// StatusChangedEvent 订单状态变更事件.
// 以订单SN作为消息Key, 同一订单的事件保序
type StatusChangedEvent struct {
	OrderSN  string `json:"orderSN"`
	BuyerID  int64  `json:"buyerID"`
	Before   uint8  `json:"before"`
	After    uint8  `json:"after"`
	// Override 为 true 表示本次变更是后台人工修正, 不走正向流转校验
	Override bool  `json:"override"`
	ChangeAt int64 `json:"changeAt"`
}
