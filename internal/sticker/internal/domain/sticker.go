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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

// 贴纸随订单走: 下单支付后生成, 打印发货后随包裹寄出, 用户贴上后激活
const (
	StatusPending Status = iota + 1
	StatusPrinting
	StatusShipped
	StatusActive
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusPrinting:
		return "PRINTING"
	case StatusShipped:
		return "SHIPPED"
	case StatusActive:
		return "ACTIVE"
	case StatusLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// Sticker 一张实体NFC贴纸, Slug 是烧录进NFC芯片与二维码里的唯一标识
type Sticker struct {
	ID        int64
	Slug      string
	OwnerID   int64
	OrderSN   string
	ProfileID int64
	Status    Status
	Ctime     int64
	Utime     int64
}
