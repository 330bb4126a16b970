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

import (
	"github.com/ecodeclub/safetap/internal/payment"
)

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusOrdered Status = iota + 1
	StatusPaid
	StatusPrinting
	StatusShipped
	StatusActive
	StatusRejected
	StatusCancelled
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusOrdered:
		return "ORDERED"
	case StatusPaid:
		return "PAID"
	case StatusPrinting:
		return "PRINTING"
	case StatusShipped:
		return "SHIPPED"
	case StatusActive:
		return "ACTIVE"
	case StatusRejected:
		return "REJECTED"
	case StatusCancelled:
		return "CANCELLED"
	case StatusLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}

// nextStatus 正向流转: ORDERED → PAID → PRINTING → SHIPPED → ACTIVE
var nextStatus = map[Status]Status{
	StatusOrdered:  StatusPaid,
	StatusPaid:     StatusPrinting,
	StatusPrinting: StatusShipped,
	StatusShipped:  StatusActive,
}

// paymentStatusByStatus 订单状态与支付状态的对应关系, 唯一事实来源.
// 任何改写订单状态的路径都必须经由它推导支付状态, 不允许独立改写
var paymentStatusByStatus = map[Status]payment.Status{
	StatusOrdered:   payment.StatusPending,
	StatusPaid:      payment.StatusVerified,
	StatusPrinting:  payment.StatusPaid,
	StatusShipped:   payment.StatusPaid,
	StatusActive:    payment.StatusPaid,
	StatusLost:      payment.StatusPaid,
	StatusRejected:  payment.StatusRejected,
	StatusCancelled: payment.StatusCancelled,
}

// PaymentStatusFor 返回订单状态应当伴随的支付状态.
// 未知订单状态返回 ok=false, 调用方此时不得写入支付状态
func PaymentStatusFor(s Status) (payment.Status, bool) {
	ps, ok := paymentStatusByStatus[s]
	return ps, ok
}

func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusCancelled || s == StatusLost
}

// CanTransition 判定一次状态变更是否合法.
// 正向只允许流转到相邻的下一个状态, 或从任一非终态进入终态(REJECTED/CANCELLED/LOST);
// 进入 ACTIVE 要求关联支付不处于 PENDING;
// 终态不允许再流转, 回退修正走 OverrideStatus 并记审计, 不经过本判定.
// 本函数只基于调用方给定的快照做判断, "校验+落库"的原子性由调用方的事务保证
func CanTransition(current, requested Status, pay payment.Status) bool {
	if _, known := paymentStatusByStatus[current]; !known {
		return false
	}
	if _, known := paymentStatusByStatus[requested]; !known {
		return false
	}
	if current.IsTerminal() {
		return false
	}
	if requested.IsTerminal() {
		return true
	}
	if nextStatus[current] != requested {
		return false
	}
	if requested == StatusActive && pay == payment.StatusPending {
		return false
	}
	return true
}
