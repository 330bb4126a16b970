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
	"testing"

	"github.com/ecodeclub/safetap/internal/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatusFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		status Status
		want   payment.Status
		wantOK bool
	}{
		{name: "已下单对应待支付", status: StatusOrdered, want: payment.StatusPending, wantOK: true},
		{name: "已支付对应已核实", status: StatusPaid, want: payment.StatusVerified, wantOK: true},
		{name: "打印中对应已支付", status: StatusPrinting, want: payment.StatusPaid, wantOK: true},
		{name: "已发货对应已支付", status: StatusShipped, want: payment.StatusPaid, wantOK: true},
		{name: "已激活对应已支付", status: StatusActive, want: payment.StatusPaid, wantOK: true},
		{name: "已丢失对应已支付", status: StatusLost, want: payment.StatusPaid, wantOK: true},
		{name: "已拒绝对应支付拒绝", status: StatusRejected, want: payment.StatusRejected, wantOK: true},
		{name: "已取消对应支付取消", status: StatusCancelled, want: payment.StatusCancelled, wantOK: true},
		{name: "未知状态不产生支付状态", status: Status(0), wantOK: false},
		{name: "越界状态不产生支付状态", status: Status(9), wantOK: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, ok := PaymentStatusFor(tc.status)
			require.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		current   Status
		requested Status
		pay       payment.Status
		want      bool
	}{
		{name: "已下单到已支付", current: StatusOrdered, requested: StatusPaid, pay: payment.StatusPending, want: true},
		{name: "已支付到打印中", current: StatusPaid, requested: StatusPrinting, pay: payment.StatusVerified, want: true},
		{name: "打印中到已发货", current: StatusPrinting, requested: StatusShipped, pay: payment.StatusPaid, want: true},
		{name: "已发货到已激活_支付已核实", current: StatusShipped, requested: StatusActive, pay: payment.StatusVerified, want: true},
		{name: "已发货到已激活_支付待支付被拒", current: StatusShipped, requested: StatusActive, pay: payment.StatusPending, want: false},
		{name: "不允许跳级", current: StatusOrdered, requested: StatusPrinting, pay: payment.StatusVerified, want: false},
		{name: "不允许原地踏步", current: StatusPaid, requested: StatusPaid, pay: payment.StatusVerified, want: false},
		{name: "不允许走回头路", current: StatusShipped, requested: StatusPrinting, pay: payment.StatusPaid, want: false},
		{name: "任意非终态可进入已拒绝", current: StatusOrdered, requested: StatusRejected, pay: payment.StatusPending, want: true},
		{name: "任意非终态可进入已取消", current: StatusShipped, requested: StatusCancelled, pay: payment.StatusPaid, want: true},
		{name: "任意非终态可进入已丢失", current: StatusActive, requested: StatusLost, pay: payment.StatusPaid, want: true},
		{name: "终态已取消不允许再流转", current: StatusCancelled, requested: StatusPaid, pay: payment.StatusVerified, want: false},
		{name: "终态已拒绝不允许进入其他终态", current: StatusRejected, requested: StatusLost, pay: payment.StatusPaid, want: false},
		{name: "终态已丢失不允许再流转", current: StatusLost, requested: StatusActive, pay: payment.StatusPaid, want: false},
		{name: "已激活没有正向下一步", current: StatusActive, requested: StatusActive, pay: payment.StatusPaid, want: false},
		{name: "未知当前状态被拒", current: Status(0), requested: StatusPaid, pay: payment.StatusVerified, want: false},
		{name: "未知目标状态被拒", current: StatusOrdered, requested: Status(9), pay: payment.StatusPending, want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, CanTransition(tc.current, tc.requested, tc.pay))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Parallel()
	for _, s := range []Status{StatusRejected, StatusCancelled, StatusLost} {
		assert.True(t, s.IsTerminal(), s.String())
	}
	for _, s := range []Status{StatusOrdered, StatusPaid, StatusPrinting, StatusShipped, StatusActive} {
		assert.False(t, s.IsTerminal(), s.String())
	}
}
