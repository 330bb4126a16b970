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

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Allows(t *testing.T) {
	t.Parallel()

	policy := NewPolicy()

	testCases := []struct {
		name       string
		role       uint8
		capability Capability
		want       bool
	}{
		{name: "普通用户不能进后台", role: RoleUser, capability: CapabilityViewBackoffice, want: false},
		{name: "普通用户不能管理订单", role: RoleUser, capability: CapabilityManageOrders, want: false},
		{name: "管理员能进后台", role: RoleAdmin, capability: CapabilityViewBackoffice, want: true},
		{name: "管理员能管理订单", role: RoleAdmin, capability: CapabilityManageOrders, want: true},
		{name: "管理员能管理支付", role: RoleAdmin, capability: CapabilityManagePayments, want: true},
		{name: "管理员能管理活动", role: RoleAdmin, capability: CapabilityManagePromotions, want: true},
		{name: "管理员不能管理管理员", role: RoleAdmin, capability: CapabilityManageAdmins, want: false},
		{name: "超级管理员能管理管理员", role: RoleSuperAdmin, capability: CapabilityManageAdmins, want: true},
		{name: "超级管理员能进后台", role: RoleSuperAdmin, capability: CapabilityViewBackoffice, want: true},
		{name: "未知角色没有任何能力", role: 0, capability: CapabilityViewBackoffice, want: false},
		{name: "未知能力对谁都是拒绝", role: RoleSuperAdmin, capability: Capability("manage_everything"), want: false},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, policy.Allows(tc.role, tc.capability))
		})
	}
}

func TestPolicy_Capabilities(t *testing.T) {
	t.Parallel()

	policy := NewPolicy()
	caps := policy.Capabilities(RoleAdmin)
	assert.Len(t, caps, 4)

	// 修改返回的切片不影响内部映射
	caps[0] = CapabilityManageAdmins
	assert.False(t, policy.Allows(RoleAdmin, CapabilityManageAdmins))
}
