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

const (
	RoleUser       uint8 = 1
	RoleAdmin      uint8 = 2
	RoleSuperAdmin uint8 = 3
)

type Capability string

const (
	CapabilityViewBackoffice   Capability = "view_backoffice"
	CapabilityManageOrders     Capability = "manage_orders"
	CapabilityManagePayments   Capability = "manage_payments"
	CapabilityManagePromotions Capability = "manage_promotions"
	CapabilityManageAdmins     Capability = "manage_admins"
)

// Policy 角色到能力的静态映射, 进程启动时构建一次, 之后只读
type Policy struct {
	rules map[uint8][]Capability
}

func NewPolicy() Policy {
	return Policy{
		rules: map[uint8][]Capability{
			RoleUser: {},
			RoleAdmin: {
				CapabilityViewBackoffice,
				CapabilityManageOrders,
				CapabilityManagePayments,
				CapabilityManagePromotions,
			},
			RoleSuperAdmin: {
				CapabilityViewBackoffice,
				CapabilityManageOrders,
				CapabilityManagePayments,
				CapabilityManagePromotions,
				CapabilityManageAdmins,
			},
		},
	}
}

func (p Policy) Allows(role uint8, capability Capability) bool {
	for _, c := range p.rules[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// Capabilities 返回副本, 调用方改不动内部映射
func (p Policy) Capabilities(role uint8) []Capability {
	src := p.rules[role]
	res := make([]Capability, len(src))
	copy(res, src)
	return res
}
