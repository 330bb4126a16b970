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

package service

import (
	"github.com/ecodeclub/safetap/internal/permission/internal/domain"
)

//go:generate mockgen -source=service.go -package=permissionmocks -destination=../../mocks/permission.mock.go Service
type Service interface {
	Allows(role uint8, capability domain.Capability) bool
	Capabilities(role uint8) []domain.Capability
}

func NewService() Service {
	return &service{policy: domain.NewPolicy()}
}

type service struct {
	policy domain.Policy
}

func (s *service) Allows(role uint8, capability domain.Capability) bool {
	return s.policy.Allows(role, capability)
}

func (s *service) Capabilities(role uint8) []domain.Capability {
	return s.policy.Capabilities(role)
}
