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

package invitation

import (
	"github.com/ecodeclub/safetap/internal/invitation/internal/domain"
	"github.com/ecodeclub/safetap/internal/invitation/internal/service"
	"github.com/ecodeclub/safetap/internal/invitation/internal/web"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Invitation   = domain.Invitation
	Status       = domain.Status
)

const (
	StatusPending  = domain.StatusPending
	StatusAccepted = domain.StatusAccepted
	StatusRevoked  = domain.StatusRevoked
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}
