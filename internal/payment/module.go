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

package payment

import (
	"github.com/ecodeclub/safetap/internal/payment/internal/domain"
	"github.com/ecodeclub/safetap/internal/payment/internal/service"
	"github.com/ecodeclub/safetap/internal/payment/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Payment      = domain.Payment
	Status       = domain.Status
	Service      = service.Service
)

const (
	StatusPending     = domain.StatusPending
	StatusVerified    = domain.StatusVerified
	StatusPaid        = domain.StatusPaid
	StatusRejected    = domain.StatusRejected
	StatusCancelled   = domain.StatusCancelled
	StatusTransferred = domain.StatusTransferred
)

type Module struct {
	AdminHdl *AdminHandler
	Svc      Service
}
