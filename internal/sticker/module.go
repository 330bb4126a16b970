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

package sticker

import (
	"github.com/ecodeclub/safetap/internal/sticker/internal/domain"
	"github.com/ecodeclub/safetap/internal/sticker/internal/event"
	"github.com/ecodeclub/safetap/internal/sticker/internal/service"
	"github.com/ecodeclub/safetap/internal/sticker/internal/web"
)

type (
	Handler = web.Handler
	Service = service.Service
	Sticker = domain.Sticker
	Status  = domain.Status
)

const (
	StatusPending  = domain.StatusPending
	StatusPrinting = domain.StatusPrinting
	StatusShipped  = domain.StatusShipped
	StatusActive   = domain.StatusActive
	StatusLost     = domain.StatusLost
)

var (
	ErrStickerNotFound  = service.ErrStickerNotFound
	ErrStickerNotLinked = service.ErrStickerNotLinked
	ErrStickerNotActive = service.ErrStickerNotActive
)

type Module struct {
	Hdl *Handler
	Svc Service
	c   *event.OrderStatusChangedConsumer
}
