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

//go:build wireinject

package sticker

import (
	"context"
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/safetap/internal/order"
	"github.com/ecodeclub/safetap/internal/pkg/sequencenumber"
	"github.com/ecodeclub/safetap/internal/profile"
	"github.com/ecodeclub/safetap/internal/sticker/internal/event"
	"github.com/ecodeclub/safetap/internal/sticker/internal/repository"
	"github.com/ecodeclub/safetap/internal/sticker/internal/repository/cache"
	"github.com/ecodeclub/safetap/internal/sticker/internal/repository/dao"
	"github.com/ecodeclub/safetap/internal/sticker/internal/service"
	"github.com/ecodeclub/safetap/internal/sticker/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	cache.NewStickerECache,
	repository.NewCachedRepository,
	sequencenumber.NewGenerator,
	initScanBaseURL,
	service.NewService,
	web.NewHandler,
	initOrderStatusChangedConsumer,
	wire.Struct(new(Module), "*"))

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	orderModule *order.Module,
	profileModule *profile.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*order.Module), "Svc"),
		wire.FieldsOf(new(*profile.Module), "Svc"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.StickerDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewStickerGORMDAO(db)
}

func initScanBaseURL() service.ScanBaseURL {
	return service.ScanBaseURL(econf.GetString("sticker.scanBaseURL"))
}

func initOrderStatusChangedConsumer(svc service.Service, orderSvc order.Service, q mq.MQ) *event.OrderStatusChangedConsumer {
	c, err := event.NewOrderStatusChangedConsumer(svc, orderSvc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
