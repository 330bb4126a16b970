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

package order

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/safetap/internal/order/internal/event"
	"github.com/ecodeclub/safetap/internal/order/internal/repository"
	"github.com/ecodeclub/safetap/internal/order/internal/repository/dao"
	"github.com/ecodeclub/safetap/internal/order/internal/service"
	"github.com/ecodeclub/safetap/internal/order/internal/web"
	"github.com/ecodeclub/safetap/internal/payment"
	"github.com/ecodeclub/safetap/internal/pkg/sequencenumber"
	"github.com/ecodeclub/safetap/internal/promotion"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	repository.NewRepository,
	event.NewStatusChangedEventProducer,
	sequencenumber.NewGenerator,
	service.NewService,
	web.NewHandler,
	web.NewAdminHandler,
	wire.Struct(new(Module), "*"))

func InitModule(db *egorm.Component,
	cache ecache.Cache,
	q mq.MQ,
	paymentModule *payment.Module,
	promotionModule *promotion.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*payment.Module), "Svc"),
		wire.FieldsOf(new(*promotion.Module), "Svc"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}
