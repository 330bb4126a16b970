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

package invitation

import (
	"sync"

	"github.com/ecodeclub/safetap/internal/invitation/internal/repository"
	"github.com/ecodeclub/safetap/internal/invitation/internal/repository/dao"
	"github.com/ecodeclub/safetap/internal/invitation/internal/service"
	"github.com/ecodeclub/safetap/internal/invitation/internal/web"
	"github.com/ecodeclub/safetap/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	repository.NewRepository,
	service.NewService,
	web.NewHandler,
	web.NewAdminHandler,
	wire.Struct(new(Module), "*"))

func InitModule(db *egorm.Component, userModule *user.Module) (*Module, error) {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*user.Module), "Svc"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.InvitationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewInvitationGORMDAO(db)
}
