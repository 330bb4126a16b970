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
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/safetap/internal/user/internal/domain"
	"github.com/ecodeclub/safetap/internal/user/internal/event"
	"github.com/ecodeclub/safetap/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var ErrUserNotFound = repository.ErrUserNotFound

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	Profile(ctx context.Context, id int64) (domain.User, error)
	// FindOrCreateByEmail 查找或者初始化
	// 登录认证交给外部的会话层, 这里只负责账号数据
	FindOrCreateByEmail(ctx context.Context, email string) (domain.User, error)

	// UpdateNonSensitiveInfo 更新非敏感数据
	// 你可以在这里进一步补充究竟哪些数据会被更新
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error

	// UpdateRole 只应该由后台管理类操作调用, 比如邀请接受后升级为管理员
	UpdateRole(ctx context.Context, uid int64, role uint8) error
}

type userService struct {
	repo     repository.UserRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号、邮箱和角色
	user.SN = ""
	user.Email = ""
	user.Role = 0
	return svc.repo.Update(ctx, user)
}

func (svc *userService) UpdateRole(ctx context.Context, uid int64, role uint8) error {
	return svc.repo.UpdateRole(ctx, uid, role)
}

func (svc *userService) FindOrCreateByEmail(ctx context.Context, email string) (domain.User, error) {
	// 大部分人只是登录，数据在我们这里是有的
	u, err := svc.repo.FindByEmail(ctx, email)
	if !errors.Is(err, repository.ErrUserNotFound) {
		return u, err
	}
	sn := shortuuid.New()
	nickname, _, _ := strings.Cut(email, "@")
	id, err := svc.repo.Create(ctx, domain.User{
		SN:       sn,
		Email:    email,
		Nickname: nickname,
		Role:     domain.RoleUser,
	})
	if err != nil {
		return domain.User{}, err
	}

	// 发送注册成功消息
	evt := event.RegistrationEvent{Uid: id}
	if er := svc.producer.Produce(ctx, evt); er != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(er),
			elog.Int64("uid", id))
	}
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}
