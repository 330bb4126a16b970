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
	"testing"

	"github.com/ecodeclub/safetap/internal/user/internal/domain"
	"github.com/ecodeclub/safetap/internal/user/internal/event"
	evtmocks "github.com/ecodeclub/safetap/internal/user/internal/event/mocks"
	"github.com/ecodeclub/safetap/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/safetap/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUserService_FindOrCreateByEmail(t *testing.T) {
	t.Parallel()

	const testEmail = "tester@example.com"

	t.Run("已注册_直接返回", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), testEmail).
			Return(domain.User{Id: 7, Email: testEmail, Role: domain.RoleUser}, nil)

		svc := NewUserService(repo, evtmocks.NewMockRegistrationEventProducer(ctrl))
		u, err := svc.FindOrCreateByEmail(context.Background(), testEmail)
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.Id)
	})

	t.Run("未注册_初始化账号并发送注册消息", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockUserRepository(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), testEmail).
			Return(domain.User{}, repository.ErrUserNotFound)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
				assert.Equal(t, testEmail, u.Email)
				assert.Equal(t, "tester", u.Nickname)
				assert.Equal(t, domain.RoleUser, u.Role)
				assert.NotZero(t, u.SN)
				return int64(8), nil
			})
		repo.EXPECT().FindById(gomock.Any(), int64(8)).
			Return(domain.User{Id: 8, Email: testEmail, Role: domain.RoleUser}, nil)

		producer := evtmocks.NewMockRegistrationEventProducer(ctrl)
		producer.EXPECT().Produce(gomock.Any(), event.RegistrationEvent{Uid: 8}).Return(nil)

		svc := NewUserService(repo, producer)
		u, err := svc.FindOrCreateByEmail(context.Background(), testEmail)
		require.NoError(t, err)
		assert.Equal(t, int64(8), u.Id)
	})
}

func TestUserService_UpdateNonSensitiveInfo(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockUserRepository(ctrl)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u domain.User) error {
			// 序列号、邮箱和角色不允许在这条路径上被修改
			assert.Zero(t, u.SN)
			assert.Zero(t, u.Email)
			assert.Zero(t, u.Role)
			assert.Equal(t, "新昵称", u.Nickname)
			return nil
		})

	svc := NewUserService(repo, evtmocks.NewMockRegistrationEventProducer(ctrl))
	err := svc.UpdateNonSensitiveInfo(context.Background(), domain.User{
		Id:       7,
		SN:       "sn-should-be-cleared",
		Email:    "x@example.com",
		Nickname: "新昵称",
		Role:     domain.RoleSuperAdmin,
	})
	require.NoError(t, err)
}
