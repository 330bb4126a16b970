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
	"time"

	"github.com/ecodeclub/safetap/internal/invitation/internal/domain"
	"github.com/ecodeclub/safetap/internal/invitation/internal/repository"
	repomocks "github.com/ecodeclub/safetap/internal/invitation/internal/repository/mocks"
	"github.com/ecodeclub/safetap/internal/user"
	usermocks "github.com/ecodeclub/safetap/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Invite(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockInvitationRepository(ctrl)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, invitation domain.Invitation) (int64, error) {
			assert.NotZero(t, invitation.Code)
			assert.Equal(t, "abc@safetap.cn", invitation.Email)
			assert.Equal(t, domain.StatusPending, invitation.Status)
			assert.InDelta(t, time.Now().Add(invitationTTL).UnixMilli(), invitation.ExpiresAt, float64(time.Minute.Milliseconds()))
			return int64(12), nil
		})
	svc := NewService(repo, usermocks.NewMockUserService(ctrl))

	invitation, err := svc.Invite(context.Background(), 3, "  Abc@safetap.cn ")

	require.NoError(t, err)
	assert.Equal(t, int64(12), invitation.ID)
	assert.Equal(t, int64(3), invitation.InviterID)
}

func TestService_Accept(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.InvitationRepository, user.UserService)
		wantErr error
	}{
		{
			name: "接受成功_账号升级为管理员",
			mock: func(ctrl *gomock.Controller) (repository.InvitationRepository, user.UserService) {
				repo := repomocks.NewMockInvitationRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "code-ok").Return(domain.Invitation{
					Code:      "code-ok",
					Email:     "abc@safetap.cn",
					Status:    domain.StatusPending,
					ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
				}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), "code-ok", domain.StatusAccepted).Return(nil)
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().Profile(gomock.Any(), int64(9)).
					Return(user.User{Id: 9, Email: "Abc@safetap.cn"}, nil)
				userSvc.EXPECT().UpdateRole(gomock.Any(), int64(9), user.RoleAdmin).Return(nil)
				return repo, userSvc
			},
		},
		{
			name: "邀请已过期",
			mock: func(ctrl *gomock.Controller) (repository.InvitationRepository, user.UserService) {
				repo := repomocks.NewMockInvitationRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "code-ok").Return(domain.Invitation{
					Code:      "code-ok",
					Email:     "abc@safetap.cn",
					Status:    domain.StatusPending,
					ExpiresAt: time.Now().Add(-time.Hour).UnixMilli(),
				}, nil)
				return repo, usermocks.NewMockUserService(ctrl)
			},
			wantErr: ErrInvitationExpired,
		},
		{
			name: "邀请已被接受",
			mock: func(ctrl *gomock.Controller) (repository.InvitationRepository, user.UserService) {
				repo := repomocks.NewMockInvitationRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "code-ok").Return(domain.Invitation{
					Code:   "code-ok",
					Email:  "abc@safetap.cn",
					Status: domain.StatusAccepted,
				}, nil)
				return repo, usermocks.NewMockUserService(ctrl)
			},
			wantErr: ErrInvitationNotPending,
		},
		{
			name: "邮箱与受邀邮箱不一致",
			mock: func(ctrl *gomock.Controller) (repository.InvitationRepository, user.UserService) {
				repo := repomocks.NewMockInvitationRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "code-ok").Return(domain.Invitation{
					Code:      "code-ok",
					Email:     "abc@safetap.cn",
					Status:    domain.StatusPending,
					ExpiresAt: time.Now().Add(time.Hour).UnixMilli(),
				}, nil)
				userSvc := usermocks.NewMockUserService(ctrl)
				userSvc.EXPECT().Profile(gomock.Any(), int64(9)).
					Return(user.User{Id: 9, Email: "other@safetap.cn"}, nil)
				return repo, userSvc
			},
			wantErr: ErrEmailMismatch,
		},
		{
			name: "邀请不存在",
			mock: func(ctrl *gomock.Controller) (repository.InvitationRepository, user.UserService) {
				repo := repomocks.NewMockInvitationRepository(ctrl)
				repo.EXPECT().FindByCode(gomock.Any(), "code-ok").
					Return(domain.Invitation{}, repository.ErrInvitationNotFound)
				return repo, usermocks.NewMockUserService(ctrl)
			},
			wantErr: ErrInvitationNotFound,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			repo, userSvc := tc.mock(ctrl)
			svc := NewService(repo, userSvc)

			err := svc.Accept(context.Background(), "code-ok", 9)

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestService_Revoke(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockInvitationRepository(ctrl)
	repo.EXPECT().UpdateStatus(gomock.Any(), "code-ok", domain.StatusRevoked).Return(nil)
	svc := NewService(repo, usermocks.NewMockUserService(ctrl))

	err := svc.Revoke(context.Background(), "code-ok")

	require.NoError(t, err)
}
