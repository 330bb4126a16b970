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
	"fmt"
	"strings"
	"time"

	"github.com/ecodeclub/safetap/internal/invitation/internal/domain"
	"github.com/ecodeclub/safetap/internal/invitation/internal/repository"
	"github.com/ecodeclub/safetap/internal/user"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/sync/errgroup"
)

// 邀请码的有效期, 过期未接受就只能重新邀请
const invitationTTL = 14 * 24 * time.Hour

var (
	ErrInvitationNotFound   = repository.ErrInvitationNotFound
	ErrInvitationNotPending = repository.ErrInvitationNotPending
	// ErrInvitationExpired 邀请已过期
	ErrInvitationExpired = errors.New("邀请已过期")
	// ErrEmailMismatch 接受邀请的账号邮箱与受邀邮箱不一致
	ErrEmailMismatch = errors.New("邮箱与受邀邮箱不一致")
)

//go:generate mockgen -source=service.go -package=invitationmocks -destination=../../mocks/invitation.mock.go Service
type Service interface {
	// Invite 生成邀请码, 码由超级管理员线下交给受邀人
	Invite(ctx context.Context, inviterID int64, email string) (domain.Invitation, error)
	// Accept 受邀人登录后凭码接受邀请, 账号角色升级为管理员
	Accept(ctx context.Context, code string, uid int64) error
	// Revoke 撤销还未被接受的邀请
	Revoke(ctx context.Context, code string) error
	List(ctx context.Context, offset, limit int) ([]domain.Invitation, int64, error)
}

func NewService(repo repository.InvitationRepository, userSvc user.UserService) Service {
	return &service{
		repo:    repo,
		userSvc: userSvc,
	}
}

type service struct {
	repo    repository.InvitationRepository
	userSvc user.UserService
}

func (s *service) Invite(ctx context.Context, inviterID int64, email string) (domain.Invitation, error) {
	invitation := domain.Invitation{
		Code:      shortuuid.New(),
		InviterID: inviterID,
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Status:    domain.StatusPending,
		ExpiresAt: time.Now().Add(invitationTTL).UnixMilli(),
	}
	id, err := s.repo.Create(ctx, invitation)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("创建邀请失败: %w", err)
	}
	invitation.ID = id
	return invitation, nil
}

func (s *service) Accept(ctx context.Context, code string, uid int64) error {
	invitation, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if invitation.Status != domain.StatusPending {
		return fmt.Errorf("%w: %s", ErrInvitationNotPending, code)
	}
	if invitation.IsExpired(time.Now()) {
		return fmt.Errorf("%w: %s", ErrInvitationExpired, code)
	}
	u, err := s.userSvc.Profile(ctx, uid)
	if err != nil {
		return fmt.Errorf("查找受邀账号失败: %w", err)
	}
	if !strings.EqualFold(u.Email, invitation.Email) {
		return fmt.Errorf("%w: %s", ErrEmailMismatch, u.Email)
	}
	err = s.repo.UpdateStatus(ctx, code, domain.StatusAccepted)
	if err != nil {
		return err
	}
	return s.userSvc.UpdateRole(ctx, uid, user.RoleAdmin)
}

func (s *service) Revoke(ctx context.Context, code string) error {
	return s.repo.UpdateStatus(ctx, code, domain.StatusRevoked)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Invitation, int64, error) {
	var (
		eg          errgroup.Group
		invitations []domain.Invitation
		total       int64
	)
	eg.Go(func() error {
		var err error
		invitations, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return invitations, total, nil
}
