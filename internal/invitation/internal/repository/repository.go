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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/safetap/internal/invitation/internal/domain"
	"github.com/ecodeclub/safetap/internal/invitation/internal/repository/dao"
)

var (
	ErrInvitationNotFound   = dao.ErrInvitationNotFound
	ErrInvitationNotPending = dao.ErrInvitationNotPending
)

//go:generate mockgen -source=repository.go -package=repomocks -destination=./mocks/repository.mock.go InvitationRepository
type InvitationRepository interface {
	Create(ctx context.Context, invitation domain.Invitation) (int64, error)
	FindByCode(ctx context.Context, code string) (domain.Invitation, error)
	List(ctx context.Context, offset, limit int) ([]domain.Invitation, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, code string, status domain.Status) error
}

func NewRepository(d dao.InvitationDAO) InvitationRepository {
	return &invitationRepository{dao: d}
}

type invitationRepository struct {
	dao dao.InvitationDAO
}

func (r *invitationRepository) Create(ctx context.Context, invitation domain.Invitation) (int64, error) {
	return r.dao.Insert(ctx, dao.Invitation{
		Code:      invitation.Code,
		InviterId: invitation.InviterID,
		Email:     invitation.Email,
		Status:    invitation.Status.ToUint8(),
		ExpiresAt: invitation.ExpiresAt,
	})
}

func (r *invitationRepository) FindByCode(ctx context.Context, code string) (domain.Invitation, error) {
	res, err := r.dao.FindByCode(ctx, code)
	if err != nil {
		return domain.Invitation{}, err
	}
	return r.toDomain(res), nil
}

func (r *invitationRepository) List(ctx context.Context, offset, limit int) ([]domain.Invitation, error) {
	res, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(res, func(idx int, src dao.Invitation) domain.Invitation {
		return r.toDomain(src)
	}), nil
}

func (r *invitationRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *invitationRepository) UpdateStatus(ctx context.Context, code string, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, code, status.ToUint8())
}

func (r *invitationRepository) toDomain(i dao.Invitation) domain.Invitation {
	return domain.Invitation{
		ID:        i.Id,
		Code:      i.Code,
		InviterID: i.InviterId,
		Email:     i.Email,
		Status:    domain.Status(i.Status),
		ExpiresAt: i.ExpiresAt,
		Ctime:     i.Ctime,
		Utime:     i.Utime,
	}
}
