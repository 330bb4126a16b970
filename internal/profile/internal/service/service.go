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
	"fmt"

	"github.com/ecodeclub/safetap/internal/profile/internal/domain"
	"github.com/ecodeclub/safetap/internal/profile/internal/repository"
)

var ErrProfileNotFound = repository.ErrProfileNotFound

//go:generate mockgen -source=service.go -package=profilemocks -destination=../../mocks/profile.mock.go Service
type Service interface {
	// Save id 为 0 表示创建, 否则更新, 只能操作归属于 ownerID 的资料
	Save(ctx context.Context, profile domain.Profile) (int64, error)
	Detail(ctx context.Context, id, ownerID int64) (domain.Profile, error)
	List(ctx context.Context, ownerID int64) ([]domain.Profile, error)
	Delete(ctx context.Context, id, ownerID int64) error
	// PublicView 扫码路径, 只返回对外展示的子集
	PublicView(ctx context.Context, id int64) (domain.PublicView, error)
}

func NewService(repo repository.ProfileRepository) Service {
	return &service{repo: repo}
}

type service struct {
	repo repository.ProfileRepository
}

func (s *service) Save(ctx context.Context, profile domain.Profile) (int64, error) {
	if profile.ID == 0 {
		return s.repo.Create(ctx, profile)
	}
	err := s.repo.Update(ctx, profile)
	if err != nil {
		return 0, fmt.Errorf("更新急救资料失败: %w", err)
	}
	return profile.ID, nil
}

func (s *service) Detail(ctx context.Context, id, ownerID int64) (domain.Profile, error) {
	return s.repo.FindByIDAndOwnerID(ctx, id, ownerID)
}

func (s *service) List(ctx context.Context, ownerID int64) ([]domain.Profile, error) {
	return s.repo.FindByOwnerID(ctx, ownerID)
}

func (s *service) Delete(ctx context.Context, id, ownerID int64) error {
	return s.repo.Delete(ctx, id, ownerID)
}

func (s *service) PublicView(ctx context.Context, id int64) (domain.PublicView, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.PublicView{}, err
	}
	return profile.ToPublicView(), nil
}
