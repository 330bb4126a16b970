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

	"github.com/ecodeclub/safetap/internal/profile/internal/domain"
	"github.com/ecodeclub/safetap/internal/profile/internal/repository"
	repomocks "github.com/ecodeclub/safetap/internal/profile/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Save(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name    string
		profile domain.Profile
		mock    func(ctrl *gomock.Controller) repository.ProfileRepository
		wantID  int64
	}{
		{
			name: "ID为0走创建",
			profile: domain.Profile{
				OwnerID:   3,
				Name:      "张三",
				BloodType: "O+",
			},
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.Profile{
					OwnerID:   3,
					Name:      "张三",
					BloodType: "O+",
				}).Return(int64(15), nil)
				return repo
			},
			wantID: 15,
		},
		{
			name: "ID非0走更新",
			profile: domain.Profile{
				ID:        15,
				OwnerID:   3,
				Name:      "张三",
				Allergies: "青霉素",
			},
			mock: func(ctrl *gomock.Controller) repository.ProfileRepository {
				repo := repomocks.NewMockProfileRepository(ctrl)
				repo.EXPECT().Update(gomock.Any(), domain.Profile{
					ID:        15,
					OwnerID:   3,
					Name:      "张三",
					Allergies: "青霉素",
				}).Return(nil)
				return repo
			},
			wantID: 15,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := NewService(tc.mock(ctrl))
			id, err := svc.Save(context.Background(), tc.profile)
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestService_PublicView(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockProfileRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(15)).Return(domain.Profile{
		ID:          15,
		OwnerID:     3,
		Name:        "张三",
		BloodType:   "O+",
		Allergies:   "青霉素",
		Medications: "硝酸甘油",
		Contacts: []domain.Contact{
			{Name: "李四", Relation: "配偶", Phone: "13800000000"},
		},
		Ctime: 1000,
		Utime: 2000,
	}, nil)
	svc := NewService(repo)

	view, err := svc.PublicView(context.Background(), 15)
	require.NoError(t, err)
	// 对外视图不含内部ID与归属信息
	assert.Equal(t, domain.PublicView{
		Name:        "张三",
		BloodType:   "O+",
		Allergies:   "青霉素",
		Medications: "硝酸甘油",
		Contacts: []domain.Contact{
			{Name: "李四", Relation: "配偶", Phone: "13800000000"},
		},
	}, view)
}

func TestService_PublicViewNotFound(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockProfileRepository(ctrl)
	repo.EXPECT().FindByID(gomock.Any(), int64(404)).
		Return(domain.Profile{}, repository.ErrProfileNotFound)
	svc := NewService(repo)

	_, err := svc.PublicView(context.Background(), 404)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
