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
	"bytes"
	"context"
	"testing"

	"github.com/ecodeclub/safetap/internal/pkg/sequencenumber"
	"github.com/ecodeclub/safetap/internal/profile"
	profilemocks "github.com/ecodeclub/safetap/internal/profile/mocks"
	"github.com/ecodeclub/safetap/internal/sticker/internal/domain"
	"github.com/ecodeclub/safetap/internal/sticker/internal/repository"
	repomocks "github.com/ecodeclub/safetap/internal/sticker/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSlug = "slug-test"

func newTestService(repo repository.StickerRepository, profileSvc profile.Service) Service {
	return NewService(repo, profileSvc, sequencenumber.NewGenerator(), ScanBaseURL("https://safetap.cn"))
}

func TestService_CreateStickersForOrder(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockStickerRepository(ctrl)
	repo.EXPECT().CreateStickers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, stickers []domain.Sticker) error {
			require.Len(t, stickers, 3)
			slugs := make(map[string]struct{}, len(stickers))
			for _, s := range stickers {
				assert.NotZero(t, s.Slug)
				assert.Equal(t, "OrderSN-1", s.OrderSN)
				assert.Equal(t, int64(7), s.OwnerID)
				assert.Equal(t, domain.StatusPending, s.Status)
				slugs[s.Slug] = struct{}{}
			}
			// slug 不允许重复
			assert.Len(t, slugs, 3)
			return nil
		})

	svc := newTestService(repo, profilemocks.NewMockService(ctrl))
	err := svc.CreateStickersForOrder(context.Background(), "OrderSN-1", 7, 3)
	require.NoError(t, err)
}

func TestService_Scan(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.StickerRepository, profile.Service)
		wantErr  error
		wantName string
	}{
		{
			name: "已激活且已关联_返回急救资料",
			mock: func(ctrl *gomock.Controller) (repository.StickerRepository, profile.Service) {
				repo := repomocks.NewMockStickerRepository(ctrl)
				repo.EXPECT().FindBySlug(gomock.Any(), testSlug).
					Return(domain.Sticker{ID: 1, Slug: testSlug, ProfileID: 9, Status: domain.StatusActive}, nil)
				profileSvc := profilemocks.NewMockService(ctrl)
				profileSvc.EXPECT().PublicView(gomock.Any(), int64(9)).
					Return(profile.PublicView{Name: "张三", BloodType: "O"}, nil)
				return repo, profileSvc
			},
			wantName: "张三",
		},
		{
			name: "未激活_拒绝扫码",
			mock: func(ctrl *gomock.Controller) (repository.StickerRepository, profile.Service) {
				repo := repomocks.NewMockStickerRepository(ctrl)
				repo.EXPECT().FindBySlug(gomock.Any(), testSlug).
					Return(domain.Sticker{ID: 1, Slug: testSlug, ProfileID: 9, Status: domain.StatusShipped}, nil)
				return repo, profilemocks.NewMockService(ctrl)
			},
			wantErr: ErrStickerNotActive,
		},
		{
			name: "已激活但未关联资料",
			mock: func(ctrl *gomock.Controller) (repository.StickerRepository, profile.Service) {
				repo := repomocks.NewMockStickerRepository(ctrl)
				repo.EXPECT().FindBySlug(gomock.Any(), testSlug).
					Return(domain.Sticker{ID: 1, Slug: testSlug, Status: domain.StatusActive}, nil)
				return repo, profilemocks.NewMockService(ctrl)
			},
			wantErr: ErrStickerNotLinked,
		},
		{
			name: "贴纸不存在",
			mock: func(ctrl *gomock.Controller) (repository.StickerRepository, profile.Service) {
				repo := repomocks.NewMockStickerRepository(ctrl)
				repo.EXPECT().FindBySlug(gomock.Any(), testSlug).
					Return(domain.Sticker{}, repository.ErrStickerNotFound)
				return repo, profilemocks.NewMockService(ctrl)
			},
			wantErr: ErrStickerNotFound,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := newTestService(tc.mock(ctrl))
			view, err := svc.Scan(context.Background(), testSlug)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantName, view.Name)
		})
	}
}

func TestService_LinkProfile(t *testing.T) {
	t.Parallel()

	t.Run("资料归属当前用户_关联成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockStickerRepository(ctrl)
		repo.EXPECT().LinkProfile(gomock.Any(), int64(1), int64(7), int64(9)).Return(nil)
		profileSvc := profilemocks.NewMockService(ctrl)
		profileSvc.EXPECT().Detail(gomock.Any(), int64(9), int64(7)).
			Return(profile.Profile{ID: 9, OwnerID: 7}, nil)

		svc := newTestService(repo, profileSvc)
		err := svc.LinkProfile(context.Background(), 1, 7, 9)
		require.NoError(t, err)
	})

	t.Run("资料不属于当前用户_拒绝关联", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockStickerRepository(ctrl)
		profileSvc := profilemocks.NewMockService(ctrl)
		profileSvc.EXPECT().Detail(gomock.Any(), int64(9), int64(7)).
			Return(profile.Profile{}, profile.ErrProfileNotFound)

		svc := newTestService(repo, profileSvc)
		err := svc.LinkProfile(context.Background(), 1, 7, 9)
		assert.ErrorIs(t, err, ErrProfileNotOwned)
	})
}

func TestService_QRCodePNG(t *testing.T) {
	t.Parallel()

	t.Run("生成PNG", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockStickerRepository(ctrl)
		repo.EXPECT().FindBySlug(gomock.Any(), testSlug).
			Return(domain.Sticker{ID: 1, Slug: testSlug, Status: domain.StatusShipped}, nil)

		svc := newTestService(repo, profilemocks.NewMockService(ctrl))
		png, err := svc.QRCodePNG(context.Background(), testSlug)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
	})

	t.Run("贴纸不存在", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockStickerRepository(ctrl)
		repo.EXPECT().FindBySlug(gomock.Any(), testSlug).
			Return(domain.Sticker{}, repository.ErrStickerNotFound)

		svc := newTestService(repo, profilemocks.NewMockService(ctrl))
		_, err := svc.QRCodePNG(context.Background(), testSlug)
		assert.ErrorIs(t, err, ErrStickerNotFound)
	})
}
