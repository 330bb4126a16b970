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
	"testing"

	"github.com/ecodeclub/safetap/internal/promotion/internal/domain"
	"github.com/ecodeclub/safetap/internal/promotion/internal/repository"
	repomocks "github.com/ecodeclub/safetap/internal/promotion/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Preview(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockPromotionRepository(ctrl)
	repo.EXPECT().FindActivePromotions(gomock.Any()).Return([]domain.Promotion{
		{ID: 1, Name: "满2件9折", MinQuantity: 2, Type: domain.DiscountTypePercentage, Value: 10, Active: true, Priority: 1},
	}, nil)

	svc := NewService(repo)
	quote, err := svc.Preview(context.Background(), []domain.CartItem{
		{SKU: "sticker", UnitPrice: 6990, Quantity: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(13980), quote.OriginalTotal)
	assert.Equal(t, int64(1398), quote.Discount)
	assert.Equal(t, int64(12582), quote.FinalTotal)
	require.Len(t, quote.Applied, 1)
	assert.Equal(t, int64(1), quote.Applied[0].ID)
}

func TestService_ValidateCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) repository.PromotionRepository
		code      string
		cartTotal int64
		wantRes   domain.CodeValidation
		wantErr   bool
	}{
		{
			name: "有效优惠码",
			mock: func(ctrl *gomock.Controller) repository.PromotionRepository {
				repo := repomocks.NewMockPromotionRepository(ctrl)
				repo.EXPECT().FindDiscountCodeByCode(gomock.Any(), "SAFE15").
					Return(domain.DiscountCode{Code: "SAFE15", Type: domain.DiscountTypePercentage, Value: 15, Active: true}, nil)
				return repo
			},
			code:      "SAFE15",
			cartTotal: 10000,
			wantRes:   domain.CodeValidation{Valid: true, Discount: 1500, FinalTotal: 8500},
		},
		{
			name: "优惠码不存在是业务拒绝而非错误",
			mock: func(ctrl *gomock.Controller) repository.PromotionRepository {
				repo := repomocks.NewMockPromotionRepository(ctrl)
				repo.EXPECT().FindDiscountCodeByCode(gomock.Any(), "NOPE").
					Return(domain.DiscountCode{}, repository.ErrDiscountCodeNotFound)
				return repo
			},
			code:      "NOPE",
			cartTotal: 10000,
			wantRes:   domain.CodeValidation{Valid: false, Message: "优惠码不存在"},
		},
		{
			name: "数据访问失败向上传播",
			mock: func(ctrl *gomock.Controller) repository.PromotionRepository {
				repo := repomocks.NewMockPromotionRepository(ctrl)
				repo.EXPECT().FindDiscountCodeByCode(gomock.Any(), "SAFE15").
					Return(domain.DiscountCode{}, errors.New("db down"))
				return repo
			},
			code:      "SAFE15",
			cartTotal: 10000,
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := NewService(tc.mock(ctrl))
			res, err := svc.ValidateCode(context.Background(), tc.code, tc.cartTotal)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

// 预览模式可重复调用, 两次结果一致且不产生写操作
func TestService_ValidateCode_Idempotent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockPromotionRepository(ctrl)
	repo.EXPECT().FindDiscountCodeByCode(gomock.Any(), "SAFE15").
		Return(domain.DiscountCode{Code: "SAFE15", Type: domain.DiscountTypePercentage, Value: 15, Active: true}, nil).
		Times(2)

	svc := NewService(repo)
	first, err := svc.ValidateCode(context.Background(), "SAFE15", 48930)
	require.NoError(t, err)
	second, err := svc.ValidateCode(context.Background(), "SAFE15", 48930)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int64(7340), first.Discount)
	assert.Equal(t, int64(41590), first.FinalTotal)
}
