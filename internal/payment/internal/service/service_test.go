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

	"github.com/ecodeclub/safetap/internal/payment/internal/domain"
	"github.com/ecodeclub/safetap/internal/payment/internal/repository"
	repomocks "github.com/ecodeclub/safetap/internal/payment/internal/repository/mocks"
	"github.com/ecodeclub/safetap/internal/pkg/sequencenumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testGenerator(t *testing.T) *sequencenumber.Generator {
	t.Helper()
	return sequencenumber.NewGeneratorWith(
		func(_ time.Time) int64 { return 1753990000000 },
		func() string { return "FwnPHyTrEaSWqCkMvNbXzL" },
	)
}

func TestService_CreatePayment(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockPaymentRepository(ctrl)
	repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p domain.Payment) (domain.Payment, error) {
			assert.Equal(t, domain.StatusPending, p.Status)
			assert.Len(t, p.SN, 32)
			p.ID = 7
			return p, nil
		})
	svc := NewService(repo, testGenerator(t))

	pmt, err := svc.CreatePayment(context.Background(), domain.Payment{
		OrderID:     11,
		OrderSN:     "OrderSN-11",
		PayerID:     20018,
		TotalAmount: 48930,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), pmt.ID)
	// 序列号末四位取自付款人ID
	assert.Equal(t, "0018", pmt.SN[13:17])
}

func TestService_SyncStatus(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		status    domain.Status
		mock      func(ctrl *gomock.Controller) repository.PaymentRepository
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name:   "同步为已核验",
			status: domain.StatusVerified,
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().UpdateStatusByOrderSN(gomock.Any(), "OrderSN-1", domain.StatusVerified, int64(0)).
					Return(nil)
				return repo
			},
			assertErr: assert.NoError,
		},
		{
			name:   "同步为已支付时记录支付时间",
			status: domain.StatusPaid,
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().UpdateStatusByOrderSN(gomock.Any(), "OrderSN-1", domain.StatusPaid, gomock.Not(int64(0))).
					Return(nil)
				return repo
			},
			assertErr: assert.NoError,
		},
		{
			name:   "未知支付状态",
			status: domain.Status(200),
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				return repomocks.NewMockPaymentRepository(ctrl)
			},
			assertErr: assert.Error,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := NewService(tc.mock(ctrl), testGenerator(t))
			err := svc.SyncStatus(context.Background(), "OrderSN-1", tc.status)
			tc.assertErr(t, err)
		})
	}
}

func TestService_MarkTransferred(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) repository.PaymentRepository
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name: "已支付款项可转账",
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().FindPaymentBySN(gomock.Any(), "PaymentSN-1").
					Return(domain.Payment{
						SN:      "PaymentSN-1",
						OrderSN: "OrderSN-1",
						Status:  domain.StatusPaid,
					}, nil)
				repo.EXPECT().UpdateStatusByOrderSN(gomock.Any(), "OrderSN-1", domain.StatusTransferred, int64(0)).
					Return(nil)
				return repo
			},
			assertErr: assert.NoError,
		},
		{
			name: "待支付款项不可转账",
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().FindPaymentBySN(gomock.Any(), "PaymentSN-1").
					Return(domain.Payment{
						SN:      "PaymentSN-1",
						OrderSN: "OrderSN-1",
						Status:  domain.StatusPending,
					}, nil)
				return repo
			},
			assertErr: func(t assert.TestingT, err error, i ...any) bool {
				return assert.ErrorIs(t, err, ErrTransferNotAllowed)
			},
		},
		{
			name: "支付记录不存在",
			mock: func(ctrl *gomock.Controller) repository.PaymentRepository {
				repo := repomocks.NewMockPaymentRepository(ctrl)
				repo.EXPECT().FindPaymentBySN(gomock.Any(), "PaymentSN-1").
					Return(domain.Payment{}, repository.ErrPaymentNotFound)
				return repo
			},
			assertErr: func(t assert.TestingT, err error, i ...any) bool {
				return assert.ErrorIs(t, err, ErrPaymentNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := NewService(tc.mock(ctrl), testGenerator(t))
			err := svc.MarkTransferred(context.Background(), "PaymentSN-1")
			tc.assertErr(t, err)
		})
	}
}

func TestService_ListPayments(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockPaymentRepository(ctrl)
	repo.EXPECT().ListPayments(gomock.Any(), 0, 10).Return([]domain.Payment{
		{ID: 1, SN: "PaymentSN-1"},
		{ID: 2, SN: "PaymentSN-2"},
	}, nil)
	repo.EXPECT().TotalPayments(gomock.Any()).Return(int64(2), nil)
	svc := NewService(repo, testGenerator(t))

	ps, total, err := svc.ListPayments(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, ps, 2)
}
