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

	"github.com/ecodeclub/safetap/internal/order/internal/domain"
	"github.com/ecodeclub/safetap/internal/order/internal/event"
	evtmocks "github.com/ecodeclub/safetap/internal/order/internal/event/mocks"
	"github.com/ecodeclub/safetap/internal/order/internal/repository"
	repomocks "github.com/ecodeclub/safetap/internal/order/internal/repository/mocks"
	"github.com/ecodeclub/safetap/internal/payment"
	paymentmocks "github.com/ecodeclub/safetap/internal/payment/mocks"
	"github.com/ecodeclub/safetap/internal/pkg/sequencenumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testOrderSN = "OrderSN-test"

func newTestService(repo repository.OrderRepository, paymentSvc payment.Service, producer event.StatusChangedEventProducer) Service {
	return NewService(repo, paymentSvc, producer, sequencenumber.NewGenerator())
}

func TestService_UpdateStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) (repository.OrderRepository, payment.Service, event.StatusChangedEventProducer)
		requested domain.Status
		wantErr   error
	}{
		{
			name: "合法流转_已下单到已支付",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, payment.Service, event.StatusChangedEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindOrderBySN(gomock.Any(), testOrderSN).
					Return(domain.Order{SN: testOrderSN, BuyerID: 7, Status: domain.StatusOrdered}, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), testOrderSN, domain.StatusOrdered, domain.StatusPaid).
					Return(nil)

				paymentSvc := paymentmocks.NewMockService(ctrl)
				paymentSvc.EXPECT().FindPaymentByOrderSN(gomock.Any(), testOrderSN).
					Return(payment.Payment{OrderSN: testOrderSN, Status: payment.StatusPending}, nil)
				// 已支付对应的支付状态是已核实, 由映射推导而来
				paymentSvc.EXPECT().SyncStatus(gomock.Any(), testOrderSN, payment.StatusVerified).
					Return(nil)

				producer := evtmocks.NewMockStatusChangedEventProducer(ctrl)
				producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
				return repo, paymentSvc, producer
			},
			requested: domain.StatusPaid,
		},
		{
			name: "非法流转_已发货直接激活但支付仍是待支付",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, payment.Service, event.StatusChangedEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindOrderBySN(gomock.Any(), testOrderSN).
					Return(domain.Order{SN: testOrderSN, BuyerID: 7, Status: domain.StatusShipped}, nil)

				paymentSvc := paymentmocks.NewMockService(ctrl)
				paymentSvc.EXPECT().FindPaymentByOrderSN(gomock.Any(), testOrderSN).
					Return(payment.Payment{OrderSN: testOrderSN, Status: payment.StatusPending}, nil)
				return repo, paymentSvc, evtmocks.NewMockStatusChangedEventProducer(ctrl)
			},
			requested: domain.StatusActive,
			wantErr:   ErrInvalidStatusTransition,
		},
		{
			name: "非法流转_跳级",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, payment.Service, event.StatusChangedEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindOrderBySN(gomock.Any(), testOrderSN).
					Return(domain.Order{SN: testOrderSN, BuyerID: 7, Status: domain.StatusOrdered}, nil)

				paymentSvc := paymentmocks.NewMockService(ctrl)
				paymentSvc.EXPECT().FindPaymentByOrderSN(gomock.Any(), testOrderSN).
					Return(payment.Payment{OrderSN: testOrderSN, Status: payment.StatusPending}, nil)
				return repo, paymentSvc, evtmocks.NewMockStatusChangedEventProducer(ctrl)
			},
			requested: domain.StatusShipped,
			wantErr:   ErrInvalidStatusTransition,
		},
		{
			name: "并发竞争_前置条件未命中",
			mock: func(ctrl *gomock.Controller) (repository.OrderRepository, payment.Service, event.StatusChangedEventProducer) {
				repo := repomocks.NewMockOrderRepository(ctrl)
				repo.EXPECT().FindOrderBySN(gomock.Any(), testOrderSN).
					Return(domain.Order{SN: testOrderSN, BuyerID: 7, Status: domain.StatusOrdered}, nil)
				repo.EXPECT().UpdateOrderStatus(gomock.Any(), testOrderSN, domain.StatusOrdered, domain.StatusPaid).
					Return(repository.ErrStatusConflict)

				paymentSvc := paymentmocks.NewMockService(ctrl)
				paymentSvc.EXPECT().FindPaymentByOrderSN(gomock.Any(), testOrderSN).
					Return(payment.Payment{OrderSN: testOrderSN, Status: payment.StatusPending}, nil)
				return repo, paymentSvc, evtmocks.NewMockStatusChangedEventProducer(ctrl)
			},
			requested: domain.StatusPaid,
			wantErr:   ErrStatusConflict,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			svc := newTestService(tc.mock(ctrl))
			err := svc.UpdateStatus(context.Background(), testOrderSN, tc.requested)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestService_OverrideStatus(t *testing.T) {
	t.Parallel()

	t.Run("回退修正落审计并同步支付状态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockOrderRepository(ctrl)
		repo.EXPECT().FindOrderBySN(gomock.Any(), testOrderSN).
			Return(domain.Order{SN: testOrderSN, BuyerID: 7, Status: domain.StatusShipped}, nil)
		repo.EXPECT().OverrideOrderStatus(gomock.Any(), domain.StatusOverride{
			OrderSN:  testOrderSN,
			AdminUID: 99,
			Before:   domain.StatusShipped,
			After:    domain.StatusPrinting,
			Reason:   "贴纸打印瑕疵, 重新打印",
		}).Return(nil)

		paymentSvc := paymentmocks.NewMockService(ctrl)
		paymentSvc.EXPECT().SyncStatus(gomock.Any(), testOrderSN, payment.StatusPaid).Return(nil)

		producer := evtmocks.NewMockStatusChangedEventProducer(ctrl)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, evt event.StatusChangedEvent) error {
				assert.True(t, evt.Override)
				assert.Equal(t, domain.StatusShipped.ToUint8(), evt.Before)
				assert.Equal(t, domain.StatusPrinting.ToUint8(), evt.After)
				return nil
			})

		svc := newTestService(repo, paymentSvc, producer)
		err := svc.OverrideStatus(context.Background(), domain.StatusOverride{
			OrderSN:  testOrderSN,
			AdminUID: 99,
			After:    domain.StatusPrinting,
			Reason:   "贴纸打印瑕疵, 重新打印",
		})
		require.NoError(t, err)
	})

	t.Run("未知目标状态直接拒绝", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := newTestService(
			repomocks.NewMockOrderRepository(ctrl),
			paymentmocks.NewMockService(ctrl),
			evtmocks.NewMockStatusChangedEventProducer(ctrl),
		)
		err := svc.OverrideStatus(context.Background(), domain.StatusOverride{
			OrderSN: testOrderSN,
			After:   domain.Status(42),
			Reason:  "测试",
		})
		assert.ErrorIs(t, err, ErrInvalidOverrideStatus)
	})
}

func TestService_CancelOrder(t *testing.T) {
	t.Parallel()

	t.Run("只允许取消已下单的订单", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		svc := newTestService(
			repomocks.NewMockOrderRepository(ctrl),
			paymentmocks.NewMockService(ctrl),
			evtmocks.NewMockStatusChangedEventProducer(ctrl),
		)
		err := svc.CancelOrder(context.Background(), domain.Order{
			SN:     testOrderSN,
			Status: domain.StatusPaid,
		})
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("取消成功同步支付状态", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockOrderRepository(ctrl)
		repo.EXPECT().UpdateOrderStatus(gomock.Any(), testOrderSN, domain.StatusOrdered, domain.StatusCancelled).
			Return(nil)

		paymentSvc := paymentmocks.NewMockService(ctrl)
		paymentSvc.EXPECT().SyncStatus(gomock.Any(), testOrderSN, payment.StatusCancelled).Return(nil)

		producer := evtmocks.NewMockStatusChangedEventProducer(ctrl)
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		svc := newTestService(repo, paymentSvc, producer)
		err := svc.CancelOrder(context.Background(), domain.Order{
			SN:      testOrderSN,
			BuyerID: 7,
			Status:  domain.StatusOrdered,
		})
		require.NoError(t, err)
	})
}

func TestService_CreateOrder(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	repo := repomocks.NewMockOrderRepository(ctrl)
	repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order domain.Order) (domain.Order, error) {
			assert.NotEmpty(t, order.SN)
			assert.Equal(t, domain.StatusOrdered, order.Status)
			order.ID = 11
			return order, nil
		})
	repo.EXPECT().UpdateOrderPaymentInfo(gomock.Any(), int64(11), int64(22), "PaymentSN-test").
		Return(nil)

	paymentSvc := paymentmocks.NewMockService(ctrl)
	paymentSvc.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pmt payment.Payment) (payment.Payment, error) {
			assert.Equal(t, int64(11), pmt.OrderID)
			assert.Equal(t, int64(13980), pmt.TotalAmount)
			pmt.ID, pmt.SN = 22, "PaymentSN-test"
			return pmt, nil
		})

	svc := newTestService(repo, paymentSvc, evtmocks.NewMockStatusChangedEventProducer(ctrl))
	order, err := svc.CreateOrder(context.Background(), domain.Order{
		BuyerID:            7,
		OriginalTotalPrice: 13980,
		TotalDiscount:      0,
		RealTotalPrice:     13980,
		Items: []domain.Item{
			{SKU: "sticker-classic", Name: "经典款", OriginalPrice: 6990, RealPrice: 6990, Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), order.ID)
	assert.Equal(t, "PaymentSN-test", order.PaymentSN)
	assert.Equal(t, int64(22), order.PaymentID)
}
