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

package event

import (
	"context"
	"testing"

	"github.com/ecodeclub/safetap/internal/order"
	ordermocks "github.com/ecodeclub/safetap/internal/order/mocks"
	"github.com/ecodeclub/safetap/internal/sticker/internal/domain"
	"github.com/ecodeclub/safetap/internal/sticker/internal/service"
	stickermocks "github.com/ecodeclub/safetap/internal/sticker/mocks"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestConsumer(svc service.Service, orderSvc order.Service) *OrderStatusChangedConsumer {
	return &OrderStatusChangedConsumer{
		svc:      svc,
		orderSvc: orderSvc,
		logger:   elog.DefaultLogger,
	}
}

func TestOrderStatusChangedConsumer_Handle(t *testing.T) {
	t.Parallel()

	const orderSN = "OrderSN-evt"

	testCases := []struct {
		name string
		evt  OrderStatusChangedEvent
		mock func(ctrl *gomock.Controller) (service.Service, order.Service)
	}{
		{
			name: "订单已支付_按购买数量生成贴纸",
			evt:  OrderStatusChangedEvent{OrderSN: orderSN, BuyerID: 7, After: order.StatusPaid.ToUint8()},
			mock: func(ctrl *gomock.Controller) (service.Service, order.Service) {
				orderSvc := ordermocks.NewMockService(ctrl)
				orderSvc.EXPECT().FindOrderBySN(gomock.Any(), orderSN).
					Return(order.Order{
						SN:      orderSN,
						BuyerID: 7,
						Items: []order.Item{
							{SKU: "sticker-round", Quantity: 2},
							{SKU: "sticker-square", Quantity: 1},
						},
					}, nil)
				svc := stickermocks.NewMockService(ctrl)
				svc.EXPECT().CreateStickersForOrder(gomock.Any(), orderSN, int64(7), int64(3)).Return(nil)
				return svc, orderSvc
			},
		},
		{
			name: "订单打印中_同步贴纸状态",
			evt:  OrderStatusChangedEvent{OrderSN: orderSN, After: order.StatusPrinting.ToUint8()},
			mock: func(ctrl *gomock.Controller) (service.Service, order.Service) {
				svc := stickermocks.NewMockService(ctrl)
				svc.EXPECT().SyncStatusForOrder(gomock.Any(), orderSN, domain.StatusPrinting).Return(nil)
				return svc, ordermocks.NewMockService(ctrl)
			},
		},
		{
			name: "订单已发货_同步贴纸状态",
			evt:  OrderStatusChangedEvent{OrderSN: orderSN, After: order.StatusShipped.ToUint8()},
			mock: func(ctrl *gomock.Controller) (service.Service, order.Service) {
				svc := stickermocks.NewMockService(ctrl)
				svc.EXPECT().SyncStatusForOrder(gomock.Any(), orderSN, domain.StatusShipped).Return(nil)
				return svc, ordermocks.NewMockService(ctrl)
			},
		},
		{
			name: "订单已激活_贴纸随之激活",
			evt:  OrderStatusChangedEvent{OrderSN: orderSN, After: order.StatusActive.ToUint8()},
			mock: func(ctrl *gomock.Controller) (service.Service, order.Service) {
				svc := stickermocks.NewMockService(ctrl)
				svc.EXPECT().SyncStatusForOrder(gomock.Any(), orderSN, domain.StatusActive).Return(nil)
				return svc, ordermocks.NewMockService(ctrl)
			},
		},
		{
			name: "订单挂失_贴纸同步挂失",
			evt:  OrderStatusChangedEvent{OrderSN: orderSN, After: order.StatusLost.ToUint8(), Override: true},
			mock: func(ctrl *gomock.Controller) (service.Service, order.Service) {
				svc := stickermocks.NewMockService(ctrl)
				svc.EXPECT().SyncStatusForOrder(gomock.Any(), orderSN, domain.StatusLost).Return(nil)
				return svc, ordermocks.NewMockService(ctrl)
			},
		},
		{
			name: "订单已取消_与贴纸无关",
			evt:  OrderStatusChangedEvent{OrderSN: orderSN, After: order.StatusCancelled.ToUint8()},
			mock: func(ctrl *gomock.Controller) (service.Service, order.Service) {
				return stickermocks.NewMockService(ctrl), ordermocks.NewMockService(ctrl)
			},
		},
		{
			name: "订单已拒绝_与贴纸无关",
			evt:  OrderStatusChangedEvent{OrderSN: orderSN, After: order.StatusRejected.ToUint8()},
			mock: func(ctrl *gomock.Controller) (service.Service, order.Service) {
				return stickermocks.NewMockService(ctrl), ordermocks.NewMockService(ctrl)
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			c := newTestConsumer(tc.mock(ctrl))
			err := c.handle(context.Background(), tc.evt)
			require.NoError(t, err)
		})
	}
}
