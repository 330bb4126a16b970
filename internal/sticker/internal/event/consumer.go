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
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/safetap/internal/order"
	"github.com/ecodeclub/safetap/internal/sticker/internal/domain"
	"github.com/ecodeclub/safetap/internal/sticker/internal/service"
	"github.com/gotomicro/ego/core/elog"
)

// statusByOrderStatus 订单状态到贴纸状态的同步映射,
// 订单支付后另行走生产贴纸的路径, 不在此映射内
var statusByOrderStatus = map[uint8]domain.Status{
	order.StatusPrinting.ToUint8(): domain.StatusPrinting,
	order.StatusShipped.ToUint8():  domain.StatusShipped,
	order.StatusActive.ToUint8():   domain.StatusActive,
	order.StatusLost.ToUint8():     domain.StatusLost,
}

type OrderStatusChangedConsumer struct {
	svc      service.Service
	orderSvc order.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewOrderStatusChangedConsumer(svc service.Service, orderSvc order.Service, q mq.MQ) (*OrderStatusChangedConsumer, error) {
	const groupID = "sticker"
	consumer, err := q.Consumer(orderStatusChangedEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &OrderStatusChangedConsumer{
		svc:      svc,
		orderSvc: orderSvc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *OrderStatusChangedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			er := c.Consume(ctx)
			if er != nil {
				c.logger.Error("消费订单状态变更事件失败", elog.FieldErr(er))
			}
		}
	}()
}

func (c *OrderStatusChangedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt OrderStatusChangedEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	return c.handle(ctx, evt)
}

func (c *OrderStatusChangedConsumer) handle(ctx context.Context, evt OrderStatusChangedEvent) error {
	if evt.After == order.StatusPaid.ToUint8() {
		return c.createStickers(ctx, evt)
	}
	status, ok := statusByOrderStatus[evt.After]
	if !ok {
		// 已下单/已拒绝/已取消等状态与贴纸无关
		return nil
	}
	err := c.svc.SyncStatusForOrder(ctx, evt.OrderSN, status)
	if err != nil {
		return fmt.Errorf("同步贴纸状态失败: %w", err)
	}
	return nil
}

func (c *OrderStatusChangedConsumer) createStickers(ctx context.Context, evt OrderStatusChangedEvent) error {
	o, err := c.orderSvc.FindOrderBySN(ctx, evt.OrderSN)
	if err != nil {
		c.logger.Error("订单未找到",
			elog.FieldErr(err),
			elog.String("order_sn", evt.OrderSN),
			elog.Int64("buyer_id", evt.BuyerID),
		)
		return fmt.Errorf("订单未找到: %w", err)
	}
	var quantity int64
	for _, item := range o.Items {
		quantity += item.Quantity
	}
	err = c.svc.CreateStickersForOrder(ctx, o.SN, o.BuyerID, quantity)
	if err != nil {
		return fmt.Errorf("生成贴纸失败: %w", err)
	}
	return nil
}
