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
	"time"

	"github.com/ecodeclub/safetap/internal/order/internal/domain"
	"github.com/ecodeclub/safetap/internal/order/internal/event"
	"github.com/ecodeclub/safetap/internal/order/internal/repository"
	"github.com/ecodeclub/safetap/internal/payment"
	"github.com/ecodeclub/safetap/internal/pkg/sequencenumber"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound = repository.ErrOrderNotFound
	// ErrStatusConflict 状态前置条件未命中, 说明并发请求已经抢先改过状态
	ErrStatusConflict = repository.ErrStatusConflict
	// ErrInvalidStatusTransition 请求的状态变更不符合正向流转规则
	ErrInvalidStatusTransition = errors.New("订单状态流转不合法")
	// ErrInvalidOverrideStatus 回退修正的目标状态未知
	ErrInvalidOverrideStatus = errors.New("回退修正的目标状态不合法")
)

//go:generate mockgen -source=service.go -package=ordermocks -destination=../../mocks/order.mock.go Service
type Service interface {
	// CreateOrder 落库订单并创建关联的支付记录, 初始状态为已下单
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error)
	ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error)
	// UpdateStatus 正向推进订单状态, 经由 domain.CanTransition 校验,
	// 成功后按映射同步支付状态并发布变更事件
	UpdateStatus(ctx context.Context, sn string, requested domain.Status) error
	// OverrideStatus 后台人工回退修正, 不走正向流转校验, 落审计记录
	OverrideStatus(ctx context.Context, override domain.StatusOverride) error
	// CancelOrder 买家主动取消, 只允许取消尚未支付的订单
	CancelOrder(ctx context.Context, order domain.Order) error
	FindExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error)
	CloseExpiredOrders(ctx context.Context, orderIDs []int64) error
}

func NewService(repo repository.OrderRepository,
	paymentSvc payment.Service,
	producer event.StatusChangedEventProducer,
	snGenerator *sequencenumber.Generator) Service {
	return &service{
		repo:        repo,
		paymentSvc:  paymentSvc,
		producer:    producer,
		snGenerator: snGenerator,
		logger:      elog.DefaultLogger,
	}
}

type service struct {
	repo        repository.OrderRepository
	paymentSvc  payment.Service
	producer    event.StatusChangedEventProducer
	snGenerator *sequencenumber.Generator
	logger      *elog.Component
}

func (s *service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	sn, err := s.snGenerator.Generate(order.BuyerID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("生成订单序列号失败: %w", err)
	}
	order.SN = sn
	order.Status = domain.StatusOrdered

	order, err = s.repo.CreateOrder(ctx, order)
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单失败: %w", err)
	}

	pmt, err := s.paymentSvc.CreatePayment(ctx, payment.Payment{
		OrderID:     order.ID,
		OrderSN:     order.SN,
		PayerID:     order.BuyerID,
		TotalAmount: order.RealTotalPrice,
	})
	if err != nil {
		return domain.Order{}, fmt.Errorf("创建订单关联支付失败: %w", err)
	}

	err = s.repo.UpdateOrderPaymentInfo(ctx, order.ID, pmt.ID, pmt.SN)
	if err != nil {
		return domain.Order{}, fmt.Errorf("回填订单支付信息失败: %w", err)
	}
	order.PaymentID, order.PaymentSN = pmt.ID, pmt.SN
	return order, nil
}

func (s *service) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	return s.repo.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
}

func (s *service) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	return s.repo.FindOrderBySN(ctx, sn)
}

func (s *service) ListOrders(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrdersByUID(ctx, offset, limit, uid)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalByUID(ctx, uid)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) ListAllOrders(ctx context.Context, offset, limit int) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListOrders(ctx, offset, limit)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.Total(ctx)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) UpdateStatus(ctx context.Context, sn string, requested domain.Status) error {
	order, err := s.repo.FindOrderBySN(ctx, sn)
	if err != nil {
		return fmt.Errorf("查找订单失败: %w", err)
	}

	pmt, err := s.paymentSvc.FindPaymentByOrderSN(ctx, sn)
	if err != nil {
		return fmt.Errorf("查找订单关联支付失败: %w", err)
	}

	if !domain.CanTransition(order.Status, requested, pmt.Status) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, requested)
	}

	// 带前置条件的更新, 竞争失败说明快照已经过期
	err = s.repo.UpdateOrderStatus(ctx, sn, order.Status, requested)
	if err != nil {
		return err
	}

	s.syncPaymentStatus(ctx, sn, requested)
	s.produceStatusChangedEvent(ctx, event.StatusChangedEvent{
		OrderSN:  sn,
		BuyerID:  order.BuyerID,
		Before:   order.Status.ToUint8(),
		After:    requested.ToUint8(),
		ChangeAt: time.Now().UnixMilli(),
	})
	return nil
}

func (s *service) OverrideStatus(ctx context.Context, override domain.StatusOverride) error {
	if _, ok := domain.PaymentStatusFor(override.After); !ok {
		return fmt.Errorf("%w: %d", ErrInvalidOverrideStatus, override.After)
	}
	order, err := s.repo.FindOrderBySN(ctx, override.OrderSN)
	if err != nil {
		return fmt.Errorf("查找订单失败: %w", err)
	}
	override.Before = order.Status

	err = s.repo.OverrideOrderStatus(ctx, override)
	if err != nil {
		return err
	}

	s.syncPaymentStatus(ctx, override.OrderSN, override.After)
	s.produceStatusChangedEvent(ctx, event.StatusChangedEvent{
		OrderSN:  override.OrderSN,
		BuyerID:  order.BuyerID,
		Before:   override.Before.ToUint8(),
		After:    override.After.ToUint8(),
		Override: true,
		ChangeAt: time.Now().UnixMilli(),
	})
	return nil
}

func (s *service) CancelOrder(ctx context.Context, order domain.Order) error {
	if order.Status != domain.StatusOrdered {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, order.Status, domain.StatusCancelled)
	}
	err := s.repo.UpdateOrderStatus(ctx, order.SN, domain.StatusOrdered, domain.StatusCancelled)
	if err != nil {
		return err
	}

	s.syncPaymentStatus(ctx, order.SN, domain.StatusCancelled)
	s.produceStatusChangedEvent(ctx, event.StatusChangedEvent{
		OrderSN:  order.SN,
		BuyerID:  order.BuyerID,
		Before:   domain.StatusOrdered.ToUint8(),
		After:    domain.StatusCancelled.ToUint8(),
		ChangeAt: time.Now().UnixMilli(),
	})
	return nil
}

func (s *service) FindExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, int64, error) {
	var (
		eg    errgroup.Group
		os    []domain.Order
		total int64
	)
	eg.Go(func() error {
		var err error
		os, err = s.repo.ListExpiredOrders(ctx, offset, limit, ctime)
		return err
	})

	eg.Go(func() error {
		var err error
		total, err = s.repo.TotalExpiredOrders(ctx, ctime)
		return err
	})
	return os, total, eg.Wait()
}

func (s *service) CloseExpiredOrders(ctx context.Context, orderIDs []int64) error {
	if len(orderIDs) == 0 {
		return nil
	}
	return s.repo.CloseExpiredOrders(ctx, orderIDs, time.Now().UnixMilli())
}

// syncPaymentStatus 按订单状态映射同步支付状态.
// 映射是唯一事实来源, 同步失败只记日志, 不回滚订单状态
func (s *service) syncPaymentStatus(ctx context.Context, sn string, status domain.Status) {
	ps, ok := domain.PaymentStatusFor(status)
	if !ok {
		return
	}
	err := s.paymentSvc.SyncStatus(ctx, sn, ps)
	if err != nil {
		s.logger.Error("同步支付状态失败",
			elog.FieldErr(err),
			elog.String("order_sn", sn),
			elog.String("payment_status", ps.String()),
		)
	}
}

func (s *service) produceStatusChangedEvent(ctx context.Context, evt event.StatusChangedEvent) {
	err := s.producer.Produce(ctx, evt)
	if err != nil {
		s.logger.Error("发送订单状态变更事件失败",
			elog.FieldErr(err),
			elog.String("order_sn", evt.OrderSN),
		)
	}
}
