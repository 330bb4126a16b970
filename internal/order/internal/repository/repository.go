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
	"github.com/ecodeclub/safetap/internal/order/internal/domain"
	"github.com/ecodeclub/safetap/internal/order/internal/repository/dao"
)

var (
	ErrOrderNotFound  = dao.ErrOrderNotFound
	ErrStatusConflict = dao.ErrStatusConflict
)

//go:generate mockgen -source=repository.go -package=repomocks -destination=./mocks/repository.mock.go OrderRepository
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	UpdateOrderPaymentInfo(ctx context.Context, orderID, paymentID int64, paymentSN string) error
	FindOrderBySN(ctx context.Context, sn string) (domain.Order, error)
	FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error)
	// UpdateOrderStatus 以 current 为前置条件推进状态, 并发竞争失败返回 dao.ErrStatusConflict
	UpdateOrderStatus(ctx context.Context, sn string, current, requested domain.Status) error
	// OverrideOrderStatus 管理员回退修正, 同一事务内落审计记录
	OverrideOrderStatus(ctx context.Context, override domain.StatusOverride) error
	ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error)
	TotalByUID(ctx context.Context, uid int64) (int64, error)
	ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error)
	Total(ctx context.Context) (int64, error)
	ListExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error)
	TotalExpiredOrders(ctx context.Context, ctime int64) (int64, error)
	CloseExpiredOrders(ctx context.Context, orderIDs []int64, closedAt int64) error
}

func NewRepository(d dao.OrderDAO) OrderRepository {
	return &orderRepository{dao: d}
}

type orderRepository struct {
	dao dao.OrderDAO
}

func (o *orderRepository) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	oid, err := o.dao.CreateOrder(ctx, o.toOrderEntity(order), o.toOrderItemEntities(order.Items))
	if err != nil {
		return domain.Order{}, err
	}
	order.ID = oid
	return order, nil
}

func (o *orderRepository) UpdateOrderPaymentInfo(ctx context.Context, orderID, paymentID int64, paymentSN string) error {
	return o.dao.UpdatePaymentInfo(ctx, orderID, paymentID, paymentSN)
}

func (o *orderRepository) FindOrderBySN(ctx context.Context, sn string) (domain.Order, error) {
	order, err := o.dao.FindOrderBySN(ctx, sn)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.dao.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) FindOrderBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (domain.Order, error) {
	order, err := o.dao.FindOrderBySNAndBuyerID(ctx, sn, buyerID)
	if err != nil {
		return domain.Order{}, err
	}
	items, err := o.dao.FindOrderItemsByOrderID(ctx, order.Id)
	if err != nil {
		return domain.Order{}, err
	}
	return o.toOrderDomain(order, items), nil
}

func (o *orderRepository) UpdateOrderStatus(ctx context.Context, sn string, current, requested domain.Status) error {
	return o.dao.UpdateStatus(ctx, sn, current.ToUint8(), requested.ToUint8())
}

func (o *orderRepository) OverrideOrderStatus(ctx context.Context, override domain.StatusOverride) error {
	return o.dao.CreateStatusOverride(ctx, override.OrderSN, override.After.ToUint8(), dao.StatusOverrideLog{
		OrderSn:  override.OrderSN,
		AdminUid: override.AdminUID,
		Before:   override.Before.ToUint8(),
		After:    override.After.ToUint8(),
		Reason:   override.Reason,
	})
}

func (o *orderRepository) ListOrdersByUID(ctx context.Context, offset, limit int, uid int64) ([]domain.Order, error) {
	os, err := o.dao.List(ctx, offset, limit, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) TotalByUID(ctx context.Context, uid int64) (int64, error) {
	return o.dao.Count(ctx, uid)
}

func (o *orderRepository) ListOrders(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	os, err := o.dao.ListAll(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) Total(ctx context.Context) (int64, error) {
	return o.dao.CountAll(ctx)
}

func (o *orderRepository) ListExpiredOrders(ctx context.Context, offset, limit int, ctime int64) ([]domain.Order, error) {
	os, err := o.dao.ListExpired(ctx, offset, limit, ctime)
	if err != nil {
		return nil, err
	}
	return slice.Map(os, func(idx int, src dao.Order) domain.Order {
		return o.toOrderDomain(src, nil)
	}), nil
}

func (o *orderRepository) TotalExpiredOrders(ctx context.Context, ctime int64) (int64, error) {
	return o.dao.CountExpired(ctx, ctime)
}

func (o *orderRepository) CloseExpiredOrders(ctx context.Context, orderIDs []int64, closedAt int64) error {
	return o.dao.CloseExpiredOrders(ctx, orderIDs, closedAt)
}

func (o *orderRepository) toOrderEntity(order domain.Order) dao.Order {
	return dao.Order{
		SN:                 order.SN,
		BuyerId:            order.BuyerID,
		PaymentId:          order.PaymentID,
		PaymentSn:          order.PaymentSN,
		OriginalTotalPrice: order.OriginalTotalPrice,
		TotalDiscount:      order.TotalDiscount,
		RealTotalPrice:     order.RealTotalPrice,
		AppliedPromotionId: order.AppliedPromotionID,
		Status:             order.Status.ToUint8(),
	}
}

func (o *orderRepository) toOrderItemEntities(items []domain.Item) []dao.OrderItem {
	return slice.Map(items, func(idx int, src domain.Item) dao.OrderItem {
		return dao.OrderItem{
			SKU:           src.SKU,
			Name:          src.Name,
			OriginalPrice: src.OriginalPrice,
			RealPrice:     src.RealPrice,
			Quantity:      src.Quantity,
		}
	})
}

func (o *orderRepository) toOrderDomain(order dao.Order, items []dao.OrderItem) domain.Order {
	return domain.Order{
		ID:                 order.Id,
		SN:                 order.SN,
		BuyerID:            order.BuyerId,
		PaymentID:          order.PaymentId,
		PaymentSN:          order.PaymentSn,
		OriginalTotalPrice: order.OriginalTotalPrice,
		TotalDiscount:      order.TotalDiscount,
		RealTotalPrice:     order.RealTotalPrice,
		AppliedPromotionID: order.AppliedPromotionId,
		Status:             domain.Status(order.Status),
		ClosedAt:           order.ClosedAt,
		Ctime:              order.Ctime,
		Utime:              order.Utime,
		Items: slice.Map(items, func(idx int, src dao.OrderItem) domain.Item {
			return domain.Item{
				SKU:           src.SKU,
				Name:          src.Name,
				OriginalPrice: src.OriginalPrice,
				RealPrice:     src.RealPrice,
				Quantity:      src.Quantity,
			}
		}),
	}
}
