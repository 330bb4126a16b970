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

package web

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/safetap/internal/order/internal/domain"
	"github.com/ecodeclub/safetap/internal/order/internal/service"
	"github.com/ecodeclub/safetap/internal/payment"
	"github.com/ecodeclub/safetap/internal/promotion"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc          service.Service
	paymentSvc   payment.Service
	promotionSvc promotion.Service
	cache        ecache.Cache
}

func NewHandler(svc service.Service, paymentSvc payment.Service, promotionSvc promotion.Service, cache ecache.Cache) *Handler {
	return &Handler{svc: svc, paymentSvc: paymentSvc, promotionSvc: promotionSvc, cache: cache}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/order")
	g.POST("/create", ginx.BS[CreateOrderReq](h.CreateOrder))
	g.POST("", ginx.BS[RetrieveOrderStatusReq](h.RetrieveOrderStatus))
	g.POST("/list", ginx.BS[ListOrdersReq](h.ListOrders))
	g.POST("/detail", ginx.BS[RetrieveOrderDetailReq](h.RetrieveOrderDetail))
	g.POST("/cancel", ginx.BS[CancelOrderReq](h.CancelOrder))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// CreateOrder 创建订单及关联支付.
// 报价以最新的活动重新计算, 不信任前端传入的价格
func (h *Handler) CreateOrder(ctx *ginx.Context, req CreateOrderReq, sess session.Session) (ginx.Result, error) {
	if len(req.Items) == 0 {
		return emptyOrderItemsResult, fmt.Errorf("订单不包含任何商品")
	}

	if err := h.checkRequestID(ctx.Request.Context(), req.RequestID); err != nil {
		return systemErrorResult, fmt.Errorf("请求ID错误: %w", err)
	}

	order, err := h.buildOrder(ctx.Request.Context(), req, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("构建订单失败: %w", err)
	}

	order, err = h.svc.CreateOrder(ctx.Request.Context(), order)
	if err != nil {
		return systemErrorResult, fmt.Errorf("创建订单失败: %w", err)
	}

	return ginx.Result{
		Data: CreateOrderResp{
			OrderSN: order.SN,
		},
	}, nil
}

func (h *Handler) checkRequestID(ctx context.Context, requestID string) error {
	if requestID == "" {
		return fmt.Errorf("请求ID为空")
	}
	key := fmt.Sprintf("order:create:%s", requestID)
	val := h.cache.Get(ctx, key)
	if !val.KeyNotFound() {
		return fmt.Errorf("重复请求")
	}
	if err := h.cache.Set(ctx, key, requestID, 0); err != nil {
		return fmt.Errorf("缓存请求ID失败: %w", err)
	}
	return nil
}

func (h *Handler) buildOrder(ctx context.Context, req CreateOrderReq, buyerID int64) (domain.Order, error) {
	cart := make([]promotion.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.OriginalPrice < 0 || item.Quantity < 1 {
			return domain.Order{}, fmt.Errorf("商品信息非法: %+v", item)
		}
		cart = append(cart, promotion.CartItem{
			SKU:       item.SKU,
			UnitPrice: item.OriginalPrice,
			Quantity:  item.Quantity,
		})
	}

	quote, err := h.promotionSvc.Preview(ctx, cart)
	if err != nil {
		return domain.Order{}, fmt.Errorf("订单报价失败: %w", err)
	}

	var promotionID int64
	if len(quote.Applied) > 0 {
		promotionID = quote.Applied[0].ID
	}

	return domain.Order{
		BuyerID:            buyerID,
		OriginalTotalPrice: quote.OriginalTotal,
		TotalDiscount:      quote.Discount,
		RealTotalPrice:     quote.FinalTotal,
		AppliedPromotionID: promotionID,
		Items: slice.Map(req.Items, func(idx int, src Item) domain.Item {
			return domain.Item{
				SKU:           src.SKU,
				Name:          src.Name,
				OriginalPrice: src.OriginalPrice,
				RealPrice:     src.OriginalPrice,
				Quantity:      src.Quantity,
			}
		}),
	}, nil
}

// RetrieveOrderStatus 获取订单状态, 前端轮询用
func (h *Handler) RetrieveOrderStatus(ctx *ginx.Context, req RetrieveOrderStatusReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySNAndBuyerID(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderStatusResp{
			OrderStatus: order.Status.ToUint8(),
		},
	}, nil
}

// ListOrders 分页查询用户订单
func (h *Handler) ListOrders(ctx *ginx.Context, req ListOrdersReq, sess session.Session) (ginx.Result, error) {
	orders, total, err := h.svc.ListOrders(ctx.Request.Context(), req.Offset, req.Limit, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListOrdersResp{
			Total: total,
			Orders: slice.Map(orders, func(idx int, src domain.Order) Order {
				return toOrderVO(src)
			}),
		},
	}, nil
}

// RetrieveOrderDetail 查看订单详情, 附带支付状态
func (h *Handler) RetrieveOrderDetail(ctx *ginx.Context, req RetrieveOrderDetailReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySNAndBuyerID(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	pmt, err := h.paymentSvc.FindPaymentByOrderSN(ctx.Request.Context(), order.SN)
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找订单关联支付失败: %w", err)
	}
	vo := toOrderVO(order)
	vo.Payment.Status = pmt.Status.ToUint8()
	return ginx.Result{
		Data: RetrieveOrderDetailResp{
			Order: vo,
		},
	}, nil
}

// CancelOrder 取消订单, 只允许取消尚未支付的订单
func (h *Handler) CancelOrder(ctx *ginx.Context, req CancelOrderReq, sess session.Session) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySNAndBuyerID(ctx.Request.Context(), req.OrderSN, sess.Claims().Uid)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	err = h.svc.CancelOrder(ctx.Request.Context(), order)
	if errors.Is(err, service.ErrInvalidStatusTransition) {
		return cancellationIllegalResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("取消订单失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toOrderVO(order domain.Order) Order {
	return Order{
		SN:                 order.SN,
		Payment:            Payment{SN: order.PaymentSN},
		OriginalTotalPrice: order.OriginalTotalPrice,
		TotalDiscount:      order.TotalDiscount,
		RealTotalPrice:     order.RealTotalPrice,
		Status:             order.Status.ToUint8(),
		Items: slice.Map(order.Items, func(idx int, src domain.Item) Item {
			return Item{
				SKU:           src.SKU,
				Name:          src.Name,
				OriginalPrice: src.OriginalPrice,
				RealPrice:     src.RealPrice,
				Quantity:      src.Quantity,
			}
		}),
		Ctime: order.Ctime,
		Utime: order.Utime,
	}
}
