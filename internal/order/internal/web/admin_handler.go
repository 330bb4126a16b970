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
	"errors"
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/safetap/internal/order/internal/domain"
	"github.com/ecodeclub/safetap/internal/order/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine, manageOrders gin.HandlerFunc) {
	g := server.Group("/order", manageOrders)
	g.POST("/list", ginx.B[ListOrdersReq](h.List))
	g.POST("/detail", ginx.B[RetrieveOrderDetailReq](h.Detail))
	g.POST("/status", ginx.B[UpdateOrderStatusReq](h.UpdateStatus))
	g.POST("/override", ginx.BS[OverrideOrderStatusReq](h.OverrideStatus))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListOrdersReq) (ginx.Result, error) {
	orders, total, err := h.svc.ListAllOrders(ctx.Request.Context(), req.Offset, req.Limit)
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

func (h *AdminHandler) Detail(ctx *ginx.Context, req RetrieveOrderDetailReq) (ginx.Result, error) {
	order, err := h.svc.FindOrderBySN(ctx.Request.Context(), req.OrderSN)
	if errors.Is(err, service.ErrOrderNotFound) {
		return orderNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找订单失败: %w", err)
	}
	return ginx.Result{
		Data: RetrieveOrderDetailResp{
			Order: toOrderVO(order),
		},
	}, nil
}

// UpdateStatus 正向推进订单状态, 不合法的流转返回业务错误码
func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req UpdateOrderStatusReq) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx.Request.Context(), req.OrderSN, domain.Status(req.Status))
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvalidStatusTransition):
		return invalidStatusTransitionResult, nil
	case errors.Is(err, service.ErrStatusConflict):
		return orderStatusConflictResult, nil
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, nil
	default:
		return systemErrorResult, fmt.Errorf("更新订单状态失败: %w", err)
	}
}

// OverrideStatus 回退修正订单状态, 落审计记录
func (h *AdminHandler) OverrideStatus(ctx *ginx.Context, req OverrideOrderStatusReq, sess session.Session) (ginx.Result, error) {
	if req.Reason == "" {
		return invalidOverrideStatusResult, fmt.Errorf("回退修正必须填写原因")
	}
	err := h.svc.OverrideStatus(ctx.Request.Context(), domain.StatusOverride{
		OrderSN:  req.OrderSN,
		AdminUID: sess.Claims().Uid,
		After:    domain.Status(req.Status),
		Reason:   req.Reason,
	})
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvalidOverrideStatus):
		return invalidOverrideStatusResult, nil
	case errors.Is(err, service.ErrStatusConflict):
		return orderStatusConflictResult, nil
	case errors.Is(err, service.ErrOrderNotFound):
		return orderNotFoundResult, nil
	default:
		return systemErrorResult, fmt.Errorf("回退修正订单状态失败: %w", err)
	}
}
