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
	"github.com/ecodeclub/safetap/internal/payment/internal/domain"
	"github.com/ecodeclub/safetap/internal/payment/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine, managePayments gin.HandlerFunc) {
	g := server.Group("/payment", managePayments)
	g.POST("/list", ginx.B[ListPaymentsReq](h.List))
	g.POST("/transfer", ginx.B[MarkTransferredReq](h.MarkTransferred))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

// List 后台分页查询全部支付记录
func (h *AdminHandler) List(ctx *ginx.Context, req ListPaymentsReq) (ginx.Result, error) {
	ps, total, err := h.svc.ListPayments(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("分页查询支付记录失败: %w", err)
	}
	return ginx.Result{
		Data: ListPaymentsResp{
			Total: total,
			Payments: slice.Map(ps, func(idx int, src domain.Payment) Payment {
				return Payment{
					SN:          src.SN,
					OrderSN:     src.OrderSN,
					PayerID:     src.PayerID,
					TotalAmount: src.TotalAmount,
					Status:      src.Status.ToUint8(),
					PaidAt:      src.PaidAt,
					Utime:       src.Utime,
				}
			}),
		},
	}, nil
}

// MarkTransferred 标记已支付款项已转账给供应商
func (h *AdminHandler) MarkTransferred(ctx *ginx.Context, req MarkTransferredReq) (ginx.Result, error) {
	err := h.svc.MarkTransferred(ctx.Request.Context(), req.PaymentSN)
	if err != nil {
		if errors.Is(err, service.ErrTransferNotAllowed) {
			return transferNotAllowedResult, err
		}
		if errors.Is(err, service.ErrPaymentNotFound) {
			return paymentNotFoundResult, err
		}
		return systemErrorResult, fmt.Errorf("标记转账失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
