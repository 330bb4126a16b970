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
	"fmt"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/safetap/internal/promotion/internal/domain"
	"github.com/ecodeclub/safetap/internal/promotion/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/pricing")
	g.POST("/preview", ginx.B[PreviewReq](h.Preview))
	d := server.Group("/discount")
	d.POST("/validate", ginx.B[ValidateCodeReq](h.ValidateCode))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

// Preview 购物车报价, 套用最优数量折扣, 此时订单尚未创建
func (h *Handler) Preview(ctx *ginx.Context, req PreviewReq) (ginx.Result, error) {
	if len(req.Items) == 0 {
		return invalidCartItemsResult, fmt.Errorf("购物车为空")
	}
	cart := make([]domain.CartItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.UnitPrice < 0 || item.Quantity < 1 {
			return invalidCartItemsResult, fmt.Errorf("购物车商品信息非法: %+v", item)
		}
		cart = append(cart, domain.CartItem{
			SKU:       item.SKU,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	quote, err := h.svc.Preview(ctx.Request.Context(), cart)
	if err != nil {
		return systemErrorResult, fmt.Errorf("购物车报价失败: %w", err)
	}
	return ginx.Result{
		Data: PreviewResp{
			OriginalTotal: quote.OriginalTotal,
			TotalDiscount: quote.Discount,
			FinalTotal:    quote.FinalTotal,
			AppliedPromotions: slice.Map(quote.Applied, func(idx int, src domain.Promotion) Promotion {
				return Promotion{
					ID:          src.ID,
					Name:        src.Name,
					Description: src.Description,
					MinQuantity: src.MinQuantity,
					Type:        src.Type.ToUint8(),
					Value:       src.Value,
					Active:      src.Active,
					Priority:    src.Priority,
				}
			}),
		},
	}, nil
}

// ValidateCode 校验优惠码并预览折扣, 不记录核销, 可重复调用
func (h *Handler) ValidateCode(ctx *ginx.Context, req ValidateCodeReq) (ginx.Result, error) {
	v, err := h.svc.ValidateCode(ctx.Request.Context(), req.Code, req.CartTotal)
	if err != nil {
		return systemErrorResult, fmt.Errorf("校验优惠码失败: %w", err)
	}
	return ginx.Result{
		Data: ValidateCodeResp{
			Valid:          v.Valid,
			Message:        v.Message,
			DiscountAmount: v.Discount,
			FinalTotal:     v.FinalTotal,
		},
	}, nil
}
