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
	"github.com/ecodeclub/safetap/internal/promotion/internal/domain"
	"github.com/ecodeclub/safetap/internal/promotion/internal/service"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.AdminService
}

func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine, managePromotions gin.HandlerFunc) {
	g := server.Group("/promotion", managePromotions)
	g.POST("/save", ginx.B[SavePromotionReq](h.SavePromotion))
	g.POST("/list", ginx.B[ListPromotionsReq](h.ListPromotions))
	g.POST("/active", ginx.B[UpdateActiveReq](h.UpdatePromotionActive))

	c := server.Group("/discount-code", managePromotions)
	c.POST("/save", ginx.B[SaveDiscountCodeReq](h.SaveDiscountCode))
	c.POST("/list", ginx.B[ListDiscountCodesReq](h.ListDiscountCodes))
	c.POST("/active", ginx.B[UpdateActiveReq](h.UpdateDiscountCodeActive))
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) SavePromotion(ctx *ginx.Context, req SavePromotionReq) (ginx.Result, error) {
	id, err := h.svc.SavePromotion(ctx.Request.Context(), domain.Promotion{
		ID:          req.Promotion.ID,
		Name:        req.Promotion.Name,
		Description: req.Promotion.Description,
		MinQuantity: req.Promotion.MinQuantity,
		Type:        domain.DiscountType(req.Promotion.Type),
		Value:       req.Promotion.Value,
		Active:      req.Promotion.Active,
		Priority:    req.Promotion.Priority,
		StartAt:     req.Promotion.StartAt,
		EndAt:       req.Promotion.EndAt,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("保存活动失败: %w", err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) ListPromotions(ctx *ginx.Context, req ListPromotionsReq) (ginx.Result, error) {
	ps, total, err := h.svc.ListPromotions(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("分页查询活动失败: %w", err)
	}
	return ginx.Result{
		Data: ListPromotionsResp{
			Total: total,
			Promotions: slice.Map(ps, func(idx int, src domain.Promotion) Promotion {
				return Promotion{
					ID:          src.ID,
					Name:        src.Name,
					Description: src.Description,
					MinQuantity: src.MinQuantity,
					Type:        src.Type.ToUint8(),
					Value:       src.Value,
					Active:      src.Active,
					Priority:    src.Priority,
					StartAt:     src.StartAt,
					EndAt:       src.EndAt,
					Utime:       src.Utime,
				}
			}),
		},
	}, nil
}

func (h *AdminHandler) UpdatePromotionActive(ctx *ginx.Context, req UpdateActiveReq) (ginx.Result, error) {
	err := h.svc.UpdatePromotionActive(ctx.Request.Context(), req.ID, req.Active)
	if err != nil {
		if errors.Is(err, service.ErrPromotionNotFound) {
			return promotionNotFoundResult, err
		}
		return systemErrorResult, fmt.Errorf("更新活动状态失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) SaveDiscountCode(ctx *ginx.Context, req SaveDiscountCodeReq) (ginx.Result, error) {
	id, err := h.svc.SaveDiscountCode(ctx.Request.Context(), domain.DiscountCode{
		ID:       req.Code.ID,
		Code:     req.Code.Code,
		Type:     domain.DiscountType(req.Code.Type),
		Value:    req.Code.Value,
		MinTotal: req.Code.MinTotal,
		Active:   req.Code.Active,
		StartAt:  req.Code.StartAt,
		EndAt:    req.Code.EndAt,
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("保存优惠码失败: %w", err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) ListDiscountCodes(ctx *ginx.Context, req ListDiscountCodesReq) (ginx.Result, error) {
	cs, total, err := h.svc.ListDiscountCodes(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, fmt.Errorf("分页查询优惠码失败: %w", err)
	}
	return ginx.Result{
		Data: ListDiscountCodesResp{
			Total: total,
			Codes: slice.Map(cs, func(idx int, src domain.DiscountCode) DiscountCode {
				return DiscountCode{
					ID:       src.ID,
					Code:     src.Code,
					Type:     src.Type.ToUint8(),
					Value:    src.Value,
					MinTotal: src.MinTotal,
					Active:   src.Active,
					StartAt:  src.StartAt,
					EndAt:    src.EndAt,
					Utime:    src.Utime,
				}
			}),
		},
	}, nil
}

func (h *AdminHandler) UpdateDiscountCodeActive(ctx *ginx.Context, req UpdateActiveReq) (ginx.Result, error) {
	err := h.svc.UpdateDiscountCodeActive(ctx.Request.Context(), req.ID, req.Active)
	if err != nil {
		if errors.Is(err, service.ErrDiscountCodeNotFound) {
			return promotionNotFoundResult, err
		}
		return systemErrorResult, fmt.Errorf("更新优惠码状态失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
