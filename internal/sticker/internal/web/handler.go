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
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/safetap/internal/profile"
	"github.com/ecodeclub/safetap/internal/sticker/internal/domain"
	"github.com/ecodeclub/safetap/internal/sticker/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 扫码入口, NFC芯片与二维码都指向这里
	server.GET("/s/:slug", ginx.W(h.Scan))
	server.GET("/sticker/:slug/qr", h.QRCode)
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/sticker")
	g.POST("/list", ginx.S(h.List))
	g.POST("/link", ginx.BS[LinkProfileReq](h.LinkProfile))
}

func (h *Handler) Scan(ctx *ginx.Context) (ginx.Result, error) {
	slug := ctx.Param("slug").StringOrDefault("")
	view, err := h.svc.Scan(ctx.Request.Context(), slug)
	switch {
	case errors.Is(err, service.ErrStickerNotFound):
		return stickerNotFoundResult, nil
	case errors.Is(err, service.ErrStickerNotActive):
		return stickerNotActiveResult, nil
	case errors.Is(err, service.ErrStickerNotLinked):
		return stickerNotLinkedResult, nil
	case err != nil:
		return systemErrorResult, fmt.Errorf("扫码查询失败: %w", err)
	}
	return ginx.Result{
		Data: ScanResp{
			Name:        view.Name,
			BloodType:   view.BloodType,
			Allergies:   view.Allergies,
			Medications: view.Medications,
			Conditions:  view.Conditions,
			Notes:       view.Notes,
			Contacts: slice.Map(view.Contacts, func(idx int, src profile.Contact) ScanContact {
				return ScanContact{Name: src.Name, Relation: src.Relation, Phone: src.Phone}
			}),
		},
	}, nil
}

// QRCode 直接输出PNG, 不走统一的 ginx.Result 包装
func (h *Handler) QRCode(ctx *gin.Context) {
	slug := ctx.Param("slug")
	png, err := h.svc.QRCodePNG(ctx.Request.Context(), slug)
	if errors.Is(err, service.ErrStickerNotFound) {
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.Error("生成贴纸二维码失败",
			elog.FieldErr(err),
			elog.String("slug", slug))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	stickers, err := h.svc.ListStickers(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListStickersResp{
			Stickers: slice.Map(stickers, func(idx int, src domain.Sticker) Sticker {
				return Sticker{
					ID:        src.ID,
					Slug:      src.Slug,
					OrderSN:   src.OrderSN,
					ProfileID: src.ProfileID,
					Status:    src.Status.ToUint8(),
					Utime:     src.Utime,
				}
			}),
		},
	}, nil
}

func (h *Handler) LinkProfile(ctx *ginx.Context, req LinkProfileReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.LinkProfile(ctx.Request.Context(), req.StickerID, sess.Claims().Uid, req.ProfileID)
	switch {
	case errors.Is(err, service.ErrStickerNotFound):
		return stickerNotFoundResult, nil
	case errors.Is(err, service.ErrProfileNotOwned):
		return profileNotOwnedResult, nil
	case err != nil:
		return systemErrorResult, fmt.Errorf("关联急救资料失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}
