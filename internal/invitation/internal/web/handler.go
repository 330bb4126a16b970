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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/safetap/internal/invitation/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

// Handler 面向受邀人的接口, 挂在用户侧服务上
type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/invitation")
	g.POST("/accept", ginx.BS[AcceptInvitationReq](h.Accept))
}

func (h *Handler) Accept(ctx *ginx.Context, req AcceptInvitationReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Accept(ctx.Request.Context(), req.Code, sess.Claims().Uid)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvitationNotFound):
		return invitationNotFoundResult, nil
	case errors.Is(err, service.ErrInvitationNotPending):
		return invitationNotPendingResult, nil
	case errors.Is(err, service.ErrInvitationExpired):
		return invitationExpiredResult, nil
	case errors.Is(err, service.ErrEmailMismatch):
		return emailMismatchResult, nil
	default:
		return systemErrorResult, fmt.Errorf("接受邀请失败: %w", err)
	}
}
