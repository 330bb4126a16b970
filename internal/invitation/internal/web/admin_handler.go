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
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/safetap/internal/invitation/internal/domain"
	"github.com/ecodeclub/safetap/internal/invitation/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 超级管理员在后台管理邀请, 路由挂在后台服务上
type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine, manageAdmins gin.HandlerFunc) {
	g := server.Group("/invitation", manageAdmins)
	g.POST("/create", ginx.BS[InviteReq](h.Invite))
	g.POST("/list", ginx.B[ListInvitationsReq](h.List))
	g.POST("/revoke", ginx.B[RevokeInvitationReq](h.Revoke))
}

func (h *AdminHandler) Invite(ctx *ginx.Context, req InviteReq, sess session.Session) (ginx.Result, error) {
	if !strings.Contains(req.Email, "@") {
		return invitationEmailInvalidResult, fmt.Errorf("受邀邮箱非法: %q", req.Email)
	}
	invitation, err := h.svc.Invite(ctx.Request.Context(), sess.Claims().Uid, req.Email)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: InviteResp{
			Code:      invitation.Code,
			ExpiresAt: invitation.ExpiresAt,
		},
	}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListInvitationsReq) (ginx.Result, error) {
	invitations, total, err := h.svc.List(ctx.Request.Context(), req.Offset, req.Limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListInvitationsResp{
			Total: total,
			Invitations: slice.Map(invitations, func(idx int, src domain.Invitation) Invitation {
				return Invitation{
					ID:        src.ID,
					Code:      src.Code,
					InviterID: src.InviterID,
					Email:     src.Email,
					Status:    src.Status.ToUint8(),
					ExpiresAt: src.ExpiresAt,
					Ctime:     src.Ctime,
				}
			}),
		},
	}, nil
}

func (h *AdminHandler) Revoke(ctx *ginx.Context, req RevokeInvitationReq) (ginx.Result, error) {
	err := h.svc.Revoke(ctx.Request.Context(), req.Code)
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrInvitationNotPending):
		return invitationNotPendingResult, nil
	default:
		return systemErrorResult, fmt.Errorf("撤销邀请失败: %w", err)
	}
}
