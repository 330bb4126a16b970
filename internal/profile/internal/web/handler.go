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
	"github.com/ecodeclub/safetap/internal/profile/internal/domain"
	"github.com/ecodeclub/safetap/internal/profile/internal/service"
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
	g := server.Group("/profile")
	g.POST("/save", ginx.BS[SaveProfileReq](h.Save))
	g.POST("/detail", ginx.BS[ProfileReq](h.Detail))
	g.POST("/list", ginx.S(h.List))
	g.POST("/delete", ginx.BS[ProfileReq](h.Delete))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Save(ctx *ginx.Context, req SaveProfileReq, sess session.Session) (ginx.Result, error) {
	if req.Profile.Name == "" {
		return invalidProfileResult, fmt.Errorf("展示姓名不能为空")
	}
	id, err := h.svc.Save(ctx.Request.Context(), domain.Profile{
		ID:          req.Profile.ID,
		OwnerID:     sess.Claims().Uid,
		Name:        req.Profile.Name,
		BloodType:   req.Profile.BloodType,
		Allergies:   req.Profile.Allergies,
		Medications: req.Profile.Medications,
		Conditions:  req.Profile.Conditions,
		Notes:       req.Profile.Notes,
		Contacts: slice.Map(req.Profile.Contacts, func(idx int, src Contact) domain.Contact {
			return domain.Contact{Name: src.Name, Relation: src.Relation, Phone: src.Phone}
		}),
	})
	if err != nil {
		return systemErrorResult, fmt.Errorf("保存急救资料失败: %w", err)
	}
	return ginx.Result{
		Data: SaveProfileResp{ID: id},
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ProfileReq, sess session.Session) (ginx.Result, error) {
	profile, err := h.svc.Detail(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	if errors.Is(err, service.ErrProfileNotFound) {
		return profileNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, fmt.Errorf("查找急救资料失败: %w", err)
	}
	return ginx.Result{
		Data: ProfileResp{Profile: toProfileVO(profile)},
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	profiles, err := h.svc.List(ctx.Request.Context(), sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListProfilesResp{
			Profiles: slice.Map(profiles, func(idx int, src domain.Profile) Profile {
				return toProfileVO(src)
			}),
		},
	}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req ProfileReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.ID, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, fmt.Errorf("删除急救资料失败: %w", err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func toProfileVO(profile domain.Profile) Profile {
	return Profile{
		ID:          profile.ID,
		Name:        profile.Name,
		BloodType:   profile.BloodType,
		Allergies:   profile.Allergies,
		Medications: profile.Medications,
		Conditions:  profile.Conditions,
		Notes:       profile.Notes,
		Contacts: slice.Map(profile.Contacts, func(idx int, src domain.Contact) Contact {
			return Contact{Name: src.Name, Relation: src.Relation, Phone: src.Phone}
		}),
		Utime: profile.Utime,
	}
}
