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

package middleware

import (
	"net/http"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/safetap/internal/permission"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckCapabilityMiddlewareBuilder 后台路由的权限校验,
// 角色从会话 claims 里读, 能力判定交给 permission 模块的静态策略
type CheckCapabilityMiddlewareBuilder struct {
	svc        permission.Service
	capability permission.Capability
	logger     *elog.Component
	sp         session.Provider
}

func NewCheckCapabilityMiddlewareBuilder(svc permission.Service,
	capability permission.Capability) *CheckCapabilityMiddlewareBuilder {
	return &CheckCapabilityMiddlewareBuilder{
		svc:        svc,
		capability: capability,
		logger:     elog.DefaultLogger,
	}
}

func (c *CheckCapabilityMiddlewareBuilder) Build() gin.HandlerFunc {
	if c.sp == nil {
		c.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := c.sp.Get(gctx)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("用户未登录", elog.FieldErr(err))
			return
		}

		claims := sess.Claims()
		roleStr, _ := claims.Get("role").AsString()
		role, err := strconv.ParseUint(roleStr, 10, 8)
		if err != nil {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("会话中没有合法的角色信息",
				elog.FieldErr(err),
				elog.Int64("uid", claims.Uid))
			return
		}

		if !c.svc.Allows(uint8(role), c.capability) {
			gctx.AbortWithStatus(http.StatusForbidden)
			c.logger.Debug("用户无权限",
				elog.Int64("uid", claims.Uid),
				elog.String("capability", string(c.capability)))
			return
		}
	}
}
