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

package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/safetap/internal/invitation"
	"github.com/ecodeclub/safetap/internal/order"
	"github.com/ecodeclub/safetap/internal/payment"
	"github.com/ecodeclub/safetap/internal/permission"
	"github.com/ecodeclub/safetap/internal/pkg/middleware"
	"github.com/ecodeclub/safetap/internal/promotion"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

// InitAdminServer 后台服务, 每个模块挂在自己要求的能力中间件下面
func InitAdminServer(sp session.Provider,
	mb *middleware.MetricsBuilder,
	permissionModule *permission.Module,
	promotionModule *promotion.Module,
	orderModule *order.Module,
	paymentModule *payment.Module,
	invitationModule *invitation.Module,
) AdminServer {
	session.SetDefaultProvider(sp)
	res := egin.Load("admin").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "safetap.cn")
		},
	}))
	res.Use(mb.Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})

	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	// 没有进后台的资格就什么都别想看
	res.Use(capability(permissionModule.Svc, permission.CapabilityViewBackoffice))
	orderModule.AdminHdl.PrivateRoutes(res.Engine,
		capability(permissionModule.Svc, permission.CapabilityManageOrders))
	paymentModule.AdminHdl.PrivateRoutes(res.Engine,
		capability(permissionModule.Svc, permission.CapabilityManagePayments))
	promotionModule.AdminHdl.PrivateRoutes(res.Engine,
		capability(permissionModule.Svc, permission.CapabilityManagePromotions))
	invitationModule.AdminHdl.PrivateRoutes(res.Engine,
		capability(permissionModule.Svc, permission.CapabilityManageAdmins))
	return res
}

func capability(svc permission.Service, c permission.Capability) gin.HandlerFunc {
	return middleware.NewCheckCapabilityMiddlewareBuilder(svc, c).Build()
}
