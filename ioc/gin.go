package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/safetap/internal/invitation"
	"github.com/ecodeclub/safetap/internal/order"
	"github.com/ecodeclub/safetap/internal/pkg/middleware"
	"github.com/ecodeclub/safetap/internal/profile"
	"github.com/ecodeclub/safetap/internal/promotion"
	"github.com/ecodeclub/safetap/internal/sticker"
	"github.com/ecodeclub/safetap/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	mb *middleware.MetricsBuilder,
	userModule *user.Module,
	profileModule *profile.Module,
	promotionModule *promotion.Module,
	orderModule *order.Module,
	stickerModule *sticker.Module,
	invitationModule *invitation.Module,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
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
	// 扫码和二维码是公开的, 扫的人不需要账号
	userModule.Hdl.PublicRoutes(res.Engine)
	stickerModule.Hdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	userModule.Hdl.PrivateRoutes(res.Engine)
	profileModule.Hdl.PrivateRoutes(res.Engine)
	promotionModule.Hdl.PrivateRoutes(res.Engine)
	orderModule.Hdl.PrivateRoutes(res.Engine)
	stickerModule.Hdl.PrivateRoutes(res.Engine)
	invitationModule.Hdl.PrivateRoutes(res.Engine)
	return res
}

func initMetricsBuilder() *middleware.MetricsBuilder {
	return middleware.NewMetricsBuilder()
}
