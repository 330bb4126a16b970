//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/safetap/internal/invitation"
	"github.com/ecodeclub/safetap/internal/order"
	"github.com/ecodeclub/safetap/internal/payment"
	"github.com/ecodeclub/safetap/internal/permission"
	"github.com/ecodeclub/safetap/internal/profile"
	"github.com/ecodeclub/safetap/internal/promotion"
	"github.com/ecodeclub/safetap/internal/sticker"
	"github.com/ecodeclub/safetap/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitSession, initMetricsBuilder)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		permission.InitModule,
		user.InitModule,
		profile.InitModule,
		payment.InitModule,
		promotion.InitModule,
		order.InitModule,
		sticker.InitModule,
		invitation.InitModule,
		initCloseExpiredOrdersJob,
		initCronJobs,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
