package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/warmail-statistics/backend-next/internal/app/appconfig"
	"github.com/warmail-statistics/backend-next/internal/app/appcontext"
	"github.com/warmail-statistics/backend-next/internal/pkg/logger"
	"github.com/warmail-statistics/backend-next/internal/service"
)

func Options(ctx appcontext.Ctx, additionalOpts ...fx.Option) []fx.Option {
	conf, err := appconfig.Parse(ctx)
	if err != nil {
		panic(err)
	}

	// logger and configuration are the only two things that are not in the fx graph
	// because some other packages need them to be initialized before fx starts
	logger.Configure(conf)

	baseOpts := []fx.Option{
		// fx meta
		fx.WithLogger(logger.Fx),

		// Configuration
		fx.Supply(conf),

		// Services
		service.Module(),

		// fx Extra Options
		fx.StartTimeout(1 * time.Second),
	}

	return append(baseOpts, additionalOpts...)
}

func New(ctx appcontext.Ctx, additionalOpts ...fx.Option) *fx.App {
	return fx.New(Options(ctx, additionalOpts...)...)
}
