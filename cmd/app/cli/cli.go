package cli

import (
	"context"

	"go.uber.org/fx"

	"github.com/warmail-statistics/backend-next/internal/app"
	"github.com/warmail-statistics/backend-next/internal/app/appcontext"
)

func Start(module fx.Option) {
	app.New(appcontext.Declare(appcontext.EnvCLI), module).Start(context.Background())
}
