package diag

import (
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"

	cliapp "github.com/warmail-statistics/backend-next/cmd/app/cli"
	"github.com/warmail-statistics/backend-next/internal/app/appconfig"
	"github.com/warmail-statistics/backend-next/internal/service"
)

type commandDeps struct {
	fx.In

	Config *appconfig.Config
	Report *service.Report
	Rollup *service.Rollup
}

func depsFn[T any]() func() T {
	return func() T {
		var deps T
		cliapp.Start(fx.Populate(&deps))
		return deps
	}
}

func Command() *cli.Command {
	deps := depsFn[commandDeps]()
	return &cli.Command{
		Name:        "diag",
		Description: "run engine diagnostics over report documents exported as JSON lines",
		Subcommands: []*cli.Command{
			{
				Name:  "normalize",
				Usage: "normalize report documents and print the typed records",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Required: true, Usage: "path to a JSON-lines report document export"},
				},
				Action: func(ctx *cli.Context) error {
					return runNormalize(deps(), ctx.String("file"))
				},
			},
			{
				Name:  "preview-rollup",
				Usage: "aggregate report documents into pairing rollups for a window",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Required: true, Usage: "path to a JSON-lines report document export"},
					&cli.Float64Flag{Name: "window-start", Required: true, Usage: "window start as an epoch value of any supported magnitude"},
					&cli.Float64Flag{Name: "window-end", Required: true, Usage: "window end as an epoch value of any supported magnitude"},
				},
				Action: func(ctx *cli.Context) error {
					return runPreviewRollup(deps(), ctx.String("file"), ctx.Float64("window-start"), ctx.Float64("window-end"))
				},
			},
		},
	}
}
