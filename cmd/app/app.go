package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/warmail-statistics/backend-next/cmd/app/diag"
)

func Run() {
	app := &cli.App{
		Name:        "wmbackend",
		Description: "The warmail report normalization and rollup engine. Built with Go and go.uber.org/fx; decodes battle-report mail payloads and rolls them up into per-pairing statistics.",
		Commands: []*cli.Command{
			diag.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
