/*
Copyright © 2026 Larder Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/larderhq/larder/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the suggestion API server",
		Description: `Run the HTTP API server. Listens on PORT (default 8080) and serves
suggestion, recipe detail, and ingredient endpoints along with health
and Prometheus metrics routes.`,
		Flags: []cli.Flag{
			catalogFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if path := cmd.String("catalog"); path != "" {
				// The server reads its catalog location from the environment
				// so the same wiring works for the standalone daemon.
				if err := os.Setenv("LARDER_CATALOG", path); err != nil {
					return err
				}
			}
			return api.Serve()
		},
	}
}
