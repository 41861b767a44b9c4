/*
Copyright © 2026 Larder Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"github.com/urfave/cli/v3"

	"github.com/larderhq/larder/pkg/serializer"
)

var (
	catalogFlag = &cli.StringFlag{
		Name:  "catalog",
		Usage: "Path to an external catalog file (JSON or YAML). Defaults to the embedded catalog.",
	}

	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Write output to file instead of stdout",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   serializer.FormatJSON.String(),
		Usage:   "Output format (json or yaml)",
	}
)
