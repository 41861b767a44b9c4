/*
Copyright © 2026 Larder Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/larderhq/larder/pkg/catalog"
	"github.com/larderhq/larder/pkg/serializer"
)

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check a recipe catalog for authoring problems",
		Description: `Check a catalog for problems the parser deliberately accepts:
  - sub-recipe dependency cycles (those recipes can never be prepared)
  - sub-recipe references to recipes that don't exist
  - duplicate recipe names

The catalog still loads and solves with these issues present; the affected
recipes just never resolve. Exits non-zero when issues are found.`,
		Flags: []cli.Flag{
			catalogFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q (supported: %s)",
					outFormat, serializer.SupportedFormats())
			}

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			issues := catalog.Validate(store.Definitions())

			report := struct {
				Recipes int             `json:"recipes" yaml:"recipes"`
				Issues  []catalog.Issue `json:"issues" yaml:"issues"`
			}{
				Recipes: len(store.Definitions()),
				Issues:  issues,
			}

			if err := serializer.WriteFile(cmd.String("output"), outFormat, report); err != nil {
				return err
			}

			if len(issues) > 0 {
				return fmt.Errorf("catalog has %d issue(s)", len(issues))
			}
			return nil
		},
	}
}
