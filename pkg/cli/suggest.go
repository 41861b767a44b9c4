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
	"github.com/larderhq/larder/pkg/suggest"
)

func suggestCmd() *cli.Command {
	return &cli.Command{
		Name:                  "suggest",
		EnableShellCompletion: true,
		Usage:                 "Suggest recipes preparable from the given ingredients",
		Description: `Suggest recipes based on what you have on hand:
  - Ingredients you own
  - Recipes you have already prepared (they unlock recipes that build on them)
  - An optional time budget in minutes
  - An optional category filter

Recipes that depend on other recipes are resolved transitively: if you can
make the dough, you can make the cake. Recipes missing only one or two
ingredients are reported as nearly possible, with an explanation.

Results can be output in JSON or YAML format.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "ingredients",
				Aliases: []string{"i"},
				Usage:   "Ingredient you have (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "made",
				Aliases: []string{"m"},
				Usage:   "Recipe you have already prepared (repeatable)",
			},
			&cli.StringFlag{
				Name:    "category",
				Aliases: []string{"c"},
				Usage:   "Only suggest recipes from this category",
			},
			&cli.IntFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "Available preparation time in minutes (0 = unlimited)",
			},
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

			if cmd.Int("time") < 0 {
				return fmt.Errorf("time cannot be negative: %d", cmd.Int("time"))
			}

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			resp := suggest.FindRecipes(store.Definitions(), suggest.Request{
				Ingredients:     cmd.StringSlice("ingredients"),
				AlreadyPrepared: cmd.StringSlice("made"),
				Category:        cmd.String("category"),
				Time:            cmd.Int("time"),
			})

			return serializer.WriteFile(cmd.String("output"), outFormat, resp)
		},
	}
}

// loadStore builds a catalog store from the --catalog flag, falling back to
// the embedded catalog.
func loadStore(cmd *cli.Command) (*catalog.Store, error) {
	var opts []catalog.StoreOption
	if path := cmd.String("catalog"); path != "" {
		opts = append(opts, catalog.WithCatalogPath(path))
	}

	store, err := catalog.NewStore(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return store, nil
}
