package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/larderhq/larder/pkg/catalog"
	"github.com/larderhq/larder/pkg/logging"
	"github.com/larderhq/larder/pkg/server"
	"github.com/larderhq/larder/pkg/suggest"
	"golang.org/x/sync/errgroup"
)

const (
	name           = "larder-api-server"
	versionDefault = "dev"

	// catalogPathEnvVar points the server at an external catalog file.
	// When unset, the embedded catalog is used.
	catalogPathEnvVar = "LARDER_CATALOG"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/larderhq/larder/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, loads the catalog, sets up routes, and handles
// graceful shutdown. Returns an error if the server fails to start or
// encounters a fatal error.
func Serve() error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	var opts []catalog.StoreOption
	if path := os.Getenv(catalogPathEnvVar); path != "" {
		opts = append(opts, catalog.WithCatalogPath(path))
	}

	store, err := catalog.NewStore(opts...)
	if err != nil {
		slog.Error("failed to load catalog", "error", err)
		return err
	}

	// Surface catalog authoring problems at startup; they are advisory,
	// affected recipes just never resolve.
	for _, issue := range catalog.Validate(store.Definitions()) {
		slog.Warn("catalog issue", "kind", issue.Kind, "recipe", issue.Recipe, "detail", issue.Detail)
	}

	h := suggest.NewHandler(store)

	routes := map[string]http.HandlerFunc{
		"/v1/suggestions":    h.HandleSuggestions,
		"/v1/recipes/{name}": h.HandleRecipeDetails,
		"/v1/ingredients":    h.HandleIngredients,
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandlers(routes),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.Run(gctx)
	})

	// Hot-reload the catalog when an external file is in use.
	g.Go(func() error {
		return store.Watch(gctx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
