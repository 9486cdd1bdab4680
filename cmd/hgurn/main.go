// Command hgurn normalises gazetteer and knowledge base identifiers to
// canonical URNs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/custodia-labs/hgurn/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hgurn/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/hgurn/internal/adapters/driving/cli"
	"github.com/custodia-labs/hgurn/internal/core/ports/driven"
	"github.com/custodia-labs/hgurn/internal/core/services"
	"github.com/custodia-labs/hgurn/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	config, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	registry, err := services.NewDefaultNamespaceRegistry()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	if path := config.GetString(driven.ConfigKeyNamespacesFile); path != "" {
		defs, err := file.LoadNamespaceDefinitions(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return err
		}
		if err := registry.RegisterDefinitions(defs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", path, err)
			return err
		}
	}

	translator := services.NewTranslator(registry)

	// Opened only by commands that record or look up concordance.
	store := sqlite.NewLazyStore(config.GetString(driven.ConfigKeyDataDir))
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing concordance store: %v", err)
		}
	}()

	cli.SetServices(cli.Services{
		URN:            translator,
		Batch:          services.NewBatchService(translator, store, uuid.NewString),
		Config:         config,
		LoadNamespaces: file.LoadNamespaceDefinitions,
	})

	return cli.Execute(ctx, version)
}
