package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/apache/internal/adapters/logging"
	"github.com/AntonioJCosta/apache/internal/adapters/oscommand"
	"github.com/AntonioJCosta/apache/internal/adapters/probecatalog"
	"github.com/AntonioJCosta/apache/internal/core/services/dispatch"
	"github.com/AntonioJCosta/apache/internal/handlers/cli"
	"github.com/AntonioJCosta/apache/internal/repositories/settings"
)

// Version is set at build time
var Version = "dev"

func main() {
	// The embedded table defines the flags; config overrides only change commands.
	catalog, err := probecatalog.NewYAMLProvider(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading probe table: %v\n", err)
		os.Exit(1)
	}

	rootCmd := cli.NewRootCommand(Version, catalog, newRuntime)
	os.Exit(cli.Execute(rootCmd))
}

func newRuntime(opts cli.RunOptions) (cli.Runtime, error) {
	cfg, err := settings.Load(opts.ConfigFile)
	if err != nil {
		return cli.Runtime{}, err
	}

	level := cfg.LogLevel
	if opts.Verbose && level == "" {
		level = "debug"
	}
	logger, err := logging.NewLogger(level, opts.Stderr)
	if err != nil {
		return cli.Runtime{}, err
	}

	catalog, err := probecatalog.NewYAMLProvider(cfg.Probes)
	if err != nil {
		return cli.Runtime{}, fmt.Errorf("applying probe overrides: %w", err)
	}

	executor := oscommand.NewOSCommandExecutor(oscommand.Config{
		Shell:          cfg.Shell,
		ChunkSize:      cfg.ChunkSize,
		MaxOutputBytes: cfg.MaxOutputBytes,
	}, logger)

	return cli.Runtime{
		Catalog:    catalog,
		Dispatcher: dispatch.NewService(catalog, executor, opts.Presenter, logger),
	}, nil
}
