// Package main implements the entry point for the pig API server, an HTTP
// gateway in front of the PostgreSQL stored routines that manage people and
// their things.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/phrazzld/pig-api/internal/config"
	"github.com/phrazzld/pig-api/internal/platform/postgres"
)

// options holds the command line flags.
type options struct {
	configPath string
	migrate    string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if err := run(context.Background(), opts); err != nil {
		log.Fatalf("pig-api: %v", err)
	}
}

// parseFlags parses the command line. Usage errors are written to output.
func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file (default ./config.yaml if present)")
	fs.StringVar(&opts.migrate, "migrate", "", "run a migration command (up, down, status, version, reset) and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.migrate != "" && !postgres.IsMigrationCommand(opts.migrate) {
		err := fmt.Errorf("unknown migration command %q", opts.migrate)
		fmt.Fprintln(output, err)
		return options{}, err
	}

	return opts, nil
}

// run wires the application and either runs a migration or serves HTTP
// until the process is signalled.
func run(ctx context.Context, opts options) error {
	cfg, err := initializeApp(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		return err
	}

	pool, err := setupAppDatabase(ctx, cfg, logger)
	if err != nil {
		return err
	}

	if opts.migrate != "" {
		defer pool.Close()
		return handleMigrations(ctx, pool, opts.migrate, logger)
	}

	app := newApplication(cfg, logger, pool)
	return app.Run(ctx)
}

// initializeApp loads configuration and logs its non-secret parts.
func initializeApp(configPath string) (*config.Config, error) {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"request_timeout", cfg.Server.RequestTimeout,
		"schema", cfg.Database.Schema)

	return cfg, nil
}
