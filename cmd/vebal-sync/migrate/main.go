package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/vebal-sync/pkg/config"
	"github.com/chainsafe/vebal-sync/pkg/migrations/syncdb"
	"github.com/chainsafe/vebal-sync/pkg/pgutil"
	mghelper "github.com/chainsafe/vebal-sync/pkg/pgutil/migrations"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		if errors.Is(err, mghelper.ErrUsage) {
			flag.Usage()
		}
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, mghelper.Usage) }
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("error reading configuration file: %w", err)
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logger.Info("Running migrations for sync database", zap.String("database", cfg.Database.Database))

	migrator := migrate.NewMigrator(db, syncdb.Migrations)
	return mghelper.RunMigrations(ctx, migrator, logger, flag.Args()...)
}
