package root

import (
	"context"
	"log/slog"
	"os"

	"github.com/p119ro/dopelganger/internal/config"
	"github.com/p119ro/dopelganger/internal/engine"
	"github.com/p119ro/dopelganger/internal/storage"
)

// openService loads config, opens the state database, and initializes the
// engine (which also settles any days elapsed since the last run).
func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	cfg := config.Default()

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return nil, cfg, nil, err
	}
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return nil, cfg, nil, err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath, err = storage.DefaultDBPath()
		if err != nil {
			return nil, cfg, nil, err
		}
	}

	db, err := storage.Open(ctx, dbPath)
	if err != nil {
		return nil, cfg, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc := engine.NewService(storage.NewStore(db), cfg)
	if verbose {
		svc.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}
	if err := svc.Init(ctx); err != nil {
		cleanup()
		return nil, cfg, nil, err
	}
	return svc, cfg, cleanup, nil
}
