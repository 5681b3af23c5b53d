// Package backend selects and builds the configured persistence backend.
package backend

import (
	"context"
	"fmt"

	"sintomi/internal/config"
	"sintomi/internal/log"
	"sintomi/internal/storage"
	"sintomi/internal/store"
	"sintomi/internal/store/csvfile"
	gsheet "sintomi/internal/store/google"
	"sintomi/internal/store/memory"
)

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result contains the built store and an optional cleanup function.
type Result struct {
	Store   store.Store
	Cleanup CleanupFunc
}

type Factory struct {
	logger *log.Logger
}

func NewFactory(logger *log.Logger) *Factory {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &Factory{logger: logger.WithComponent(log.ComponentStore)}
}

// CreateBackend builds the store named by cfg.DataBackend.
func (f *Factory) CreateBackend(ctx context.Context, cfg *config.Config) (*Result, error) {
	switch cfg.DataBackend {
	case "csv":
		f.logger.Info("Initialized CSV backend", "data_path", cfg.CSVDataPath)
		return &Result{Store: csvfile.New(cfg.CSVDataPath)}, nil

	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize SQLite repository: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Store: repo, Cleanup: repo.Close}, nil

	case "sheets":
		cli, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			return nil, fmt.Errorf("initialize Google Sheets client: %w", err)
		}
		f.logger.Info("Initialized Google Sheets backend", "spreadsheet_id", cfg.GoogleSpreadsheetID)
		return &Result{Store: cli}, nil

	case "memory":
		f.logger.Info("Initialized memory backend")
		return &Result{Store: memory.New()}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}
}
