// Package backend selects and opens the storage slot named by the
// configuration, so the binaries share one construction path.
package backend

import (
	"fmt"
	"log/slog"

	"expensetracker/internal/config"
	"expensetracker/internal/storage"
	"expensetracker/internal/store"
)

// Open returns the slot for cfg.DataBackend. The caller owns the slot and
// closes it through the expense service.
func Open(cfg *config.Config) (store.Slot, error) {
	switch cfg.DataBackend {
	case "file":
		slot, err := store.NewFileSlot(cfg.DataFile)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		slog.Info("Initialized file backend", "path", cfg.DataFile)
		return slot, nil
	case "sqlite":
		repo, err := storage.NewSQLiteRepository(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		slog.Info("Initialized sqlite backend", "path", cfg.SQLiteDBPath)
		return repo, nil
	case "memory":
		slog.Info("Initialized memory backend")
		return store.NewMemorySlot(), nil
	default:
		return nil, fmt.Errorf("unsupported data backend: %s", cfg.DataBackend)
	}
}
