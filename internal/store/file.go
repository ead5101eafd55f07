package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"expensetracker/internal/core"
)

// FileSlot keeps the collection in one JSON file. The file's value is the
// same JSON array the original browser build kept under its localStorage
// key, so data can move between the two without conversion.
type FileSlot struct {
	path string
}

func NewFileSlot(path string) (*FileSlot, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	return &FileSlot{path: path}, nil
}

func (s *FileSlot) LoadAll(ctx context.Context) ([]core.Expense, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []core.Expense{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read expense slot: %w", err)
	}

	var records []core.Expense
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode expense slot: %w", err)
	}
	slog.DebugContext(ctx, "Expense slot loaded", "path", s.path, "count", len(records))
	return records, nil
}

func (s *FileSlot) SaveAll(ctx context.Context, records []core.Expense) error {
	if records == nil {
		records = []core.Expense{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode expense slot: %w", err)
	}

	// Write-then-rename so a failed write never truncates the prior state.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write expense slot: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace expense slot: %w", err)
	}
	slog.DebugContext(ctx, "Expense slot saved", "path", s.path, "count", len(records))
	return nil
}

func (s *FileSlot) Close() error { return nil }
