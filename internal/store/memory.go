package store

import (
	"context"
	"sync"

	"expensetracker/internal/core"
)

// MemorySlot is a throwaway in-process slot, used by tests and as a
// zero-setup backend.
type MemorySlot struct {
	mu      sync.Mutex
	records []core.Expense
}

func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

func (s *MemorySlot) LoadAll(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Expense, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemorySlot) SaveAll(_ context.Context, records []core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]core.Expense, len(records))
	copy(s.records, records)
	return nil
}

func (s *MemorySlot) Close() error { return nil }
