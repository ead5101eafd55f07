// Package services implements the record operations over the expense slot:
// add, update, delete, lookup, filtering and the derived dashboard views.
//
// Durable-state failures never propagate to callers. A failed load degrades
// to an empty collection and a failed save keeps the in-memory result; both
// are logged. That mirrors the storage contract the data format was born
// with: the collection is a single slot, rewritten wholesale per mutation.
package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"expensetracker/internal/core"
	"expensetracker/internal/store"
)

// ErrNotFound reports an update or lookup against an id that is not in the
// collection.
var ErrNotFound = errors.New("expense not found")

// ExpenseService owns all reads and writes of the expense collection. A
// mutex serializes mutations, since every operation is a full-collection
// read-modify-write.
type ExpenseService struct {
	mu   sync.Mutex
	slot store.Slot
	now  func() time.Time
}

func NewExpenseService(slot store.Slot) *ExpenseService {
	return &ExpenseService{slot: slot, now: time.Now}
}

// loadAll reads the collection, degrading to empty on storage failure.
func (s *ExpenseService) loadAll(ctx context.Context) []core.Expense {
	records, err := s.slot.LoadAll(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Expense slot unreadable, continuing with empty collection", "error", err)
		return []core.Expense{}
	}
	return records
}

// saveAll persists the collection, logging and swallowing write failures.
// Durable state may then lag the in-memory result; acceptable for a
// single-client store.
func (s *ExpenseService) saveAll(ctx context.Context, records []core.Expense) {
	if err := s.slot.SaveAll(ctx, records); err != nil {
		slog.ErrorContext(ctx, "Expense slot write failed, durable state unchanged", "error", err, "count", len(records))
	}
}

// LoadAll returns the full collection, most recently created first.
func (s *ExpenseService) LoadAll(ctx context.Context) []core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadAll(ctx)
}

// Add prepends the record and persists. The caller stamps identity and
// timestamps via core.NewExpense; Add returns the input unchanged.
func (s *ExpenseService) Add(ctx context.Context, e core.Expense) core.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := append([]core.Expense{e}, s.loadAll(ctx)...)
	s.saveAll(ctx, records)

	slog.InfoContext(ctx, "Expense added",
		"id", e.ID,
		"date", e.Date,
		"amount", e.Amount,
		"category", e.Category)
	return e
}

// Update replaces the record whose id matches, preserving the stored id and
// createdAt and forcing updatedAt to now. ErrNotFound if the id is absent.
func (s *ExpenseService) Update(ctx context.Context, e core.Expense) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.loadAll(ctx)
	for i, existing := range records {
		if existing.ID != e.ID {
			continue
		}
		e.CreatedAt = existing.CreatedAt
		e.UpdatedAt = core.Timestamp(s.now())
		records[i] = e
		s.saveAll(ctx, records)

		slog.InfoContext(ctx, "Expense updated", "id", e.ID)
		return e, nil
	}
	return core.Expense{}, ErrNotFound
}

// Delete removes the record with the given id, reporting whether a removal
// occurred. The collection is persisted only on success.
func (s *ExpenseService) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.loadAll(ctx)
	kept := make([]core.Expense, 0, len(records))
	for _, e := range records {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(records) {
		return false
	}
	s.saveAll(ctx, kept)

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return true
}

// GetByID is a pure lookup; ErrNotFound if the id is absent.
func (s *ExpenseService) GetByID(ctx context.Context, id string) (core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.loadAll(ctx) {
		if e.ID == id {
			return e, nil
		}
	}
	return core.Expense{}, ErrNotFound
}

// Filter returns the records matching the supplied options, preserving
// collection order. Empty options return the full collection.
func (s *ExpenseService) Filter(ctx context.Context, opts core.FilterOptions) []core.Expense {
	records := s.LoadAll(ctx)
	if opts.IsZero() {
		return records
	}
	return core.ApplyFilter(records, opts)
}

// Summary computes the dashboard view over the current collection.
func (s *ExpenseService) Summary(ctx context.Context) core.DashboardSummary {
	return core.Summarize(s.LoadAll(ctx), s.now())
}

// CategoryChart computes the per-category chart series.
func (s *ExpenseService) CategoryChart(ctx context.Context) core.ChartSeries {
	return core.CategoryChart(s.LoadAll(ctx))
}

// ExportCSV serializes the current collection for download.
func (s *ExpenseService) ExportCSV(ctx context.Context) string {
	return core.ToCSV(s.LoadAll(ctx))
}

// Close releases the underlying slot.
func (s *ExpenseService) Close() error {
	if s.slot != nil {
		return s.slot.Close()
	}
	return nil
}
