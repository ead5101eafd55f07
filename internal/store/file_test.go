package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"expensetracker/internal/core"
)

func newTestFileSlot(t *testing.T) *FileSlot {
	t.Helper()
	slot, err := NewFileSlot(filepath.Join(t.TempDir(), "expenses.json"))
	if err != nil {
		t.Fatalf("NewFileSlot: %v", err)
	}
	return slot
}

func TestFileSlotMissingFileIsEmpty(t *testing.T) {
	slot := newTestFileSlot(t)
	records, err := slot.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("got %d records, want 0", len(records))
	}
}

func TestFileSlotMalformedContent(t *testing.T) {
	slot := newTestFileSlot(t)
	if err := os.WriteFile(slot.path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := slot.LoadAll(context.Background()); err == nil {
		t.Fatalf("expected error for malformed content")
	}
}

func TestFileSlotRoundTrip(t *testing.T) {
	slot := newTestFileSlot(t)
	ctx := context.Background()

	records := []core.Expense{
		core.NewExpense("2025-09-15", 34.99, core.Food, "Lunch"),
		core.NewExpense("2025-09-10", 22.30, core.Transportation, "Taxi ride"),
	}
	if err := slot.SaveAll(ctx, records); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	got, err := slot.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
	for i := range records {
		if got[i] != records[i] {
			t.Fatalf("record %d: got %+v, want %+v", i, got[i], records[i])
		}
	}
}

func TestFileSlotReplacesContents(t *testing.T) {
	slot := newTestFileSlot(t)
	ctx := context.Background()

	if err := slot.SaveAll(ctx, []core.Expense{core.NewExpense("2025-09-15", 1, core.Food, "old")}); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}
	if err := slot.SaveAll(ctx, nil); err != nil {
		t.Fatalf("SaveAll empty: %v", err)
	}
	got, err := slot.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("save should replace wholesale, got %+v", got)
	}
}

// The on-disk value is the same JSON array the original browser build kept
// in localStorage; field names are part of the contract.
func TestFileSlotJSONShape(t *testing.T) {
	slot := newTestFileSlot(t)
	ctx := context.Background()

	e := core.NewExpense("2025-09-15", 34.99, core.Food, "Lunch")
	if err := slot.SaveAll(ctx, []core.Expense{e}); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	raw, err := os.ReadFile(slot.path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var generic []map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"id", "date", "amount", "category", "description", "createdAt", "updatedAt"} {
		if _, ok := generic[0][field]; !ok {
			t.Fatalf("persisted JSON missing field %q: %s", field, raw)
		}
	}
	if !strings.HasPrefix(string(raw), "[") {
		t.Fatalf("slot value must be a JSON array, got %s", raw)
	}
}

func TestMemorySlotIsolation(t *testing.T) {
	slot := NewMemorySlot()
	ctx := context.Background()

	records := []core.Expense{core.NewExpense("2025-09-15", 1, core.Food, "x")}
	if err := slot.SaveAll(ctx, records); err != nil {
		t.Fatalf("SaveAll: %v", err)
	}

	got, _ := slot.LoadAll(ctx)
	got[0].Description = "mutated"

	again, _ := slot.LoadAll(ctx)
	if again[0].Description != "x" {
		t.Fatalf("loaded slice must not alias internal state")
	}
}
