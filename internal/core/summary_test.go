package core

import (
	"testing"
	"time"
)

func TestTotal(t *testing.T) {
	if got := Total(nil); got != 0 {
		t.Fatalf("empty input: got %v, want 0", got)
	}
	records := []Expense{{Amount: 10}, {Amount: 20}, {Amount: 5}}
	if got := Total(records); got != 35 {
		t.Fatalf("got %v, want 35", got)
	}
}

func TestCurrentMonth(t *testing.T) {
	records := []Expense{
		{ID: "a", Date: "2025-09-01"},
		{ID: "b", Date: "2025-09-30"},
		{ID: "c", Date: "2025-08-31"},
		{ID: "d", Date: "2024-09-15"}, // same month, different year
	}
	now := time.Date(2025, 9, 30, 12, 0, 0, 0, time.UTC)
	got := CurrentMonth(records, now)
	if !equalIDs(ids(got), []string{"a", "b"}) {
		t.Fatalf("got %v, want [a b]", ids(got))
	}
}

func TestByCategory(t *testing.T) {
	records := []Expense{
		{Amount: 10, Category: Food},
		{Amount: 20, Category: Food},
		{Amount: 5, Category: Bills},
	}
	sums := ByCategory(records)
	if len(sums) != 2 {
		t.Fatalf("categories without records must be absent, got %v", sums)
	}
	if sums[Food] != 30 || sums[Bills] != 5 {
		t.Fatalf("got %v", sums)
	}
}

func TestTopCategories(t *testing.T) {
	records := []Expense{
		{Amount: 10, Category: Shopping},
		{Amount: 10, Category: Food}, // ties with Shopping; Food wins by enumeration order
		{Amount: 50, Category: Bills},
		{Amount: 5, Category: Other},
	}
	got := TopCategories(records, 3)
	want := []CategoryAmount{{Bills, 50}, {Food, 10}, {Shopping, 10}}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rank %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTopCategoriesLimit(t *testing.T) {
	records := []Expense{
		{Amount: 1, Category: Food},
		{Amount: 2, Category: Bills},
	}
	if got := TopCategories(records, 1); len(got) != 1 || got[0].Category != Bills {
		t.Fatalf("got %v", got)
	}
	if got := TopCategories(nil, 3); len(got) != 0 {
		t.Fatalf("empty input: got %v", got)
	}
}

func TestSummarize(t *testing.T) {
	records := []Expense{
		{ID: "1", Date: "2025-09-01", Amount: 10, Category: Food, Description: "a"},
		{ID: "2", Date: "2025-09-02", Amount: 20, Category: Food, Description: "b"},
		{ID: "3", Date: "2025-08-01", Amount: 5, Category: Bills, Description: "c"},
	}
	now := time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	s := Summarize(records, now)

	if s.TotalExpenses != 35 {
		t.Fatalf("total: got %v, want 35", s.TotalExpenses)
	}
	if s.MonthlyExpenses != 30 {
		t.Fatalf("monthly: got %v, want 30", s.MonthlyExpenses)
	}
	wantTop := []CategoryAmount{{Food, 30}, {Bills, 5}}
	if len(s.TopCategories) != 2 || s.TopCategories[0] != wantTop[0] || s.TopCategories[1] != wantTop[1] {
		t.Fatalf("top categories: got %v, want %v", s.TopCategories, wantTop)
	}
	if !equalIDs(ids(s.RecentExpenses), []string{"2", "1", "3"}) {
		t.Fatalf("recent: got %v, want [2 1 3]", ids(s.RecentExpenses))
	}
}

func TestSummarizeRecentStability(t *testing.T) {
	// Six records on the same date: the five kept must preserve insertion
	// order, and the overall recent list is capped at five.
	var records []Expense
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		records = append(records, Expense{ID: id, Date: "2025-09-10", Amount: 1, Category: Food})
	}
	s := Summarize(records, time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC))
	if !equalIDs(ids(s.RecentExpenses), []string{"a", "b", "c", "d", "e"}) {
		t.Fatalf("got %v", ids(s.RecentExpenses))
	}
}
