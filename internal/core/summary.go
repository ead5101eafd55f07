package core

import (
	"sort"
	"time"
)

// TopCategoryLimit is the ranking depth used on the dashboard.
const TopCategoryLimit = 3

// RecentExpenseLimit is how many recent records the dashboard shows.
const RecentExpenseLimit = 5

type (
	// CategoryAmount is an amount aggregated under one category.
	CategoryAmount struct {
		Category Category `json:"category"`
		Amount   float64  `json:"amount"`
	}

	// DashboardSummary is the composed dashboard view. Always computed on
	// demand, never persisted.
	DashboardSummary struct {
		TotalExpenses   float64          `json:"totalExpenses"`
		MonthlyExpenses float64          `json:"monthlyExpenses"`
		TopCategories   []CategoryAmount `json:"topCategories"`
		RecentExpenses  []Expense        `json:"recentExpenses"`
	}
)

// Total sums amounts over the records; 0 for empty input.
func Total(records []Expense) float64 {
	var total float64
	for _, e := range records {
		total += e.Amount
	}
	return total
}

// CurrentMonth keeps records dated in the same calendar year and month as
// now. The reference time is injected so summaries are testable.
func CurrentMonth(records []Expense, now time.Time) []Expense {
	prefix := now.Format("2006-01")
	out := make([]Expense, 0, len(records))
	for _, e := range records {
		if len(e.Date) >= len(prefix) && e.Date[:len(prefix)] == prefix {
			out = append(out, e)
		}
	}
	return out
}

// ByCategory sums amounts per category. Categories with no matching record
// are absent from the map, not present with zero.
func ByCategory(records []Expense) map[Category]float64 {
	sums := make(map[Category]float64)
	for _, e := range records {
		sums[e.Category] += e.Amount
	}
	return sums
}

// TopCategories ranks the per-category sums descending by amount, truncated
// to limit. Equal amounts keep category enumeration order.
func TopCategories(records []Expense, limit int) []CategoryAmount {
	sums := ByCategory(records)
	ranked := make([]CategoryAmount, 0, len(sums))
	for _, c := range Categories() {
		if amount, ok := sums[c]; ok {
			ranked = append(ranked, CategoryAmount{Category: c, Amount: amount})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// Summarize composes the dashboard: overall total, current-month total, top
// three categories, and the five most recent records by date. The date sort
// is stable, so records sharing a date keep their insertion order.
func Summarize(records []Expense, now time.Time) DashboardSummary {
	recent := make([]Expense, len(records))
	copy(recent, records)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Date > recent[j].Date
	})
	if len(recent) > RecentExpenseLimit {
		recent = recent[:RecentExpenseLimit]
	}

	return DashboardSummary{
		TotalExpenses:   Total(records),
		MonthlyExpenses: Total(CurrentMonth(records, now)),
		TopCategories:   TopCategories(records, TopCategoryLimit),
		RecentExpenses:  recent,
	}
}
