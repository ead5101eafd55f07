package core

import "strings"

// FilterOptions narrows a collection. Zero-valued fields impose no
// constraint; all supplied constraints must hold (AND semantics).
type FilterOptions struct {
	StartDate   string   // inclusive, YYYY-MM-DD
	EndDate     string   // inclusive, YYYY-MM-DD
	Category    Category // exact match
	SearchQuery string   // case-insensitive substring of description or category
}

// IsZero reports whether no constraint is set.
func (o FilterOptions) IsZero() bool {
	return o == FilterOptions{}
}

// ApplyFilter returns the records satisfying every supplied constraint, in
// their original order. Fixed-width ISO dates make the lexicographic range
// comparison correct.
func ApplyFilter(records []Expense, o FilterOptions) []Expense {
	out := make([]Expense, 0, len(records))
	query := strings.ToLower(o.SearchQuery)
	for _, e := range records {
		if o.StartDate != "" && e.Date < o.StartDate {
			continue
		}
		if o.EndDate != "" && e.Date > o.EndDate {
			continue
		}
		if o.Category != "" && e.Category != o.Category {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Description), query) &&
			!strings.Contains(strings.ToLower(string(e.Category)), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}
