package core

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Food           Category = "Food"
	Transportation Category = "Transportation"
	Entertainment  Category = "Entertainment"
	Shopping       Category = "Shopping"
	Bills          Category = "Bills"
	Other          Category = "Other"
)

// DateLayout is the calendar-date format used on Expense.Date.
const DateLayout = "2006-01-02"

// timestampLayout matches the ISO-8601 form the persisted JSON has always
// carried (UTC, millisecond precision).
const timestampLayout = "2006-01-02T15:04:05.000Z"

type (
	// Category is the closed set of expense categories.
	Category string

	// Expense is the sole persisted entity. Field names and types mirror the
	// JSON snapshot format exactly; changing a tag breaks existing data.
	Expense struct {
		ID          string   `json:"id"`
		Date        string   `json:"date"` // YYYY-MM-DD
		Amount      float64  `json:"amount"`
		Category    Category `json:"category"`
		Description string   `json:"description"`
		CreatedAt   string   `json:"createdAt"`
		UpdatedAt   string   `json:"updatedAt"`
	}
)

var (
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
	ErrUnknownCategory  = errors.New("unknown category")
)

// Categories returns every category in canonical enumeration order. This
// order is the deterministic tie-break for rankings and chart series.
func Categories() []Category {
	return []Category{Food, Transportation, Entertainment, Shopping, Bills, Other}
}

// ParseCategory validates a raw string against the closed enumeration.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	for _, known := range Categories() {
		if c == known {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Color returns the fixed display color for the category. Unknown values
// fall back to the Other color so a corrupted record still renders.
func (c Category) Color() string {
	switch c {
	case Food:
		return "#FF6384"
	case Transportation:
		return "#36A2EB"
	case Entertainment:
		return "#FFCE56"
	case Shopping:
		return "#4BC0C0"
	case Bills:
		return "#9966FF"
	case Other:
		return "#C9CBCF"
	}
	return "#C9CBCF"
}

// NewExpense stamps a fresh record with a unique ID and identical
// created/updated timestamps. It does not persist.
func NewExpense(date string, amount float64, category Category, description string) Expense {
	now := Timestamp(time.Now())
	return Expense{
		ID:          uuid.NewString(),
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Timestamp formats t in the persisted ISO-8601 form. The layout sorts
// lexicographically, so string comparison of timestamps is ordering-safe.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func (e Expense) Validate() error {
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return ErrInvalidDate
	}
	if e.Amount <= 0 || math.IsNaN(e.Amount) || math.IsInf(e.Amount, 0) {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if _, err := ParseCategory(string(e.Category)); err != nil {
		return err
	}
	return nil
}
