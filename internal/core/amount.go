// Package core holds the expense domain model and the pure aggregation,
// filtering, export and chart functions computed over it.
//
// This file contains amount parsing for the input boundary and the
// locale-formatted display helpers used by presentation code.
package core

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usd = message.NewPrinter(language.AmericanEnglish)

// ParseAmount converts user input to a positive amount. Currency symbols,
// grouping commas and surrounding whitespace are tolerated; anything
// unparseable, non-positive or non-finite is ErrInvalidAmount.
//
// Examples:
//
//	ParseAmount("34.99")  -> 34.99, nil
//	ParseAmount("$1,250") -> 1250, nil
//	ParseAmount("-5")     -> 0, ErrInvalidAmount
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	// Keep digits, decimal point and sign; drop currency symbols and commas.
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// FormatCurrency renders an amount as en-US USD, e.g. "$1,234.56".
func FormatCurrency(amount float64) string {
	return usd.Sprintf("$%.2f", amount)
}

// FormatDate renders a stored YYYY-MM-DD date for display, e.g. "Sep 15, 2025".
// Unparseable input is returned as-is rather than hidden.
func FormatDate(date string) string {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}
