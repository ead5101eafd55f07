package http

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"expensetracker/internal/core"
)

// expenseRequest is the JSON body accepted on create and update. Amount is
// a json.Number so both `34.99` and `"34.99"` are accepted, matching what
// form inputs produce.
type expenseRequest struct {
	Date        string      `json:"date"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
}

const maxRequestBody = 1 << 16 // 64KB, far beyond any legitimate expense

// parseExpenseRequest decodes and validates the request body ahead of the
// record operations; the core trusts its inputs once this passes. On
// validation failure the returned map carries one message per bad field.
func parseExpenseRequest(body io.Reader) (date string, amount float64, category core.Category, description string, fields map[string]string, err error) {
	var req expenseRequest
	dec := json.NewDecoder(io.LimitReader(body, maxRequestBody))
	dec.UseNumber()
	if decErr := dec.Decode(&req); decErr != nil {
		return "", 0, "", "", nil, fmt.Errorf("decode expense request: %w", decErr)
	}

	fields = make(map[string]string)

	date = strings.TrimSpace(req.Date)
	if date == "" {
		fields["date"] = "Date is required"
	} else if _, parseErr := time.Parse(core.DateLayout, date); parseErr != nil {
		fields["date"] = "Date must be in YYYY-MM-DD format"
	}

	if req.Amount == "" {
		fields["amount"] = "Amount is required"
	} else if amount, err = core.ParseAmount(req.Amount.String()); err != nil {
		fields["amount"] = "Amount must be a positive number"
		err = nil
	}

	if req.Category == "" {
		fields["category"] = "Category is required"
	} else if category, err = core.ParseCategory(req.Category); err != nil {
		fields["category"] = "Category must be one of the known categories"
		err = nil
	}

	description = strings.TrimSpace(req.Description)
	if description == "" {
		fields["description"] = "Description is required"
	}

	if len(fields) == 0 {
		fields = nil
	}
	return date, amount, category, description, fields, nil
}
