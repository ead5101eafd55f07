// Command seed loads a sample dataset into the configured storage backend,
// for demos and manual testing. Existing data is left alone unless -force
// is given.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"expensetracker/internal/backend"
	"expensetracker/internal/config"
	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/services"
)

type sample struct {
	date        string
	amount      float64
	category    core.Category
	description string
}

var samples = []sample{
	{"2025-09-15", 34.99, core.Food, "Lunch with colleagues"},
	{"2025-09-14", 120.50, core.Shopping, "New shoes"},
	{"2025-09-12", 65.75, core.Entertainment, "Movie tickets and dinner"},
	{"2025-09-10", 22.30, core.Transportation, "Taxi ride"},
	{"2025-09-08", 156.87, core.Bills, "Electricity bill"},
	{"2025-09-07", 45.00, core.Food, "Groceries"},
	{"2025-09-05", 89.99, core.Entertainment, "Concert tickets"},
	{"2025-09-03", 12.50, core.Food, "Coffee and pastries"},
	{"2025-09-01", 210.00, core.Bills, "Internet and phone"},
	{"2025-08-28", 75.25, core.Shopping, "Clothes"},
	{"2025-08-25", 18.40, core.Transportation, "Public transit pass"},
	{"2025-08-20", 42.30, core.Food, "Dinner with friends"},
}

func main() {
	force := flag.Bool("force", false, "seed even if the collection already holds records")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	logger := applog.New(applog.Config{Level: cfg.LogLevel})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slot, err := backend.Open(cfg)
	if err != nil {
		logger.Error("Failed to open storage backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}

	expenses := services.NewExpenseService(slot)
	defer expenses.Close()

	ctx := context.Background()
	if existing := expenses.LoadAll(ctx); len(existing) > 0 && !*force {
		logger.Info("Collection already holds records, skipping seed", "count", len(existing))
		return
	}

	// Samples are listed newest-first; adding in reverse keeps that order
	// in the prepend-ordered collection.
	for i := len(samples) - 1; i >= 0; i-- {
		s := samples[i]
		expenses.Add(ctx, core.NewExpense(s.date, s.amount, s.category, s.description))
	}
	logger.Info("Sample data loaded", "count", len(samples), "backend", cfg.DataBackend)
}
