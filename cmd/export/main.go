// Command export writes the expense collection as CSV, either to stdout or
// to the conventional expenses-export-<date>.csv file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"expensetracker/internal/backend"
	"expensetracker/internal/config"
	"expensetracker/internal/core"
	applog "expensetracker/internal/log"
	"expensetracker/internal/services"
)

func main() {
	toFile := flag.Bool("file", false, "write to expenses-export-<date>.csv instead of stdout")
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

	records := expenses.LoadAll(context.Background())
	csv := core.ToCSV(records)

	if !*toFile {
		fmt.Println(csv)
		return
	}

	name := core.ExportFilename(time.Now())
	if err := os.WriteFile(name, []byte(csv), 0644); err != nil {
		logger.Error("Failed to write export file", "error", err, "file", name)
		os.Exit(1)
	}
	logger.Info("Export written",
		"file", name,
		"records", len(records),
		"total", core.FormatCurrency(core.Total(records)))
}
