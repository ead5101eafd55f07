// Package log wires structured logging for the application. Every logger
// carries a component attribute so log lines can be traced to the layer
// that produced them.
package log

import (
	"log/slog"
	"os"
)

// Config holds logger configuration.
type Config struct {
	Level   slog.Level
	Handler slog.Handler // optional; defaults to a text handler on stdout
}

// New builds the root logger.
func New(config Config) *slog.Logger {
	handler := config.Handler
	if handler == nil {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: config.Level,
		})
	}
	return slog.New(handler)
}

// ForComponent returns a child of the default logger tagged with the given
// component name.
func ForComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

// SetDefault installs logger as the process-wide default, so packages that
// log through the slog package-level functions share the same handler.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
