// Package observability wires structured logging and Prometheus metrics.
package observability

import (
	"log/slog"

	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
)

// NewLogger builds the process logger from a level name (debug, info, warn,
// error) and a format (json or text), tagged with the service name.
func NewLogger(level, format string) *slog.Logger {
	return sharedobs.NewLogger(level, format).With("service", "temperature-heatmap")
}
