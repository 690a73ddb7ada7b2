package main

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// newCharmHandler returns a human-friendly slog handler for terminal output.
func newCharmHandler(w io.Writer) slog.Handler {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
	})
}
