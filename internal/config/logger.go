package config

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger creates a leveled, timestamped logger writing to w. An unknown
// level falls back to info and is reported in the returned error.
func NewLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           lvl,
	})
	return logger, err
}
