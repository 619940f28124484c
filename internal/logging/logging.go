// Package logging constructs the single charmbracelet/log logger this
// client threads through its collaborators as an explicit parameter
// (never a package global), per §4.9.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// New builds a logger writing to os.Stderr, or to file if file is
// non-empty, at the given level ("debug", "info", "warn", "error").
// An unrecognized level falls back to info rather than failing
// startup over a typo in a config file.
func New(level, file string) (*log.Logger, error) {
	var out io.Writer = os.Stderr
	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logging: open %s: %w", file, err)
		}
		out = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		ReportCaller:    false,
	})
	logger.SetLevel(parseLevel(level))
	return logger, nil
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Category tags a log line with the error taxonomy from spec §7
// (ShortBody, BadEncoding, UnknownCode, HandshakeMismatch, IoError,
// DeviceError, ProtocolStop), so every error category produces exactly
// one informative line as §7 requires.
func Category(logger *log.Logger, category string) *log.Logger {
	return logger.With("category", category)
}
