// Package logging wires zerolog to a file, since the TUI owns the terminal.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const timeFormat = "2006-01-02_15:04:05"

// Setup points the global logger at path and returns the file so callers can close it.
// With debug set the level is Debug, otherwise Info.
func Setup(path string, debug bool) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	Attach(logFile, debug)
	return logFile, nil
}

// Attach points the global logger at w.
func Attach(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{
		Out: w, TimeFormat: timeFormat, NoColor: true,
	}).Level(level)
}
