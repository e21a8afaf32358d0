// Package logger builds the application's slog logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

const logFileName = "review-assistant.log"

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// NewLogger initializes a slog logger writing to output. Debug level also
// records the source location of each entry.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		output = os.Stdout
	}

	level := new(slog.Level)
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		*level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: *level == slog.LevelDebug,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	return slog.New(handler)
}

// OpenOutput resolves cfg.Output to a writer. The returned close function is
// a no-op for the standard streams.
func OpenOutput(cfg Config) (io.Writer, func(), error) {
	switch cfg.Output {
	case "", "stdout":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	case "file":
		file, err := os.OpenFile(logFileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		return file, func() { _ = file.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported log output %q", cfg.Output)
	}
}
