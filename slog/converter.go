// Package slog provides logging decorators for cjkdoc services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/cjkdoc"
)

// Ensure LoggingConverter implements cjkdoc.Converter.
var _ cjkdoc.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with debug logging.
type LoggingConverter struct {
	next   cjkdoc.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next cjkdoc.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs sizes and timing.
func (c *LoggingConverter) Convert(text string, punctuation bool) (out string, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("convert",
			"bytes_in", len(text),
			"bytes_out", len(out),
			"punctuation", punctuation,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(text, punctuation)
}
