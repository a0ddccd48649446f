package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cjkdoc"
)

// Ensure LoggingConversionService implements cjkdoc.ConversionService.
var _ cjkdoc.ConversionService = (*LoggingConversionService)(nil)

// LoggingConversionService wraps a ConversionService with debug logging.
type LoggingConversionService struct {
	next   cjkdoc.ConversionService
	logger *slog.Logger
}

// NewLoggingConversionService creates a new LoggingConversionService.
func NewLoggingConversionService(next cjkdoc.ConversionService, logger *slog.Logger) *LoggingConversionService {
	return &LoggingConversionService{next: next, logger: logger}
}

// CreateConversion delegates to the wrapped service and logs the record.
func (s *LoggingConversionService) CreateConversion(ctx context.Context, c *cjkdoc.Conversion) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("record conversion",
			"id", c.ID,
			"input", c.InputPath,
			"success", c.Success,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateConversion(ctx, c)
}

// FindConversionByID delegates to the wrapped service.
func (s *LoggingConversionService) FindConversionByID(ctx context.Context, id string) (*cjkdoc.Conversion, error) {
	return s.next.FindConversionByID(ctx, id)
}

// FindConversions delegates to the wrapped service and logs the result size.
func (s *LoggingConversionService) FindConversions(ctx context.Context, filter cjkdoc.ConversionFilter) (conversions []*cjkdoc.Conversion, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find conversions",
			"count", len(conversions),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindConversions(ctx, filter)
}
