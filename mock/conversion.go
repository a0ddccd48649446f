package mock

import (
	"context"

	"github.com/fwojciec/cjkdoc"
)

var _ cjkdoc.ConversionService = (*ConversionService)(nil)

// ConversionService is a mock implementation of cjkdoc.ConversionService.
type ConversionService struct {
	CreateConversionFn   func(ctx context.Context, c *cjkdoc.Conversion) error
	FindConversionByIDFn func(ctx context.Context, id string) (*cjkdoc.Conversion, error)
	FindConversionsFn    func(ctx context.Context, filter cjkdoc.ConversionFilter) ([]*cjkdoc.Conversion, error)
}

func (s *ConversionService) CreateConversion(ctx context.Context, c *cjkdoc.Conversion) error {
	return s.CreateConversionFn(ctx, c)
}

func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*cjkdoc.Conversion, error) {
	return s.FindConversionByIDFn(ctx, id)
}

func (s *ConversionService) FindConversions(ctx context.Context, filter cjkdoc.ConversionFilter) ([]*cjkdoc.Conversion, error) {
	return s.FindConversionsFn(ctx, filter)
}
