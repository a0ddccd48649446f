package cjkdoc

import (
	"context"
	"time"
)

// Conversion is a history record of one document conversion session.
type Conversion struct {
	ID          string    `json:"id"`
	InputPath   string    `json:"inputPath"`
	OutputPath  string    `json:"outputPath"`
	Format      Format    `json:"format"`
	Config      string    `json:"config"`
	Punctuation bool      `json:"punctuation"`
	KeepFont    bool      `json:"keepFont"`
	Fragments   int       `json:"fragments"`
	Success     bool      `json:"success"`
	Message     string    `json:"message"`
	InputHash   string    `json:"inputHash"`
	OutputHash  string    `json:"outputHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the conversion contains invalid fields.
func (c *Conversion) Validate() error {
	if c.InputPath == "" {
		return Errorf(EINVALID, "conversion input path required")
	}
	if !c.Format.Valid() {
		return Errorf(EINVALID, "conversion format %q is not supported", c.Format)
	}
	return nil
}

// ConversionService represents a service for recording conversion sessions.
type ConversionService interface {
	// CreateConversion records a conversion session.
	CreateConversion(ctx context.Context, c *Conversion) error

	// FindConversionByID retrieves a conversion by ID.
	// Returns ENOTFOUND if the conversion does not exist.
	FindConversionByID(ctx context.Context, id string) (*Conversion, error)

	// FindConversions retrieves conversions matching the filter, newest first.
	FindConversions(ctx context.Context, filter ConversionFilter) ([]*Conversion, error)
}

// ConversionFilter represents a filter for FindConversions.
type ConversionFilter struct {
	Format  *Format `json:"format"`
	Success *bool   `json:"success"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
