package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/cjkdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ cjkdoc.ConversionService = (*ConversionService)(nil)

// ConversionService implements cjkdoc.ConversionService using SQLite.
type ConversionService struct {
	db *DB
}

// NewConversionService creates a new ConversionService.
func NewConversionService(db *DB) *ConversionService {
	return &ConversionService{db: db}
}

// timestampFormat has a fixed-width fraction so that stored timestamps sort
// lexically in time order.
const timestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

const conversionColumns = `id, input_path, output_path, format, config, punctuation, keep_font,
	fragments, success, message, input_hash, output_hash, created_at`

// CreateConversion records a conversion session.
func (s *ConversionService) CreateConversion(ctx context.Context, c *cjkdoc.Conversion) error {
	if err := c.Validate(); err != nil {
		return err
	}

	c.ID = uuid.New().String()
	c.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions (`+conversionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.ID, c.InputPath, c.OutputPath, string(c.Format), c.Config, c.Punctuation, c.KeepFont,
		c.Fragments, c.Success, c.Message, c.InputHash, c.OutputHash, c.CreatedAt.Format(timestampFormat))

	return err
}

// FindConversionByID retrieves a conversion by ID.
func (s *ConversionService) FindConversionByID(ctx context.Context, id string) (*cjkdoc.Conversion, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+conversionColumns+` FROM conversions WHERE id = ?`, id)

	c, err := scanConversion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cjkdoc.Errorf(cjkdoc.ENOTFOUND, "conversion not found")
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// FindConversions retrieves conversions matching the filter, newest first.
func (s *ConversionService) FindConversions(ctx context.Context, filter cjkdoc.ConversionFilter) ([]*cjkdoc.Conversion, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + conversionColumns + " FROM conversions WHERE 1=1")

	if filter.Format != nil {
		query.WriteString(" AND format = ?")
		args = append(args, string(*filter.Format))
	}
	if filter.Success != nil {
		query.WriteString(" AND success = ?")
		args = append(args, *filter.Success)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversions []*cjkdoc.Conversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return conversions, nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanConversion(row scanner) (*cjkdoc.Conversion, error) {
	var c cjkdoc.Conversion
	var format, createdAt string

	if err := row.Scan(&c.ID, &c.InputPath, &c.OutputPath, &format, &c.Config, &c.Punctuation, &c.KeepFont,
		&c.Fragments, &c.Success, &c.Message, &c.InputHash, &c.OutputHash, &createdAt); err != nil {
		return nil, err
	}
	c.Format = cjkdoc.Format(format)

	var err error
	c.CreatedAt, err = parseTimestamp(createdAt, "created_at")
	if err != nil {
		return nil, err
	}
	return &c, nil
}
