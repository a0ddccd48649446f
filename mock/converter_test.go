package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/cjkdoc"
	"github.com/fwojciec/cjkdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("delegates to ConvertFn", func(t *testing.T) {
		t.Parallel()

		var gotText string
		var gotPunct bool
		c := &mock.Converter{
			ConvertFn: func(text string, punctuation bool) (string, error) {
				gotText, gotPunct = text, punctuation
				return "舊", nil
			},
		}

		out, err := c.Convert("旧", true)

		require.NoError(t, err)
		assert.Equal(t, "舊", out)
		assert.Equal(t, "旧", gotText)
		assert.True(t, gotPunct)
	})
}

func TestConversionService_CreateConversion(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateConversionFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *cjkdoc.Conversion
		s := &mock.ConversionService{
			CreateConversionFn: func(_ context.Context, c *cjkdoc.Conversion) error {
				calledWith = c
				return nil
			},
		}

		c := &cjkdoc.Conversion{InputPath: "a.docx", Format: cjkdoc.FormatDOCX}

		err := s.CreateConversion(context.Background(), c)

		require.NoError(t, err)
		assert.Equal(t, c, calledWith)
	})
}
