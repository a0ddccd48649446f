package cjkdoc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/cjkdoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := cjkdoc.Errorf(cjkdoc.EPATHESCAPE, "unsafe zip path %q", "../evil.txt")

	assert.Equal(t, cjkdoc.EPATHESCAPE, cjkdoc.ErrorCode(err))
	assert.Equal(t, "unsafe zip path \"../evil.txt\"", cjkdoc.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract: %w", cjkdoc.Errorf(cjkdoc.EMISSINGMIMETYPE, "mimetype missing"))

	assert.Equal(t, cjkdoc.EMISSINGMIMETYPE, cjkdoc.ErrorCode(err))
	assert.Equal(t, "mimetype missing", cjkdoc.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk full")

	assert.Equal(t, cjkdoc.EINTERNAL, cjkdoc.ErrorCode(err))
	assert.Equal(t, "disk full", cjkdoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cjkdoc.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, cjkdoc.ErrorMessage(nil))
}
