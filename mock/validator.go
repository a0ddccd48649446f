package mock

import "github.com/fwojciec/cjkdoc"

var _ cjkdoc.XMLValidator = (*XMLValidator)(nil)

// XMLValidator is a mock implementation of cjkdoc.XMLValidator.
type XMLValidator struct {
	ValidateFn func(text string) error
}

func (v *XMLValidator) Validate(text string) error {
	return v.ValidateFn(text)
}
