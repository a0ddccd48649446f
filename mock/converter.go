package mock

import "github.com/fwojciec/cjkdoc"

var _ cjkdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of cjkdoc.Converter.
type Converter struct {
	ConvertFn func(text string, punctuation bool) (string, error)
}

func (c *Converter) Convert(text string, punctuation bool) (string, error) {
	return c.ConvertFn(text, punctuation)
}
