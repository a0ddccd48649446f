// Package etree checks converted members for XML well-formedness using
// github.com/beevik/etree.
package etree

import (
	"github.com/beevik/etree"
	"github.com/fwojciec/cjkdoc"
)

// Ensure Validator implements cjkdoc.XMLValidator at compile time.
var _ cjkdoc.XMLValidator = (*Validator)(nil)

// Validator parses text as an XML document.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns an EINVALID error when text is not well-formed XML or has
// no root element.
func (v *Validator) Validate(text string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return cjkdoc.Errorf(cjkdoc.EINVALID, "malformed XML: %v", err)
	}
	if doc.Root() == nil {
		return cjkdoc.Errorf(cjkdoc.EINVALID, "malformed XML: no root element")
	}
	return nil
}
