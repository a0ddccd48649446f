package cjkdoc

// XMLValidator checks whether a member is well-formed XML.
type XMLValidator interface {
	// Validate returns nil when text parses as an XML document.
	Validate(text string) error
}
