package cjkdoc

// Converter converts text between Chinese script variants.
type Converter interface {
	// Convert transforms text. When punctuation is true, quotation marks
	// are converted as well.
	// Markup characters that the converter does not map are left untouched.
	Convert(text string, punctuation bool) (string, error)
}

// ConverterFunc adapts an ordinary function to the Converter interface.
type ConverterFunc func(text string, punctuation bool) (string, error)

// Convert calls f(text, punctuation).
func (f ConverterFunc) Convert(text string, punctuation bool) (string, error) {
	return f(text, punctuation)
}
