package cjkdoc

// DecodeResult holds the text decoded from a member and how it was obtained.
type DecodeResult struct {
	// Text is the decoded content.
	Text string

	// Lossy is true when the content was not valid UTF-8 and invalid bytes
	// were replaced.
	Lossy bool

	// BOM is true when the content started with a UTF-8 byte order mark.
	// The mark is not part of Text.
	BOM bool

	// Charset is the detected character set when Lossy is true. It is a
	// diagnostic and may be empty.
	Charset string
}

// Decoder turns raw member bytes into text.
type Decoder interface {
	// Decode attempts a strict UTF-8 decode first and only falls back to a
	// lossy decode when the bytes are not valid UTF-8.
	Decode(data []byte) (*DecodeResult, error)
}
