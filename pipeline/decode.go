package pipeline

import (
	"bytes"
	"unicode/utf8"

	"github.com/fwojciec/cjkdoc"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// strictUTF8 is the decoder used when a Pipeline has none configured.
type strictUTF8 struct{}

func (strictUTF8) Decode(data []byte) (*cjkdoc.DecodeResult, error) {
	bom := bytes.HasPrefix(data, utf8BOM)
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, cjkdoc.Errorf(cjkdoc.EINVALID, "content is not valid UTF-8")
	}
	return &cjkdoc.DecodeResult{Text: string(data), BOM: bom}, nil
}
