// Package chardet implements cjkdoc.Decoder with charset detection from
// github.com/gogs/chardet.
package chardet

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/cjkdoc"
	"github.com/gogs/chardet"
)

// Ensure Decoder implements cjkdoc.Decoder at compile time.
var _ cjkdoc.Decoder = (*Decoder)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decoder decodes members as UTF-8 and falls back to replacing invalid
// bytes, naming the most likely charset of the original bytes.
type Decoder struct {
	// Strict disables the lossy fallback; invalid UTF-8 becomes an
	// EINVALID error instead.
	Strict bool

	detector *chardet.Detector
}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{detector: chardet.NewTextDetector()}
}

// Decode strips a UTF-8 byte order mark and decodes data.
func (d *Decoder) Decode(data []byte) (*cjkdoc.DecodeResult, error) {
	bom := bytes.HasPrefix(data, utf8BOM)
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return &cjkdoc.DecodeResult{Text: string(data), BOM: bom}, nil
	}

	charset := d.detect(data)
	if d.Strict {
		return nil, cjkdoc.Errorf(cjkdoc.EINVALID, "content is not valid UTF-8 (detected %s)", charsetLabel(charset))
	}

	return &cjkdoc.DecodeResult{
		Text:    strings.ToValidUTF8(string(data), string(utf8.RuneError)),
		Lossy:   true,
		BOM:     bom,
		Charset: charset,
	}, nil
}

func (d *Decoder) detect(data []byte) string {
	detector := d.detector
	if detector == nil {
		detector = chardet.NewTextDetector()
	}
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return ""
	}
	return result.Charset
}

func charsetLabel(charset string) string {
	if charset == "" {
		return "unknown charset"
	}
	return charset
}
