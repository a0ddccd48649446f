package chardet

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/cjkdoc"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// detectorLabels maps detector charset names that are not WHATWG labels.
var detectorLabels = map[string]string{
	"gb-18030": "gb18030",
}

// lookup resolves a WHATWG label (e.g. "gbk", "big5", "shift_jis") or a
// detector charset name to an encoding and its canonical name.
func lookup(charset string) (encoding.Encoding, string, error) {
	label := strings.ToLower(strings.TrimSpace(charset))
	if l, ok := detectorLabels[label]; ok {
		label = l
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", cjkdoc.Errorf(cjkdoc.EINVALID, "unsupported charset %q", charset)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		name = label
	}
	return enc, name, nil
}

// DecodeFrom decodes data from charset. An empty charset means UTF-8 when
// data is valid UTF-8 and the detected charset otherwise. Invalid UTF-8 is
// an error, never replaced.
func (d *Decoder) DecodeFrom(data []byte, charset string) (*cjkdoc.DecodeResult, error) {
	if charset == "" {
		if utf8.Valid(bytes.TrimPrefix(data, utf8BOM)) {
			return decodeUTF8(data)
		}
		if charset = d.detect(data); charset == "" {
			return nil, cjkdoc.Errorf(cjkdoc.EINVALID, "content is not valid UTF-8 and its charset could not be detected")
		}
	}

	enc, name, err := lookup(charset)
	if err != nil {
		return nil, err
	}
	if name == "utf-8" {
		return decodeUTF8(data)
	}

	text, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return nil, cjkdoc.Errorf(cjkdoc.EINVALID, "failed to decode content as %s: %v", name, err)
	}
	return &cjkdoc.DecodeResult{Text: string(text), Charset: name}, nil
}

func decodeUTF8(data []byte) (*cjkdoc.DecodeResult, error) {
	bom := bytes.HasPrefix(data, utf8BOM)
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return nil, cjkdoc.Errorf(cjkdoc.EINVALID, "content is not valid UTF-8")
	}
	return &cjkdoc.DecodeResult{Text: string(data), BOM: bom}, nil
}

// Encode encodes text into charset. An empty charset means UTF-8. Runes the
// charset cannot represent are an EINVALID error.
func Encode(text, charset string) ([]byte, error) {
	if charset == "" {
		return []byte(text), nil
	}
	enc, name, err := lookup(charset)
	if err != nil {
		return nil, err
	}
	if name == "utf-8" {
		return []byte(text), nil
	}

	out, err := enc.NewEncoder().String(text)
	if err != nil {
		return nil, cjkdoc.Errorf(cjkdoc.EINVALID, "cannot encode text as %s: %v", name, err)
	}
	return []byte(out), nil
}
