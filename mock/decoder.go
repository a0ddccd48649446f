package mock

import "github.com/fwojciec/cjkdoc"

var _ cjkdoc.Decoder = (*Decoder)(nil)

// Decoder is a mock implementation of cjkdoc.Decoder.
type Decoder struct {
	DecodeFn func(data []byte) (*cjkdoc.DecodeResult, error)
}

func (d *Decoder) Decode(data []byte) (*cjkdoc.DecodeResult, error) {
	return d.DecodeFn(data)
}
