// Package opencc implements cjkdoc.Converter using the OpenCC dictionaries
// bundled with github.com/longbridgeapp/opencc.
package opencc

import (
	"strings"
	"sync"

	"github.com/fwojciec/cjkdoc"
	"github.com/longbridgeapp/opencc"
)

// Ensure Converter implements cjkdoc.Converter at compile time.
var _ cjkdoc.Converter = (*Converter)(nil)

// DefaultConfig is used when no config is given.
const DefaultConfig = "s2t"

// Configs lists the conversion configs accepted by NewConverter. Each one
// has its dictionaries bundled with the library.
var Configs = []string{
	"s2t", "t2s",
	"s2tw", "tw2s", "s2twp", "tw2sp",
	"s2hk", "hk2s",
	"t2tw", "t2hk",
}

var (
	toCornerQuotes   = strings.NewReplacer("“", "「", "”", "」", "‘", "『", "’", "』")
	fromCornerQuotes = strings.NewReplacer("「", "“", "」", "”", "『", "‘", "』", "’")
)

// Converter converts text with one OpenCC config.
type Converter struct {
	config string

	mu sync.Mutex
	cc *opencc.OpenCC
}

// NewConverter loads the dictionaries for config.
func NewConverter(config string) (*Converter, error) {
	if config == "" {
		config = DefaultConfig
	}
	if !validConfig(config) {
		return nil, cjkdoc.Errorf(cjkdoc.EINVALID, "unknown conversion config %q", config)
	}
	cc, err := opencc.New(config)
	if err != nil {
		return nil, cjkdoc.Errorf(cjkdoc.EINVALID, "failed to load conversion config %q: %v", config, err)
	}
	return &Converter{config: config, cc: cc}, nil
}

// Config returns the name of the loaded config.
func (c *Converter) Config() string {
	return c.config
}

// Convert converts text. With punctuation, quotation marks follow the
// target script: simplified-to-traditional configs produce corner brackets,
// traditional-to-simplified configs produce curly quotes.
func (c *Converter) Convert(text string, punctuation bool) (string, error) {
	if text == "" {
		return "", nil
	}

	c.mu.Lock()
	out, err := c.cc.Convert(text)
	c.mu.Unlock()
	if err != nil {
		return "", err
	}

	if punctuation {
		out = ConvertPunctuation(c.config, out)
	}
	return out, nil
}

// ConvertPunctuation maps quotation marks in the direction of config.
// Configs between two traditional variants leave text unchanged.
func ConvertPunctuation(config, text string) string {
	switch {
	case strings.HasPrefix(config, "s2"):
		return toCornerQuotes.Replace(text)
	case strings.HasSuffix(config, "2s"), strings.HasSuffix(config, "2sp"):
		return fromCornerQuotes.Replace(text)
	default:
		return text
	}
}

func validConfig(config string) bool {
	for _, c := range Configs {
		if c == config {
			return true
		}
	}
	return false
}
