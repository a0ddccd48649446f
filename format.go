package cjkdoc

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Format identifies a supported zip-based document container.
type Format string

// Supported formats.
const (
	FormatDOCX Format = "docx"
	FormatXLSX Format = "xlsx"
	FormatPPTX Format = "pptx"
	FormatODT  Format = "odt"
	FormatODS  Format = "ods"
	FormatODP  Format = "odp"
	FormatEPUB Format = "epub"
)

// Formats lists every supported format in display order.
var Formats = []Format{
	FormatDOCX,
	FormatXLSX,
	FormatPPTX,
	FormatODT,
	FormatODS,
	FormatODP,
	FormatEPUB,
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFormat parses a format tag. Case is ignored and a leading dot is
// allowed so that file extensions can be passed directly.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	if !f.Valid() {
		return "", Errorf(EUNSUPPORTED, "unsupported format %q", s)
	}
	return f, nil
}

// FormatFromPath derives the format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", Errorf(EUNSUPPORTED, "cannot infer format of %q: no file extension", path)
	}
	return ParseFormat(ext)
}

// Font attribute patterns. Each has three groups: the text before the font
// name, the font name, and the text after it.
var fontPatterns = map[Format]*regexp.Regexp{
	FormatDOCX: regexp.MustCompile(`(w:(?:eastAsia|ascii|hAnsi|cs)=")([^"]+)(")`),
	FormatXLSX: regexp.MustCompile(`(val=")(.*?)(")`),
	FormatPPTX: regexp.MustCompile(`(typeface=")(.*?)(")`),
	FormatODT:  odfFontPattern,
	FormatODS:  odfFontPattern,
	FormatODP:  odfFontPattern,
	FormatEPUB: epubFontPattern,
}

// epubFontPattern matches a CSS font-family value: a list of bare names and
// names quoted with ", ' or &quot;. Quoted names cannot contain "=" so that
// a value inside style="..." stops at the closing attribute quote.
var epubFontPattern = regexp.MustCompile(`(font-family\s*:\s*)((?:&quot;[^&"<>{};=\n]*&quot;|"[^"<>{};=\n]*"|'[^'<>{};=\n]*'|[^;"'<>{}\n])+)(;)?`)

var odfFontPattern = regexp.MustCompile(`((?:style:font-name(?:-asian|-complex)?|svg:font-family|style:name)=["'])([^"']+)(["'])`)

// FontPattern returns the font attribute pattern for f, or nil when the
// format has none.
func FontPattern(f Format) *regexp.Regexp {
	return fontPatterns[f]
}
