package cjkdoc

import (
	"regexp"
	"strconv"
	"strings"
)

// Marker delimiters are taken from the Private Use Area. Converters have no
// mapping for these runes, so a marker passes through conversion untouched.
const (
	markerRangeStart = '\uE000'
	markerRangeEnd   = '\uF8FF'
)

// FontMap records the font names replaced by markers during one masking
// pass over a single member. It must not be reused across members.
type FontMap struct {
	left    rune
	right   rune
	entries []fontEntry
}

type fontEntry struct {
	marker string
	value  string
}

// Len returns the number of masked font names.
func (m *FontMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// Values returns the masked font names in the order they were found.
func (m *FontMap) Values() []string {
	if m == nil {
		return nil
	}
	values := make([]string, len(m.entries))
	for i, e := range m.entries {
		values[i] = e.value
	}
	return values
}

func (m *FontMap) marker(n int) string {
	var b strings.Builder
	b.WriteRune(m.left)
	b.WriteString("FONT")
	b.WriteString(strconv.Itoa(n))
	b.WriteRune(m.right)
	return b.String()
}

// Mask replaces the font-name group of every match of pattern in text with a
// marker and returns the masked text together with the map needed to undo
// it. A nil pattern leaves text unchanged.
//
// Pattern must have three groups: prefix, font name, suffix. A suffix group
// that did not participate in a match contributes nothing.
func Mask(text string, pattern *regexp.Regexp) (string, *FontMap) {
	m := &FontMap{}
	if pattern == nil {
		return text, m
	}

	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text, m
	}

	m.left, m.right = markerDelimiters(text)

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range matches {
		b.WriteString(text[last:loc[0]])
		b.WriteString(group(text, loc, 1))

		marker := m.marker(len(m.entries))
		m.entries = append(m.entries, fontEntry{marker: marker, value: group(text, loc, 2)})
		b.WriteString(marker)

		b.WriteString(group(text, loc, 3))
		last = loc[1]
	}
	b.WriteString(text[last:])

	return b.String(), m
}

// Unmask restores every marker produced by Mask to its original font name.
func (m *FontMap) Unmask(text string) string {
	if m.Len() == 0 {
		return text
	}
	pairs := make([]string, 0, 2*len(m.entries))
	for _, e := range m.entries {
		pairs = append(pairs, e.marker, e.value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// group returns submatch n of a FindAllStringSubmatchIndex location, or ""
// when the group did not participate.
func group(text string, loc []int, n int) string {
	if 2*n+1 >= len(loc) || loc[2*n] < 0 {
		return ""
	}
	return text[loc[2*n]:loc[2*n+1]]
}

// markerDelimiters picks two adjacent Private Use Area runes that do not
// occur in text, so markers cannot collide with document content.
func markerDelimiters(text string) (rune, rune) {
	for r := rune(markerRangeStart); r < markerRangeEnd; r += 2 {
		if !strings.ContainsRune(text, r) && !strings.ContainsRune(text, r+1) {
			return r, r + 1
		}
	}
	// Text uses the whole range; fall back to the first pair and rely on the
	// numbered body to stay distinct.
	return markerRangeStart, markerRangeStart + 1
}
