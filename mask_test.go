package cjkdoc_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/fwojciec/cjkdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMask(t *testing.T) {
	t.Parallel()

	t.Run("replaces every font value with a distinct marker", func(t *testing.T) {
		t.Parallel()

		text := `<w:rFonts w:ascii="宋体" w:eastAsia="宋体" w:hAnsi="黑体"/><w:t>旧</w:t>`

		masked, fonts := cjkdoc.Mask(text, cjkdoc.FontPattern(cjkdoc.FormatDOCX))

		assert.Equal(t, 3, fonts.Len())
		assert.Equal(t, []string{"宋体", "宋体", "黑体"}, fonts.Values())
		assert.NotContains(t, masked, "宋体")
		assert.NotContains(t, masked, "黑体")
		assert.Contains(t, masked, `w:ascii="`)
		assert.Contains(t, masked, `<w:t>旧</w:t>`)
	})

	t.Run("nil pattern is the identity", func(t *testing.T) {
		t.Parallel()

		text := `<w:rFonts w:ascii="宋体"/>`

		masked, fonts := cjkdoc.Mask(text, nil)

		assert.Equal(t, text, masked)
		assert.Zero(t, fonts.Len())
		assert.Equal(t, text, fonts.Unmask(masked))
	})

	t.Run("optional suffix group contributes nothing when absent", func(t *testing.T) {
		t.Parallel()

		text := `<p style="font-family: 楷体">正文</p>`

		masked, fonts := cjkdoc.Mask(text, cjkdoc.FontPattern(cjkdoc.FormatEPUB))

		require.Equal(t, 1, fonts.Len())
		assert.Equal(t, "楷体", fonts.Values()[0])
		assert.Equal(t, text, fonts.Unmask(masked))
	})

	t.Run("quoted EPUB font names are shielded from conversion", func(t *testing.T) {
		t.Parallel()

		text := `p { font-family: "宋体"; }<p style="font-family: '宋体', serif">宋体</p>`
		replacer := strings.NewReplacer("体", "體")

		masked, fonts := cjkdoc.Mask(text, cjkdoc.FontPattern(cjkdoc.FormatEPUB))
		got := fonts.Unmask(replacer.Replace(masked))

		assert.Equal(t, []string{`"宋体"`, `'宋体', serif`}, fonts.Values())
		assert.Equal(t, `p { font-family: "宋体"; }<p style="font-family: '宋体', serif">宋體</p>`, got)
	})

	t.Run("markers avoid runes already present in the text", func(t *testing.T) {
		t.Parallel()

		text := "FONT0 " + `<a:latin typeface="Arial"/>`

		masked, fonts := cjkdoc.Mask(text, cjkdoc.FontPattern(cjkdoc.FormatPPTX))

		require.Equal(t, 1, fonts.Len())
		assert.True(t, strings.HasPrefix(masked, "FONT0 "))
		assert.NotContains(t, masked, "Arial")
		assert.Equal(t, text, fonts.Unmask(masked))
	})
}

func TestFontMap_Unmask(t *testing.T) {
	t.Parallel()

	t.Run("survives conversion of surrounding text", func(t *testing.T) {
		t.Parallel()

		text := `<style:font-face style:name="SimSun" svg:font-family="SimSun"/><text:p>旧字体</text:p>`
		replacer := strings.NewReplacer("旧", "舊", "体", "體")

		masked, fonts := cjkdoc.Mask(text, cjkdoc.FontPattern(cjkdoc.FormatODT))
		converted := fonts.Unmask(replacer.Replace(masked))

		assert.Equal(t, `<style:font-face style:name="SimSun" svg:font-family="SimSun"/><text:p>舊字體</text:p>`, converted)
	})

	t.Run("keeps markers with shared numeric prefixes apart", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := 0; i < 12; i++ {
			b.WriteString(`<a:ea typeface="Font`)
			b.WriteString(strings.Repeat("x", i))
			b.WriteString(`"/>`)
		}
		text := b.String()

		masked, fonts := cjkdoc.Mask(text, cjkdoc.FontPattern(cjkdoc.FormatPPTX))

		require.Equal(t, 12, fonts.Len())
		assert.Equal(t, text, fonts.Unmask(masked))
	})
}

func TestMask_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain text without attributes",
		`<w:t>旧</w:t>`,
		`<w:rFonts w:eastAsia=""/>`,
		`<w:rFonts w:eastAsia="宋体"/><w:rFonts w:cs="Times New Roman"/>`,
		`w:eastAsia="unterminated`,
		`<w:rFonts w:eastAsiaTheme="minorEastAsia"/>`,
		`typeface="" typeface="a" val="b"`,
		`font-family: "Noto Serif CJK"; font-family:serif`,
		`style:name='P1' style:font-name="Liberation Serif"`,
	}

	for _, format := range cjkdoc.Formats {
		pattern := cjkdoc.FontPattern(format)
		for _, input := range inputs {
			masked, fonts := cjkdoc.Mask(input, pattern)
			assert.Equal(t, input, fonts.Unmask(masked), "format=%s input=%q", format, input)
		}
	}
}

func TestMask_CustomPattern(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`(\[)([^\]]+)(\])`)

	masked, fonts := cjkdoc.Mask("[a] and [b]", pattern)

	assert.Equal(t, []string{"a", "b"}, fonts.Values())
	assert.NotContains(t, masked, "[a]")
	assert.Equal(t, "[a] and [b]", fonts.Unmask(masked))
}
