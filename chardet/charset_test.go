package chardet_test

import (
	"testing"

	"github.com/fwojciec/cjkdoc"
	"github.com/fwojciec/cjkdoc/chardet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

func TestDecoder_DecodeFrom(t *testing.T) {
	t.Parallel()

	t.Run("decodes a named charset", func(t *testing.T) {
		t.Parallel()

		data, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte("旧字体"))
		require.NoError(t, err)

		res, err := chardet.NewDecoder().DecodeFrom(data, "GBK")

		require.NoError(t, err)
		assert.Equal(t, "旧字体", res.Text)
		assert.Equal(t, "gbk", res.Charset)
		assert.False(t, res.Lossy)
	})

	t.Run("accepts detector charset names", func(t *testing.T) {
		t.Parallel()

		data, err := simplifiedchinese.GB18030.NewEncoder().Bytes([]byte("汉字"))
		require.NoError(t, err)

		res, err := chardet.NewDecoder().DecodeFrom(data, "GB-18030")

		require.NoError(t, err)
		assert.Equal(t, "汉字", res.Text)
		assert.Equal(t, "gb18030", res.Charset)
	})

	t.Run("empty charset keeps valid UTF-8", func(t *testing.T) {
		t.Parallel()

		res, err := chardet.NewDecoder().DecodeFrom([]byte("\xef\xbb\xbf漢字"), "")

		require.NoError(t, err)
		assert.Equal(t, "漢字", res.Text)
		assert.True(t, res.BOM)
		assert.Empty(t, res.Charset)
	})

	t.Run("explicit UTF-8 rejects invalid bytes", func(t *testing.T) {
		t.Parallel()

		_, err := chardet.NewDecoder().DecodeFrom([]byte{0xbe, 0xc9}, "utf-8")

		require.Error(t, err)
		assert.Equal(t, cjkdoc.EINVALID, cjkdoc.ErrorCode(err))
	})

	t.Run("rejects unknown charset", func(t *testing.T) {
		t.Parallel()

		_, err := chardet.NewDecoder().DecodeFrom([]byte("a"), "klingon")

		require.Error(t, err)
		assert.Equal(t, cjkdoc.EINVALID, cjkdoc.ErrorCode(err))
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("encodes into a named charset", func(t *testing.T) {
		t.Parallel()

		want, err := traditionalchinese.Big5.NewEncoder().String("漢字")
		require.NoError(t, err)

		got, err := chardet.Encode("漢字", "big5")

		require.NoError(t, err)
		assert.Equal(t, []byte(want), got)
	})

	t.Run("empty charset is UTF-8", func(t *testing.T) {
		t.Parallel()

		got, err := chardet.Encode("漢字", "")

		require.NoError(t, err)
		assert.Equal(t, []byte("漢字"), got)
	})

	t.Run("rejects runes the charset cannot represent", func(t *testing.T) {
		t.Parallel()

		_, err := chardet.Encode("漢字", "iso-8859-1")

		require.Error(t, err)
		assert.Equal(t, cjkdoc.EINVALID, cjkdoc.ErrorCode(err))
	})
}
