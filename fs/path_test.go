package fs_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/cjkdoc"
	"github.com/fwojciec/cjkdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeJoin(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "work")

	t.Run("accepts members under root", func(t *testing.T) {
		t.Parallel()

		members := []string{
			"word/document.xml",
			"mimetype",
			"OEBPS/Text/../Text/ch1.xhtml",
			"./content.xml",
			"a/b/c/d.xml",
			`ppt\slides\slide1.xml`,
		}

		for _, m := range members {
			got, err := fs.SafeJoin(root, m)
			require.NoError(t, err, m)
			assert.True(t, strings.HasPrefix(got, root+string(filepath.Separator)), "%s -> %s", m, got)
		}
	})

	t.Run("rejects traversal and absolute names", func(t *testing.T) {
		t.Parallel()

		members := []string{
			"../evil.txt",
			"../../evil.txt",
			"word/../../evil.txt",
			"/etc/passwd",
			`\windows\system32\evil.dll`,
			`..\..\evil.txt`,
			"C:/evil.txt",
			`c:\evil.txt`,
			"..",
		}

		for _, m := range members {
			_, err := fs.SafeJoin(root, m)
			require.Error(t, err, m)
			assert.Equal(t, cjkdoc.EPATHESCAPE, cjkdoc.ErrorCode(err), m)
		}
	})

	t.Run("rejects sibling directory sharing the root prefix", func(t *testing.T) {
		t.Parallel()

		_, err := fs.SafeJoin(root, "../work-evil/file.txt")

		require.Error(t, err)
		assert.Equal(t, cjkdoc.EPATHESCAPE, cjkdoc.ErrorCode(err))
	})

	t.Run("root itself is contained", func(t *testing.T) {
		t.Parallel()

		got, err := fs.SafeJoin(root, "")

		require.NoError(t, err)
		assert.Equal(t, filepath.Clean(root), got)
	})
}

func TestContains(t *testing.T) {
	t.Parallel()

	root := filepath.FromSlash("/tmp/work")

	assert.True(t, fs.Contains(root, root))
	assert.True(t, fs.Contains(root, filepath.FromSlash("/tmp/work/a.xml")))
	assert.False(t, fs.Contains(root, filepath.FromSlash("/tmp/workshop/a.xml")))
	assert.False(t, fs.Contains(root, filepath.FromSlash("/tmp")))
}

func TestTempRoot(t *testing.T) {
	t.Parallel()

	root := fs.TempRoot()

	assert.True(t, filepath.IsAbs(root))
	assert.Equal(t, filepath.Clean(root), root)
}
