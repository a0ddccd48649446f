package fs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/cjkdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkspace(t *testing.T) {
	t.Parallel()

	t.Run("creates unique directories under root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()

		a, err := fs.NewWorkspace(root, "docx_temp_")
		require.NoError(t, err)
		b, err := fs.NewWorkspace(root, "docx_temp_")
		require.NoError(t, err)

		assert.NotEqual(t, a.Dir(), b.Dir())
		assert.Equal(t, root, filepath.Dir(a.Dir()))
		assert.True(t, strings.HasPrefix(filepath.Base(a.Dir()), "docx_temp_"))
		assert.DirExists(t, a.Dir())
	})

	t.Run("creates a missing temp root", func(t *testing.T) {
		t.Parallel()

		root := filepath.Join(t.TempDir(), "nested", "tmp")

		w, err := fs.NewWorkspace(root, "epub_temp_")

		require.NoError(t, err)
		assert.DirExists(t, w.Dir())
	})
}

func TestWorkspace_Join(t *testing.T) {
	t.Parallel()

	w, err := fs.NewWorkspace(t.TempDir(), "x_")
	require.NoError(t, err)

	got, err := w.Join("word/document.xml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(w.Dir(), "word", "document.xml"), got)

	_, err = w.Join("../escape.xml")
	assert.Error(t, err)
}

func TestWorkspace_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes tree with contents", func(t *testing.T) {
		t.Parallel()

		w, err := fs.NewWorkspace(t.TempDir(), "x_")
		require.NoError(t, err)
		require.NoError(t, os.MkdirAll(filepath.Join(w.Dir(), "a", "b"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(w.Dir(), "a", "b", "c.xml"), []byte("<c/>"), 0644))

		require.NoError(t, w.Remove())
		assert.NoDirExists(t, w.Dir())
	})

	t.Run("removes read-only entries", func(t *testing.T) {
		t.Parallel()

		w, err := fs.NewWorkspace(t.TempDir(), "x_")
		require.NoError(t, err)
		locked := filepath.Join(w.Dir(), "locked")
		require.NoError(t, os.MkdirAll(locked, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(locked, "f.xml"), []byte("<f/>"), 0444))
		require.NoError(t, os.Chmod(locked, 0555))

		require.NoError(t, w.Remove())
		assert.NoDirExists(t, w.Dir())
	})

	t.Run("is a no-op when already removed", func(t *testing.T) {
		t.Parallel()

		w, err := fs.NewWorkspace(t.TempDir(), "x_")
		require.NoError(t, err)
		require.NoError(t, w.Remove())

		assert.NoError(t, w.Remove())
	})
}

func TestRemoveFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := filepath.Join(dir, "out.docx")
	require.NoError(t, os.WriteFile(p, []byte("x"), 0644))

	require.NoError(t, fs.RemoveFile(p))
	assert.NoFileExists(t, p)
	assert.NoError(t, fs.RemoveFile(p))
}

func TestHashFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("same"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("same"), 0644))

	ha, err := fs.HashFile(a)
	require.NoError(t, err)
	hb, err := fs.HashFile(b)
	require.NoError(t, err)

	assert.Len(t, ha, 16)
	assert.Equal(t, ha, hb)

	_, err = fs.HashFile(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
