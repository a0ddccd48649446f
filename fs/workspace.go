package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/cjkdoc"
)

// Workspace is a private working tree that holds the extracted contents of
// one archive for the duration of one session.
type Workspace struct {
	dir string
}

// NewWorkspace creates a uniquely named working tree under root. The prefix
// is used as the start of the directory name.
func NewWorkspace(root, prefix string) (*Workspace, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create temp root: %w", err)
	}
	dir, err := os.MkdirTemp(root, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to create working tree: %w", err)
	}
	return &Workspace{dir: filepath.Clean(dir)}, nil
}

// Dir returns the root of the working tree.
func (w *Workspace) Dir() string {
	return w.dir
}

// Join returns the path of a slash-separated member name inside the tree,
// rejecting names that escape it.
func (w *Workspace) Join(member string) (string, error) {
	return SafeJoin(w.dir, member)
}

// Remove deletes the working tree. When the first attempt fails, every
// entry is made writable and removal is retried once. A failed retry
// returns an ECLEANUP error that callers treat as a warning.
func (w *Workspace) Remove() error {
	err := os.RemoveAll(w.dir)
	if err == nil {
		return nil
	}

	makeWritable(w.dir)
	if err := os.RemoveAll(w.dir); err != nil {
		return cjkdoc.Errorf(cjkdoc.ECLEANUP, "failed to remove working tree %s: %v", w.dir, err)
	}
	return nil
}

// makeWritable grants the owner full access to every entry under dir.
// Errors are ignored; the following removal reports what is left.
func makeWritable(dir string) {
	_ = os.Chmod(dir, 0700)
	_ = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			_ = os.Chmod(p, 0700)
		} else {
			_ = os.Chmod(p, 0600)
		}
		return nil
	})
}

// RemoveFile deletes the file at path if it exists.
func RemoveFile(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
