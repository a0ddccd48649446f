// Package zip reads source documents into a working tree and writes the
// converted tree back out as a zip archive.
package zip

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/cjkdoc"
	"github.com/fwojciec/cjkdoc/fs"
)

// DefaultMaxEntrySize bounds the decompressed size of a single archive
// member to guard against zip bombs.
const DefaultMaxEntrySize int64 = 256 * 1024 * 1024

// Extractor materializes an archive into a working tree.
type Extractor struct {
	// MaxEntrySize is the largest decompressed member accepted.
	// Zero means DefaultMaxEntrySize.
	MaxEntrySize int64
}

// Extract writes every member of the archive at src beneath root. Member
// names are checked with fs.SafeJoin; the first unsafe name aborts
// extraction with EPATHESCAPE before that member is written. It returns the
// number of files written.
func (e *Extractor) Extract(src, root string) (int, error) {
	r, err := zip.OpenReader(src)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return 0, fmt.Errorf("failed to open archive %s: %w", src, err)
	}
	defer r.Close()

	limit := e.MaxEntrySize
	if limit <= 0 {
		limit = DefaultMaxEntrySize
	}

	var n int
	for _, f := range r.File {
		dest, err := fs.SafeJoin(root, f.Name)
		if err != nil {
			return n, err
		}
		if dest == filepath.Clean(root) {
			continue
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0755); err != nil {
				return n, err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return n, err
		}
		if err := extractFile(f, dest, limit); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// extractFile copies one member to dest, failing when its decompressed
// size exceeds limit. The declared size is checked first and the actual
// stream is bounded as well, since headers can lie.
func extractFile(f *zip.File, dest string, limit int64) error {
	if f.UncompressedSize64 > uint64(limit) {
		return cjkdoc.Errorf(cjkdoc.EINVALID, "zip entry %s too large: %d bytes (max %d)", f.Name, f.UncompressedSize64, limit)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open zip entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	written, err := io.Copy(out, io.LimitReader(rc, limit+1))
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to extract zip entry %s: %w", f.Name, err)
	}
	if written > limit {
		return cjkdoc.Errorf(cjkdoc.EINVALID, "zip entry %s decompressed size exceeds limit (%d bytes)", f.Name, limit)
	}
	return nil
}
