package zip

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/fwojciec/cjkdoc"
	cjkfs "github.com/fwojciec/cjkdoc/fs"
)

// MimetypeName is the member that must open every EPUB archive.
const MimetypeName = "mimetype"

// WriteGeneric writes every regular file under root into a new archive at
// output, using Deflate and root-relative slash-separated names in walk
// order.
func WriteGeneric(root, output string) error {
	files, err := listFiles(root)
	if err != nil {
		return err
	}

	return writeArchive(output, func(w *zip.Writer) error {
		for _, name := range files {
			if err := addFile(w, root, name, zip.Deflate); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteEPUB writes the tree at root as an EPUB container: mimetype first and
// stored, then every other file in sorted order, each deflated. Returns
// EMISSINGMIMETYPE before creating any output when root has no top-level
// mimetype file.
func WriteEPUB(root, output string) error {
	info, err := os.Stat(filepath.Join(root, MimetypeName))
	if err != nil || !info.Mode().IsRegular() {
		return cjkdoc.Errorf(cjkdoc.EMISSINGMIMETYPE, "'mimetype' file is missing; EPUB requires it as the first entry")
	}

	files, err := listFiles(root)
	if err != nil {
		return err
	}
	sort.Strings(files)

	return writeArchive(output, func(w *zip.Writer) error {
		if err := addFile(w, root, MimetypeName, zip.Store); err != nil {
			return err
		}
		for _, name := range files {
			if name == MimetypeName {
				continue
			}
			if err := addFile(w, root, name, zip.Deflate); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeArchive builds the archive in a temporary file next to output and
// renames it into place once fill succeeds, so a failed write never leaves
// a partial archive at output.
func writeArchive(output string, fill func(w *zip.Writer) error) (err error) {
	dir := filepath.Dir(output)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(output)+".*.tmp")
	if err != nil {
		return cjkdoc.Errorf(cjkdoc.EARCHIVEWRITE, "failed to create output in %s: %v", dir, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := zip.NewWriter(tmp)
	if err := fill(w); err != nil {
		return archiveWriteError(output, err)
	}
	if err := w.Close(); err != nil {
		return archiveWriteError(output, err)
	}
	if err := tmp.Close(); err != nil {
		return archiveWriteError(output, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return archiveWriteError(output, err)
	}
	if err := os.Rename(tmp.Name(), output); err != nil {
		return archiveWriteError(output, err)
	}
	return nil
}

func archiveWriteError(output string, err error) error {
	var e *cjkdoc.Error
	if errors.As(err, &e) {
		return err
	}
	return cjkdoc.Errorf(cjkdoc.EARCHIVEWRITE, "failed to write %s: %v", output, err)
}

// addFile copies root/name into the archive under name with the given
// compression method.
func addFile(w *zip.Writer, root, name string, method uint16) error {
	p := filepath.Join(root, filepath.FromSlash(name))
	info, err := os.Stat(p)
	if err != nil {
		return err
	}

	header := &zip.FileHeader{
		Name:   name,
		Method: method,
	}
	// A modification time adds an extra field, which EPUB readers reject
	// on the stored mimetype entry.
	if method != zip.Store {
		header.Modified = info.ModTime()
	}
	header.SetMode(0644)

	dst, err := w.CreateHeader(header)
	if err != nil {
		return err
	}

	src, err := os.Open(p)
	if err != nil {
		return err
	}
	defer src.Close()

	_, err = io.Copy(dst, src)
	return err
}

// listFiles returns the slash-separated names of all regular files under
// root in walk order.
func listFiles(root string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		name, err := cjkfs.ToSlash(root, p)
		if err != nil {
			return err
		}
		names = append(names, name)
		return nil
	})
	if err != nil {
		return nil, cjkdoc.Errorf(cjkdoc.EARCHIVEWRITE, "failed to list working tree: %v", err)
	}
	return names, nil
}
