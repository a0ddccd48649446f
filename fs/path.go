// Package fs provides the filesystem side of a conversion session: the
// zip-slip guard, the private working tree, and target member selection.
package fs

import (
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cjkdoc"
)

// SafeJoin returns the extraction destination of an archive member under
// root. The check is purely textual on cleaned paths; symlinks and mapped
// drives are never resolved. Returns EPATHESCAPE when the destination would
// fall outside root.
func SafeJoin(root, member string) (string, error) {
	name := strings.ReplaceAll(member, `\`, "/")
	if path.IsAbs(name) || hasVolumePrefix(name) {
		return "", cjkdoc.Errorf(cjkdoc.EPATHESCAPE, "unsafe zip path detected: %s", member)
	}

	base := filepath.Clean(root)
	dest := filepath.Clean(filepath.Join(base, filepath.FromSlash(name)))
	if !Contains(base, dest) {
		return "", cjkdoc.Errorf(cjkdoc.EPATHESCAPE, "unsafe zip path detected: %s", member)
	}
	return dest, nil
}

// Contains reports whether target equals root or lies beneath it. Both paths
// must already be cleaned.
func Contains(root, target string) bool {
	if target == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(target, prefix)
}

// hasVolumePrefix reports whether name starts with a drive letter such as
// "C:", which would make it absolute on Windows.
func hasVolumePrefix(name string) bool {
	if len(name) < 2 || name[1] != ':' {
		return false
	}
	c := name[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// TempRoot returns the platform temporary directory as a cleaned absolute
// path. Symlinks are deliberately left unresolved.
func TempRoot() string {
	dir := os.TempDir()
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return filepath.Clean(dir)
}

// ToSlash converts a path relative to root into an archive member name.
func ToSlash(root, p string) (string, error) {
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
