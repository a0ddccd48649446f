package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cjkdoc"
)

// Resolve returns the slash-separated member paths that carry convertible
// text for format f in the working tree at root.
//
// Fixed members are returned even when they are absent from the tree;
// callers skip missing members. Walked members are returned in lexical walk
// order, so repeated calls on the same tree yield the same list.
func Resolve(f cjkdoc.Format, root string) ([]string, error) {
	switch f {
	case cjkdoc.FormatDOCX:
		return []string{"word/document.xml"}, nil
	case cjkdoc.FormatXLSX:
		return []string{"xl/sharedStrings.xml"}, nil
	case cjkdoc.FormatPPTX:
		return walkMembers(root, "ppt", isSlidePart)
	case cjkdoc.FormatODT, cjkdoc.FormatODS, cjkdoc.FormatODP:
		return []string{"content.xml"}, nil
	case cjkdoc.FormatEPUB:
		return walkMembers(root, "", isEPUBText)
	default:
		return nil, cjkdoc.Errorf(cjkdoc.EUNSUPPORTED, "unsupported or invalid format: %s", f)
	}
}

// isSlidePart matches slide text, speaker notes, masters, layouts and
// comments.
func isSlidePart(name string) bool {
	if !strings.HasSuffix(name, ".xml") {
		return false
	}
	return strings.HasPrefix(name, "slide") ||
		strings.Contains(name, "notesSlide") ||
		strings.Contains(name, "slideMaster") ||
		strings.Contains(name, "slideLayout") ||
		strings.Contains(name, "comment")
}

func isEPUBText(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xhtml", ".html", ".opf", ".ncx":
		return true
	}
	return false
}

// walkMembers lists regular files under root/sub whose base name satisfies
// match. A missing sub directory yields no members.
func walkMembers(root, sub string, match func(name string) bool) ([]string, error) {
	start := filepath.Join(root, filepath.FromSlash(sub))
	info, err := os.Stat(start)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	var members []string
	err = filepath.WalkDir(start, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() || !match(d.Name()) {
			return nil
		}
		name, err := ToSlash(root, p)
		if err != nil {
			return err
		}
		members = append(members, name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return members, nil
}
