// Package pkgstore opens an iWork package — a directory tree or a ZIP
// container — and exposes one uniform, POSIX-style path namespace over
// it for callers that read individual entries out of order.
package pkgstore

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/benedoc-inc/iworkdoc/internal/errs"
)

// PreviewKind names one of the three conventional preview assets a
// package may ship at its root.
type PreviewKind int

const (
	PreviewStandard PreviewKind = iota
	PreviewWeb
	PreviewMicro
)

func (k PreviewKind) filename() string {
	switch k {
	case PreviewWeb:
		return "preview-web.jpg"
	case PreviewMicro:
		return "preview-micro.jpg"
	default:
		return "preview.jpg"
	}
}

// Package is a random-access, read-only view over an opened iWork
// package, directory-form or ZIP-form.
type Package struct {
	root string // non-empty for directory-form packages
	zr   *zip.ReadCloser
	// index maps a POSIX-relative path to its ZIP entry for ZIP-form
	// packages; nil for directory-form packages.
	index map[string]*zip.File
}

// Open accepts either a directory path or a ZIP file path and returns a
// uniform Package. Fails with a *errs.Error of code PackageNotFound or
// PackageCorrupt.
func Open(path string) (*Package, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrapf(errs.CodePackageNotFound, err, "package not found: %s", path)
		}
		return nil, errs.Wrapf(errs.CodePackageCorrupt, err, "cannot stat package: %s", path)
	}

	if info.IsDir() {
		return &Package{root: path}, nil
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, errs.Wrapf(errs.CodePackageCorrupt, err, "not a valid zip package: %s", path)
	}
	idx := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		idx[normalize(f.Name)] = f
	}
	return &Package{zr: zr, index: idx}, nil
}

// Close releases the underlying ZIP reader, if any. Directory-form
// packages hold no open handles and Close is a no-op for them.
func (p *Package) Close() error {
	if p.zr != nil {
		return p.zr.Close()
	}
	return nil
}

func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "/")
}

// Contains reports whether path names an entry in the package.
func (p *Package) Contains(path string) bool {
	path = normalize(path)
	if p.index != nil {
		_, ok := p.index[path]
		return ok
	}
	_, err := os.Stat(filepath.Join(p.root, filepath.FromSlash(path)))
	return err == nil
}

// Read returns the full byte content of path.
func (p *Package) Read(path string) ([]byte, error) {
	norm := normalize(path)
	if p.index != nil {
		f, ok := p.index[norm]
		if !ok {
			return nil, errs.Newf(errs.CodeEntryNotFound, "entry not found: %s", path)
		}
		rc, err := f.Open()
		if err != nil {
			return nil, errs.Wrapf(errs.CodePackageCorrupt, err, "cannot open zip entry: %s", path)
		}
		defer rc.Close()
		b, err := io.ReadAll(rc)
		if err != nil {
			return nil, errs.Wrapf(errs.CodePackageCorrupt, err, "cannot read zip entry: %s", path)
		}
		return b, nil
	}
	b, err := os.ReadFile(filepath.Join(p.root, filepath.FromSlash(norm)))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Newf(errs.CodeEntryNotFound, "entry not found: %s", path)
		}
		return nil, errs.Wrapf(errs.CodePackageCorrupt, err, "cannot read entry: %s", path)
	}
	return b, nil
}

// Size returns the uncompressed byte size of path without reading its
// content.
func (p *Package) Size(path string) (uint64, error) {
	norm := normalize(path)
	if p.index != nil {
		f, ok := p.index[norm]
		if !ok {
			return 0, errs.Newf(errs.CodeEntryNotFound, "entry not found: %s", path)
		}
		return f.UncompressedSize64, nil
	}
	info, err := os.Stat(filepath.Join(p.root, filepath.FromSlash(norm)))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errs.Newf(errs.CodeEntryNotFound, "entry not found: %s", path)
		}
		return 0, errs.Wrapf(errs.CodePackageCorrupt, err, "cannot stat entry: %s", path)
	}
	return uint64(info.Size()), nil
}

// IterEntries returns every entry path in the package, sorted.
func (p *Package) IterEntries() []string {
	var out []string
	if p.index != nil {
		for path := range p.index {
			out = append(out, path)
		}
	} else {
		filepath.Walk(p.root, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			rel, err := filepath.Rel(p.root, path)
			if err != nil {
				return nil
			}
			out = append(out, filepath.ToSlash(rel))
			return nil
		})
	}
	sort.Strings(out)
	return out
}

// IWAEntries returns every *.iwa record archive path in the package, in
// sorted order. Real packages split their records across several
// archives, so the store indexes all of them rather than one
// well-known file.
func (p *Package) IWAEntries() []string {
	var out []string
	for _, e := range p.IterEntries() {
		if strings.HasSuffix(strings.ToLower(e), ".iwa") {
			out = append(out, e)
		}
	}
	return out
}

// PreviewImage reads one of the three conventional preview assets. The
// second return value is false if the package ships no such preview.
func (p *Package) PreviewImage(kind PreviewKind) ([]byte, bool) {
	name := kind.filename()
	if !p.Contains(name) {
		return nil, false
	}
	b, err := p.Read(name)
	if err != nil {
		return nil, false
	}
	return b, true
}
