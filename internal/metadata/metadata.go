// Package metadata locates the package's top-level metadata record and
// exposes the data-file registry, component list, and property
// dictionary the traversal engine and public facade need.
package metadata

import (
	"strings"

	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/pkgstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
)

// WellKnownMetadataID is the fixed object identifier the metadata
// record is conventionally carried at.
const WellKnownMetadataID = 1

// Metadata is the resolved, package-level view over a package's
// MetadataArchive plus the optional Metadata/ files alongside it.
type Metadata struct {
	archive *tsp.MetadataArchive
	pkg     *pkgstore.Package
}

// Load locates the metadata record (by the well-known identifier) in
// store and returns a resolved Metadata view. Returns ok=false if the
// package carries no metadata record at that identifier.
func Load(store *objectstore.Store, pkg *pkgstore.Package) (*Metadata, bool) {
	archive, ok := objectstore.Get[*tsp.MetadataArchive](store, WellKnownMetadataID)
	if !ok {
		return nil, false
	}
	return &Metadata{archive: archive, pkg: pkg}, true
}

// ResolveAssetPath maps a data-file identifier to a package path under
// Data/, preferring filename then preferred_filename, and only if the
// candidate path actually exists in storage. For each candidate name,
// when Data/<name> is absent but <name> itself exists as a package path,
// that path is returned instead.
func (m *Metadata) ResolveAssetPath(dataID uint64) (string, bool) {
	for _, d := range m.archive.DataFiles {
		if d.GetIdentifier() != dataID {
			continue
		}
		if name := d.GetFilename(); name != "" {
			if path, ok := m.existingDataPath(name); ok {
				return path, true
			}
		}
		if name := d.GetPreferredFilename(); name != "" {
			if path, ok := m.existingDataPath(name); ok {
				return path, true
			}
		}
		return "", false
	}
	return "", false
}

func (m *Metadata) existingDataPath(name string) (string, bool) {
	candidate := "Data/" + strings.TrimPrefix(name, "/")
	if m.pkg.Contains(candidate) {
		return candidate, true
	}
	if m.pkg.Contains(name) {
		return name, true
	}
	return "", false
}

// Components returns the package's component list.
func (m *Metadata) Components() []*tsp.ComponentArchive {
	return m.archive.Components
}

// ComponentsWithLocator returns every component whose preferred locator
// equals locator, e.g. "Slide" to enumerate a presentation's slides.
func (m *Metadata) ComponentsWithLocator(locator string) []*tsp.ComponentArchive {
	var out []*tsp.ComponentArchive
	for _, c := range m.archive.Components {
		if c.GetPreferredLocator() == locator {
			out = append(out, c)
		}
	}
	return out
}

// Properties returns the package's arbitrary property dictionary.
func (m *Metadata) Properties() map[string]string {
	props := make(map[string]string, len(m.archive.Properties))
	for _, p := range m.archive.Properties {
		props[p.GetKey()] = p.GetValue()
	}
	return props
}

// DocumentIdentifier reads the optional Metadata/DocumentIdentifier
// file, when the package carries one.
func (m *Metadata) DocumentIdentifier() (string, bool) {
	const path = "Metadata/DocumentIdentifier"
	if !m.pkg.Contains(path) {
		return "", false
	}
	b, err := m.pkg.Read(path)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(string(b)), true
}

// BuildVersionHistory reads the optional
// Metadata/BuildVersionHistory.plist file and returns its build
// identifiers as plain strings. Parsing is intentionally permissive: the plist's <string> array
// entries are extracted by a lightweight scan rather than a full plist
// decoder, since this is ambient, best-effort metadata, not a core
// operation.
func (m *Metadata) BuildVersionHistory() ([]string, bool) {
	const path = "Metadata/BuildVersionHistory.plist"
	if !m.pkg.Contains(path) {
		return nil, false
	}
	b, err := m.pkg.Read(path)
	if err != nil {
		return nil, false
	}
	return extractPlistStrings(string(b)), true
}

func extractPlistStrings(plist string) []string {
	var out []string
	const open, close = "<string>", "</string>"
	rest := plist
	for {
		i := strings.Index(rest, open)
		if i < 0 {
			break
		}
		rest = rest[i+len(open):]
		j := strings.Index(rest, close)
		if j < 0 {
			break
		}
		out = append(out, rest[:j])
		rest = rest[j+len(close):]
	}
	return out
}
