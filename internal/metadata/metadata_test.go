package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/pkgstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
)

func appendUvarint(b []byte, v uint64) []byte {
	var tmp [10]byte
	i := 0
	for v >= 0x80 {
		tmp[i] = byte(v) | 0x80
		v >>= 7
		i++
	}
	tmp[i] = byte(v)
	return append(b, tmp[:i+1]...)
}

func buildFrame(objectID uint64, typeCode uint32, payload []byte) []byte {
	info := &tsp.ArchiveInfo{
		Identifier:   &objectID,
		MessageInfos: []*tsp.MessageInfo{{Type: &typeCode, Length: u32(len(payload))}},
	}
	ib := info.Marshal()
	var out []byte
	out = appendUvarint(out, uint64(len(ib)))
	out = append(out, ib...)
	out = append(out, payload...)
	return out
}

func u32(v int) *uint32 { u := uint32(v); return &u }
func strPtr(s string) *string { return &s }

func TestResolveAssetPathPrefersFilename(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Data"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Data", "image.jpg"), []byte("jpg"), 0o644); err != nil {
		t.Fatal(err)
	}

	archive := &tsp.MetadataArchive{
		DataFiles: []*tsp.DataFileArchive{
			{Identifier: idPtr(42), Filename: strPtr("image.jpg"), PreferredFilename: strPtr("fallback.jpg")},
		},
	}
	frame := buildFrame(WellKnownMetadataID, objectstore.TypeMetadata, archive.Marshal())
	if err := os.WriteFile(filepath.Join(dir, "Document.iwa"), frame, 0o644); err != nil {
		t.Fatal(err)
	}

	pkg, err := pkgstore.Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pkg.Close()
	store, err := objectstore.Build(pkg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	md, ok := Load(store, pkg)
	if !ok {
		t.Fatal("expected metadata to load")
	}
	path, ok := md.ResolveAssetPath(42)
	if !ok || path != "Data/image.jpg" {
		t.Fatalf("ResolveAssetPath = %q, %v", path, ok)
	}
	if _, ok := md.ResolveAssetPath(999); ok {
		t.Error("expected miss for unknown data id")
	}
}

func TestResolveAssetPathSkipsMissingFile(t *testing.T) {
	dir := t.TempDir()
	archive := &tsp.MetadataArchive{
		DataFiles: []*tsp.DataFileArchive{
			{Identifier: idPtr(1), Filename: strPtr("missing.jpg")},
		},
	}
	frame := buildFrame(WellKnownMetadataID, objectstore.TypeMetadata, archive.Marshal())
	if err := os.WriteFile(filepath.Join(dir, "Document.iwa"), frame, 0o644); err != nil {
		t.Fatal(err)
	}
	pkg, _ := pkgstore.Open(dir)
	defer pkg.Close()
	store, _ := objectstore.Build(pkg)
	md, ok := Load(store, pkg)
	if !ok {
		t.Fatal("expected metadata to load")
	}
	if _, ok := md.ResolveAssetPath(1); ok {
		t.Error("expected asset resolution to fail when neither candidate file exists")
	}
}

func idPtr(v uint64) *uint64 { return &v }
