package iworkdoc

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/benedoc-inc/iworkdoc/internal/errs"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
	"github.com/benedoc-inc/iworkdoc/visitor"
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

func archiveInfoBytes(id uint64, typeCode, length uint32) []byte {
	var out []byte
	out = append(out, (1<<3)|0)
	out = appendUvarint(out, id)
	var mi []byte
	mi = append(mi, (1<<3)|0)
	mi = appendUvarint(mi, uint64(typeCode))
	mi = append(mi, (2<<3)|0)
	mi = appendUvarint(mi, uint64(length))
	out = append(out, (2<<3)|2)
	out = appendUvarint(out, uint64(len(mi)))
	out = append(out, mi...)
	return out
}

func buildFrame(id uint64, typeCode uint32, payload []byte) []byte {
	info := archiveInfoBytes(id, typeCode, uint32(len(payload)))
	var out []byte
	out = appendUvarint(out, uint64(len(info)))
	out = append(out, info...)
	return append(out, payload...)
}

func ref(id uint64) *tsp.Reference { return &tsp.Reference{Identifier: &id} }

func writePagesPackage(t *testing.T) string {
	t.Helper()
	text := "hello world"
	storage := (&tswp.StorageArchive{Text: &text}).Marshal()
	doc := (&tswp.DocumentArchive{Body: ref(2)}).Marshal()

	var iwa []byte
	iwa = append(iwa, buildFrame(1, 10000, doc)...)
	iwa = append(iwa, buildFrame(2, 102, storage)...)

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pages")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("Document.iwa")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(iwa); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()
	return path
}

func TestOpenAndWalkWordProcessor(t *testing.T) {
	path := writePagesPackage(t)

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer doc.Close()

	if doc.Kind() != WordProcessor {
		t.Fatalf("Kind() = %v, want WordProcessor", doc.Kind())
	}

	var texts []string
	v := &textCollectingVisitor{onText: func(s string) { texts = append(texts, s) }}
	warnings, err := doc.Walk(context.Background(), v)
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if len(texts) != 1 || texts[0] != "hello world" {
		t.Errorf("texts = %v, want [\"hello world\"]", texts)
	}
}

func TestOpenMissingPackageIsNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.pages"))
	if err == nil {
		t.Fatal("expected an error for a missing package path")
	}
	e, ok := errs.As(err)
	if !ok || e.Code != errs.CodePackageNotFound {
		t.Fatalf("err = %v, want code %s", err, errs.CodePackageNotFound)
	}
}

func TestOpenMalformedPackageIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pages")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Open(path)
	if err == nil {
		t.Fatal("expected an error for a malformed package file")
	}
	e, ok := errs.As(err)
	if !ok || e.Code != errs.CodePackageCorrupt {
		t.Fatalf("err = %v, want code %s", err, errs.CodePackageCorrupt)
	}
}

type textCollectingVisitor struct {
	BaseVisitor
	onText func(string)
}

func (v *textCollectingVisitor) Text(ctx context.Context, event visitor.TextEvent) error {
	v.onText(event.Text)
	return nil
}
