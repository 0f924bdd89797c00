package pkgstore

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenDirectoryForm(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Data"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Index.iwa"), []byte("iwa-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "preview.jpg"), []byte("jpg-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	pkg, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pkg.Close()

	if !pkg.Contains("Index.iwa") {
		t.Error("expected Index.iwa to be present")
	}
	b, err := pkg.Read("Index.iwa")
	if err != nil || string(b) != "iwa-bytes" {
		t.Fatalf("Read: %v %q", err, b)
	}
	if got, _ := pkg.Size("Index.iwa"); got != uint64(len("iwa-bytes")) {
		t.Errorf("Size = %d, want %d", got, len("iwa-bytes"))
	}
	if img, ok := pkg.PreviewImage(PreviewStandard); !ok || string(img) != "jpg-bytes" {
		t.Errorf("PreviewImage = %q, %v", img, ok)
	}
	if _, ok := pkg.PreviewImage(PreviewWeb); ok {
		t.Error("expected no preview-web.jpg")
	}
	if entries := pkg.IWAEntries(); len(entries) != 1 || entries[0] != "Index.iwa" {
		t.Errorf("IWAEntries = %v", entries)
	}
}

func TestOpenZipForm(t *testing.T) {
	dir := t.TempDir()
	zipPath := filepath.Join(dir, "doc.pages")
	f, err := os.Create(zipPath)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for _, entry := range []struct{ name, content string }{
		{"Document.iwa", "one"},
		{"DocumentStylesheet.iwa", "two"},
		{"Metadata/Properties.plist", "<plist/>"},
	} {
		w, err := zw.Create(entry.name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(entry.content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	pkg, err := Open(zipPath)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pkg.Close()

	entries := pkg.IWAEntries()
	if len(entries) != 2 {
		t.Fatalf("IWAEntries = %v, want 2", entries)
	}

	b, err := pkg.Read("Document.iwa")
	if err != nil || !bytes.Equal(b, []byte("one")) {
		t.Fatalf("Read: %v %q", err, b)
	}

	if !pkg.Contains("Metadata/Properties.plist") {
		t.Error("expected Metadata/Properties.plist to be present")
	}
	if _, err := pkg.Read("nope"); err == nil {
		t.Error("expected error for missing entry")
	}
}

func TestOpenMissingPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Fatal("expected error for missing package path")
	}
}
