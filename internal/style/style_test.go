package style

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/pkgstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
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

func u32(v int) *uint32     { u := uint32(v); return &u }
func f32(v float32) *float32 { return &v }
func idRef(id uint64) *tsp.Reference { return &tsp.Reference{Identifier: &id} }

func buildStore(t *testing.T, frames ...[]byte) *objectstore.Store {
	t.Helper()
	dir := t.TempDir()
	var all []byte
	for _, f := range frames {
		all = append(all, f...)
	}
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
	if _, err := w.Write(all); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	pkg, err := pkgstore.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	store, err := objectstore.Build(pkg)
	if err != nil {
		t.Fatal(err)
	}
	return store
}

func TestResolveCharacterLeafWins(t *testing.T) {
	root := &tswp.CharacterStyleArchive{FontName: strPtr("Helvetica"), FontSize: f32(12)}
	leaf := &tswp.CharacterStyleArchive{Parent: idRef(1), Bold: boolPtr(true)}

	store := buildStore(t,
		buildFrame(1, objectstore.TypeCharacterStyle, root.Marshal()),
		buildFrame(2, objectstore.TypeCharacterStyle, leaf.Marshal()),
	)

	resolved := ResolveCharacter(store, idRef(2))
	if resolved.FontName == nil || *resolved.FontName != "Helvetica" {
		t.Errorf("expected inherited FontName, got %+v", resolved.FontName)
	}
	if resolved.FontSize == nil || *resolved.FontSize != 12 {
		t.Errorf("expected inherited FontSize, got %+v", resolved.FontSize)
	}
	if resolved.Bold == nil || !*resolved.Bold {
		t.Errorf("expected leaf Bold=true, got %+v", resolved.Bold)
	}
}

func TestResolveCharacterCycleGuard(t *testing.T) {
	a := &tswp.CharacterStyleArchive{Parent: idRef(2), FontName: strPtr("A")}
	b := &tswp.CharacterStyleArchive{Parent: idRef(1), FontName: strPtr("B")}

	store := buildStore(t,
		buildFrame(1, objectstore.TypeCharacterStyle, a.Marshal()),
		buildFrame(2, objectstore.TypeCharacterStyle, b.Marshal()),
	)

	resolved := ResolveCharacter(store, idRef(1))
	if resolved.FontName == nil {
		t.Fatal("expected a resolved font name despite the cycle")
	}
}

func TestResolveParagraphDefaultCharacter(t *testing.T) {
	charStyle := &tswp.CharacterStyleArchive{FontName: strPtr("Georgia")}
	paraStyle := &tswp.ParagraphStyleArchive{DefaultCharacterStyle: idRef(10)}

	store := buildStore(t,
		buildFrame(10, objectstore.TypeCharacterStyle, charStyle.Marshal()),
		buildFrame(20, objectstore.TypeParagraphStyle, paraStyle.Marshal()),
	)

	resolved := ResolveParagraphDefaultCharacter(store, idRef(20))
	if resolved.FontName == nil || *resolved.FontName != "Georgia" {
		t.Errorf("expected inherited default character font, got %+v", resolved.FontName)
	}
}

func TestResolveListLevel(t *testing.T) {
	list := &tswp.ListStyleArchive{
		Levels: []*tswp.ListStyleLevel{
			{Kind: i32(int32(tswp.ListKindNumbered)), NumberFormat: strPtr("%d.")},
		},
	}
	store := buildStore(t, buildFrame(1, objectstore.TypeListStyle, list.Marshal()))

	resolved := ResolveList(store, idRef(1), 0)
	if !resolved.IsList() {
		t.Fatal("expected a list at level 0")
	}
	if resolved.NumberFormat == nil || *resolved.NumberFormat != "%d." {
		t.Errorf("unexpected number format: %+v", resolved.NumberFormat)
	}

	absent := ResolveList(store, idRef(1), 5)
	if absent.IsList() {
		t.Error("expected level 5 to be absent (not a list)")
	}
}

func TestResolveMediaLeafWins(t *testing.T) {
	w := 2.0
	root := &tsd.MediaStyleArchive{StrokeWidth: &w, HasShadow: boolPtr(false)}
	leaf := &tsd.MediaStyleArchive{Parent: idRef(1), HasShadow: boolPtr(true)}

	store := buildStore(t,
		buildFrame(1, objectstore.TypeMediaStyle, root.Marshal()),
		buildFrame(2, objectstore.TypeMediaStyle, leaf.Marshal()),
	)

	resolved := ResolveMedia(store, idRef(2))
	if resolved.StrokeWidth == nil || *resolved.StrokeWidth != 2.0 {
		t.Errorf("expected inherited StrokeWidth 2.0, got %+v", resolved.StrokeWidth)
	}
	if resolved.HasShadow == nil || !*resolved.HasShadow {
		t.Errorf("expected leaf HasShadow=true, got %+v", resolved.HasShadow)
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func i32(v int32) *int32      { return &v }
