package shapepath

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/pkgstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
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

func buildFrame(objectID uint64, typeCode uint32, payload []byte) []byte {
	info := archiveInfoBytes(objectID, typeCode, uint32(len(payload)))
	var out []byte
	out = appendUvarint(out, uint64(len(info)))
	out = append(out, info...)
	out = append(out, payload...)
	return out
}

func buildStore(t *testing.T, frames ...[]byte) *objectstore.Store {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.key")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	w, err := zw.Create("Document.iwa")
	if err != nil {
		t.Fatal(err)
	}
	for _, frame := range frames {
		if _, err := w.Write(frame); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()

	pkg, err := pkgstore.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { pkg.Close() })

	store, err := objectstore.Build(pkg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return store
}

func idRef(id uint64) *tsp.Reference {
	return &tsp.Reference{Identifier: &id}
}

func TestResolveBezierPath(t *testing.T) {
	kind := int32(0) // moveTo
	bezier := &tsd.BezierPath{
		Elements: []*tsd.PathElement{
			{Kind: &kind, Points: []*tsd.Point{{X: 1, Y: 2}}},
		},
		NaturalSize: &tsd.Size{Width: 10, Height: 20},
	}
	frame := buildFrame(1, objectstore.TypeBezierPath, bezier.Marshal())
	store := buildStore(t, frame)

	src, ok := Resolve(store, idRef(1))
	if !ok {
		t.Fatal("expected a resolved path")
	}
	if src.Kind != tsd.PathKindBezier {
		t.Fatalf("Kind = %v, want PathKindBezier", src.Kind)
	}
	if src.Bezier == nil || len(src.Bezier.Elements) != 1 {
		t.Fatalf("unexpected bezier: %+v", src.Bezier)
	}
	if src.Bezier.NaturalSize == nil || src.Bezier.NaturalSize.Width != 10 {
		t.Fatalf("unexpected natural size: %+v", src.Bezier.NaturalSize)
	}
}

func TestResolvePointPath(t *testing.T) {
	shapeType := int32(3)
	p := &tsd.PointPath{ShapeType: &shapeType, DefiningPoint: &tsd.Point{X: 5, Y: 6}}
	frame := buildFrame(1, objectstore.TypePointPath, p.Marshal())
	store := buildStore(t, frame)

	src, ok := Resolve(store, idRef(1))
	if !ok {
		t.Fatal("expected a resolved path")
	}
	if src.Kind != tsd.PathKindPoint {
		t.Fatalf("Kind = %v, want PathKindPoint", src.Kind)
	}
	if src.Point == nil || src.Point.DefiningPoint == nil || src.Point.DefiningPoint.X != 5 {
		t.Fatalf("unexpected point path: %+v", src.Point)
	}
}

func TestResolveNilReferenceIsMiss(t *testing.T) {
	store := buildStore(t)
	if _, ok := Resolve(store, nil); ok {
		t.Error("expected nil reference to miss")
	}
}

func TestResolveUnknownObjectIsMiss(t *testing.T) {
	store := buildStore(t)
	if _, ok := Resolve(store, idRef(42)); ok {
		t.Error("expected unresolved reference to miss")
	}
}
