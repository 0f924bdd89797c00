package traverse

import (
	"archive/zip"
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/benedoc-inc/iworkdoc/internal/metadata"
	"github.com/benedoc-inc/iworkdoc/internal/objectstore"
	"github.com/benedoc-inc/iworkdoc/internal/pkgstore"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tst"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tswp"
	"github.com/benedoc-inc/iworkdoc/visitor"
)

// -- synthetic package construction helpers, mirroring
// internal/objectstore's store_test.go fixture style --

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

type record struct {
	id       uint64
	typeCode uint32
	payload  []byte
}

func buildIWAStream(records ...record) []byte {
	var out []byte
	for _, r := range records {
		info := archiveInfoBytes(r.id, r.typeCode, uint32(len(r.payload)))
		out = appendUvarint(out, uint64(len(info)))
		out = append(out, info...)
		out = append(out, r.payload...)
	}
	return out
}

func writeZipPackage(t *testing.T, files map[string][]byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pages")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(content); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	f.Close()
	return path
}

func buildEngine(t *testing.T, records ...record) *Engine {
	t.Helper()
	path := writeZipPackage(t, map[string][]byte{"Document.iwa": buildIWAStream(records...)})
	pkg, err := pkgstore.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { pkg.Close() })
	store, err := objectstore.Build(pkg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	meta, _ := metadata.Load(store, pkg)
	return New(store, meta, pkg)
}

func strPtr(s string) *string { return &s }
func u32Ptr(v uint32) *uint32 { return &v }
func i32Ptr(v int32) *int32   { return &v }

func ref(id uint64) *tsp.Reference { return &tsp.Reference{Identifier: &id} }

// recordingVisitor captures every call's shape as a flat string trace so
// tests can assert on ordering without hand-rolling a full visitor.
type recordingVisitor struct {
	visitor.BaseVisitor
	trace []string
	texts []string
}

func (r *recordingVisitor) DocumentBegin(ctx context.Context, info visitor.DocumentInfo) error {
	r.trace = append(r.trace, "doc-begin")
	return nil
}
func (r *recordingVisitor) DocumentEnd(ctx context.Context) error {
	r.trace = append(r.trace, "doc-end")
	return nil
}
func (r *recordingVisitor) PagesBodyBegin(ctx context.Context) error {
	r.trace = append(r.trace, "body-begin")
	return nil
}
func (r *recordingVisitor) PagesBodyEnd(ctx context.Context) error {
	r.trace = append(r.trace, "body-end")
	return nil
}
func (r *recordingVisitor) ParagraphBegin(ctx context.Context, info visitor.ParagraphInfo) error {
	r.trace = append(r.trace, "p-begin")
	return nil
}
func (r *recordingVisitor) ParagraphEnd(ctx context.Context) error {
	r.trace = append(r.trace, "p-end")
	return nil
}
func (r *recordingVisitor) ListBegin(ctx context.Context, info visitor.ListInfo) error {
	r.trace = append(r.trace, "list-begin")
	return nil
}
func (r *recordingVisitor) ListEnd(ctx context.Context) error {
	r.trace = append(r.trace, "list-end")
	return nil
}
func (r *recordingVisitor) ListItemBegin(ctx context.Context, info visitor.ListItemInfo) error {
	r.trace = append(r.trace, "item-begin")
	return nil
}
func (r *recordingVisitor) ListItemEnd(ctx context.Context) error {
	r.trace = append(r.trace, "item-end")
	return nil
}
func (r *recordingVisitor) Text(ctx context.Context, event visitor.TextEvent) error {
	r.trace = append(r.trace, "text")
	r.texts = append(r.texts, event.Text)
	return nil
}

const (
	typeDoc        = 10000
	typeStorage    = 102
	typeParaStyle  = 103
	typeCharStyle  = 104
	typeListStyle  = 105
	typeHyperlink  = 107
	typeParaData   = 109
)

func TestTraverseEmptyParagraph(t *testing.T) {
	storage := (&tswp.StorageArchive{
		Text: strPtr(""),
		ParagraphStyles: &tswp.AttributeTable{Entries: []*tswp.AttributeEntry{
			{CharacterIndex: u32Ptr(0), Object: ref(3)},
		}},
	}).Marshal()
	paraStyle := (&tswp.ParagraphStyleArchive{}).Marshal()
	doc := (&tswp.DocumentArchive{Body: ref(2)}).Marshal()

	e := buildEngine(t,
		record{1, typeDoc, doc},
		record{2, typeStorage, storage},
		record{3, typeParaStyle, paraStyle},
	)
	v := &recordingVisitor{}
	if err := e.Walk(context.Background(), objectstore.WordProcessor, v); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := []string{"doc-begin", "body-begin", "p-begin", "p-end", "body-end", "doc-end"}
	if !equalTraces(v.trace, want) {
		t.Errorf("trace = %v, want %v", v.trace, want)
	}
}

func TestTraverseHyperlinkRun(t *testing.T) {
	text := "click here"
	storage := (&tswp.StorageArchive{
		Text: strPtr(text),
		ParagraphStyles: &tswp.AttributeTable{Entries: []*tswp.AttributeEntry{
			{CharacterIndex: u32Ptr(0), Object: ref(3)},
		}},
		CharacterStyles: &tswp.AttributeTable{Entries: []*tswp.AttributeEntry{
			{CharacterIndex: u32Ptr(0), Object: ref(4)},
		}},
		SmartFields: &tswp.AttributeTable{Entries: []*tswp.AttributeEntry{
			{CharacterIndex: u32Ptr(6), Object: ref(5)},
		}},
	}).Marshal()
	paraStyle := (&tswp.ParagraphStyleArchive{}).Marshal()
	charStyle := (&tswp.CharacterStyleArchive{FontName: strPtr("Helvetica")}).Marshal()
	hyperlink := (&tswp.HyperlinkFieldArchive{URL: strPtr("https://example.com")}).Marshal()
	doc := (&tswp.DocumentArchive{Body: ref(2)}).Marshal()

	e := buildEngine(t,
		record{1, typeDoc, doc},
		record{2, typeStorage, storage},
		record{3, typeParaStyle, paraStyle},
		record{4, typeCharStyle, charStyle},
		record{5, typeHyperlink, hyperlink},
	)
	var got visitor.TextEvent
	calls := 0
	v := &captureTextVisitor{onText: func(e visitor.TextEvent) { got = e; calls++ }}
	if err := e.Walk(context.Background(), objectstore.WordProcessor, v); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one text event, got %d", calls)
	}
	if got.Text != text {
		t.Errorf("Text = %q, want %q", got.Text, text)
	}
	if got.Hyperlink == nil || got.Hyperlink.URL != "https://example.com" {
		t.Errorf("Hyperlink = %+v, want https://example.com", got.Hyperlink)
	}
	if got.FontName == nil || *got.FontName != "Helvetica" {
		t.Errorf("FontName = %v, want Helvetica", got.FontName)
	}
}

type captureTextVisitor struct {
	visitor.BaseVisitor
	onText func(visitor.TextEvent)
}

func (c *captureTextVisitor) Text(ctx context.Context, event visitor.TextEvent) error {
	c.onText(event)
	return nil
}

func TestTraverseListCounterStopsAtNonListParagraph(t *testing.T) {
	// Three paragraphs worth of storage: [list, list, plain], each one
	// character long, sharing one numbered list style.
	text := "abc"
	storage := (&tswp.StorageArchive{
		Text: strPtr(text),
		ParagraphStyles: &tswp.AttributeTable{Entries: []*tswp.AttributeEntry{
			{CharacterIndex: u32Ptr(0), Object: ref(3)},
			{CharacterIndex: u32Ptr(1), Object: ref(3)},
			{CharacterIndex: u32Ptr(2), Object: ref(6)},
		}},
	}).Marshal()
	listParaStyle := (&tswp.ParagraphStyleArchive{ListStyle: ref(5)}).Marshal()
	plainParaStyle := (&tswp.ParagraphStyleArchive{}).Marshal()
	listStyle := (&tswp.ListStyleArchive{Levels: []*tswp.ListStyleLevel{
		{Kind: i32Ptr(int32(tswp.ListKindNumbered))},
	}}).Marshal()
	doc := (&tswp.DocumentArchive{Body: ref(2)}).Marshal()

	e := buildEngine(t,
		record{1, typeDoc, doc},
		record{2, typeStorage, storage},
		record{3, typeParaStyle, listParaStyle},
		record{5, typeListStyle, listStyle},
		record{6, typeParaStyle, plainParaStyle},
	)
	var numbers []int
	v := &listCounterVisitor{onItem: func(n int) { numbers = append(numbers, n) }}
	if err := e.Walk(context.Background(), objectstore.WordProcessor, v); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := []int{1, 2}
	if !equalInts(numbers, want) {
		t.Errorf("list item numbers = %v, want %v", numbers, want)
	}
}

func TestTraverseListCounterRestartsAfterGap(t *testing.T) {
	// Five one-character paragraphs: list, list, plain, list, list. The
	// counter must restart at 1 for the second list run even though it
	// reuses the same list-style object.
	text := "abcde"
	storage := (&tswp.StorageArchive{
		Text: strPtr(text),
		ParagraphStyles: &tswp.AttributeTable{Entries: []*tswp.AttributeEntry{
			{CharacterIndex: u32Ptr(0), Object: ref(3)},
			{CharacterIndex: u32Ptr(1), Object: ref(3)},
			{CharacterIndex: u32Ptr(2), Object: ref(6)},
			{CharacterIndex: u32Ptr(3), Object: ref(3)},
			{CharacterIndex: u32Ptr(4), Object: ref(3)},
		}},
	}).Marshal()
	listParaStyle := (&tswp.ParagraphStyleArchive{ListStyle: ref(5)}).Marshal()
	plainParaStyle := (&tswp.ParagraphStyleArchive{}).Marshal()
	listStyle := (&tswp.ListStyleArchive{Levels: []*tswp.ListStyleLevel{
		{Kind: i32Ptr(int32(tswp.ListKindNumbered))},
	}}).Marshal()
	doc := (&tswp.DocumentArchive{Body: ref(2)}).Marshal()

	e := buildEngine(t,
		record{1, typeDoc, doc},
		record{2, typeStorage, storage},
		record{3, typeParaStyle, listParaStyle},
		record{5, typeListStyle, listStyle},
		record{6, typeParaStyle, plainParaStyle},
	)
	var numbers []int
	v := &listCounterVisitor{onItem: func(n int) { numbers = append(numbers, n) }}
	if err := e.Walk(context.Background(), objectstore.WordProcessor, v); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	want := []int{1, 2, 1, 2}
	if !equalInts(numbers, want) {
		t.Errorf("list item numbers = %v, want %v", numbers, want)
	}
}

type listCounterVisitor struct {
	visitor.BaseVisitor
	onItem func(int)
}

func (l *listCounterVisitor) ListItemBegin(ctx context.Context, info visitor.ListItemInfo) error {
	l.onItem(info.Number)
	return nil
}

func TestOrderBySpatialReadingOrder(t *testing.T) {
	bottomRight := (&tsd.ShapeArchive{Info: tsd.Info{Geometry: &tsd.GeometryArchive{
		Position: &tsd.Point{X: 100, Y: 100}, Sz: &tsd.Size{Width: 10, Height: 10},
	}}}).Marshal()
	topLeft := (&tsd.ShapeArchive{Info: tsd.Info{Geometry: &tsd.GeometryArchive{
		Position: &tsd.Point{X: 0, Y: 0}, Sz: &tsd.Size{Width: 10, Height: 10},
	}}}).Marshal()

	e := buildEngine(t,
		record{10, typeShapeCode, bottomRight},
		record{20, typeShapeCode, topLeft},
	)
	ordered := e.orderBySpatialReadingOrder([]*tsp.Reference{ref(10), ref(20)})
	if len(ordered) != 2 || ordered[0].GetIdentifier() != 20 || ordered[1].GetIdentifier() != 10 {
		t.Errorf("ordered = %v, want [20, 10]", identifiers(ordered))
	}
}

const typeShapeCode = 201

func TestTraverseShapeCarriesResolvedPath(t *testing.T) {
	k := func(kind tsd.BezierElementKind) *int32 { v := int32(kind); return &v }
	path := (&tsd.BezierPath{
		NaturalSize: &tsd.Size{Width: 50, Height: 40},
		Elements: []*tsd.PathElement{
			{Kind: k(tsd.BezierMoveTo), Points: []*tsd.Point{{X: 0, Y: 0}}},
			{Kind: k(tsd.BezierLineTo), Points: []*tsd.Point{{X: 50, Y: 40}}},
			{Kind: k(tsd.BezierCloseSubpath)},
		},
	}).Marshal()
	shape := (&tsd.ShapeArchive{Path: ref(11)}).Marshal()
	doc := (&tswp.DocumentArchive{FloatingDrawables: []*tsp.Reference{ref(10)}}).Marshal()

	e := buildEngine(t,
		record{1, typeDoc, doc},
		record{10, typeShapeCode, shape},
		record{11, 222, path},
	)
	var got *visitor.PathValue
	v := &shapeInfoVisitor{onShape: func(info visitor.ShapeInfo) { got = info.Path }}
	if err := e.Walk(context.Background(), objectstore.WordProcessor, v); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if got == nil {
		t.Fatal("shape-begin carried no path")
	}
	if got.Kind != visitor.PathBezier {
		t.Errorf("Kind = %v, want PathBezier", got.Kind)
	}
	if got.NaturalWidth != 50 || got.NaturalHeight != 40 {
		t.Errorf("natural size = %gx%g, want 50x40", got.NaturalWidth, got.NaturalHeight)
	}
	if len(got.Elements) != 3 || got.Elements[1].Kind != visitor.PathLineTo {
		t.Errorf("Elements = %+v, want moveTo/lineTo/closeSubpath", got.Elements)
	}
}

type shapeInfoVisitor struct {
	visitor.BaseVisitor
	onShape func(visitor.ShapeInfo)
}

func (s *shapeInfoVisitor) ShapeBegin(ctx context.Context, info visitor.ShapeInfo) error {
	s.onShape(info)
	return nil
}

func TestTraverseSpreadsheetTable(t *testing.T) {
	f64 := func(v float64) []byte {
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
		return b[:]
	}
	u32le := func(v uint32) []byte {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], v)
		return b[:]
	}
	cellBuf := func(cellType byte, flags uint32, payload ...[]byte) []byte {
		out := []byte{5, cellType, 0, 0, 0, 0, 0, 0}
		out = append(out, u32le(flags)...)
		for _, p := range payload {
			out = append(out, p...)
		}
		return out
	}

	numberCell := cellBuf(2, 1<<1, f64(3.14))
	currencyCell := cellBuf(10, 1<<1|1<<14, f64(9.99), u32le(7))
	rowBuf := append(append([]byte{}, numberCell...), currencyCell...)

	u32p := func(v uint32) *uint32 { return &v }
	f64p := func(v float64) *float64 { return &v }
	model := (&tst.TableModelArchive{
		NumRows: u32p(1), NumCols: u32p(2), RowStride: u32p(1),
		Tiles: []*tsp.Reference{ref(32)},
		CurrencyFormatTable: ref(33),
		StrokeSidecar:       ref(34),
	}).Marshal()
	tile := (&tst.TileArchive{
		TileIndex: u32p(0),
		Rows: []*tst.TileRow{{
			Buffer:  rowBuf,
			Offsets: []uint16{0, uint16(len(numberCell))},
		}},
	}).Marshal()
	currencyTable := (&tst.TableDataList{Entries: []*tst.TableDataEntry{
		{Key: i32Ptr(7), String: strPtr("USD")},
	}}).Marshal()
	strokes := (&tst.StrokeSidecar{
		RowRuns: []*tst.StrokeRun{{StartIndex: u32p(0), Length: u32p(1), Priority: u32p(1), Width: f64p(1.5)}},
		ColRuns: []*tst.StrokeRun{{StartIndex: u32p(1), Length: u32p(1), Priority: u32p(1), Width: f64p(0.75)}},
	}).Marshal()
	table := (&tsd.TableArchive{Info: tsd.Info{Name: strPtr("Ledger")}, Model: ref(31)}).Marshal()
	sheet := (&tst.SheetArchive{Name: strPtr("Sheet 1"), Drawables: []*tsp.Reference{ref(30)}}).Marshal()
	doc := (&tst.DocumentArchive{Sheets: []*tsp.Reference{ref(20)}}).Marshal()

	e := buildEngine(t,
		record{1, 6003, doc},
		record{20, 6002, sheet},
		record{30, 207, table},
		record{31, 6001, model},
		record{32, 6005, tile},
		record{33, 6016, currencyTable},
		record{34, 6019, strokes},
	)
	var cells []visitor.CellEvent
	v := &cellVisitor{onCell: func(ev visitor.CellEvent) { cells = append(cells, ev) }}
	if err := e.Walk(context.Background(), objectstore.Spreadsheet, v); err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(cells) != 2 {
		t.Fatalf("got %d cell events, want 2", len(cells))
	}
	if cells[0].Number == nil || *cells[0].Number != 3.14 {
		t.Errorf("cell 0 Number = %v, want 3.14", cells[0].Number)
	}
	if cells[0].Borders == nil || cells[0].Borders.Top == nil || *cells[0].Borders.Top != 1.5 {
		t.Errorf("cell 0 Borders = %+v, want top 1.5", cells[0].Borders)
	}
	if cells[0].Borders != nil && cells[0].Borders.Left != nil {
		t.Errorf("cell 0 left border = %v, want none", *cells[0].Borders.Left)
	}
	if cells[1].Number == nil || *cells[1].Number != 9.99 {
		t.Errorf("cell 1 Number = %v, want 9.99", cells[1].Number)
	}
	if cells[1].CurrencyCode == nil || *cells[1].CurrencyCode != "USD" {
		t.Errorf("cell 1 CurrencyCode = %v, want USD", cells[1].CurrencyCode)
	}
	if cells[1].Borders == nil || cells[1].Borders.Left == nil || *cells[1].Borders.Left != 0.75 {
		t.Errorf("cell 1 Borders = %+v, want left 0.75", cells[1].Borders)
	}
}

type cellVisitor struct {
	visitor.BaseVisitor
	onCell func(visitor.CellEvent)
}

func (c *cellVisitor) Cell(ctx context.Context, event visitor.CellEvent) error {
	c.onCell(event)
	return nil
}

func identifiers(refs []*tsp.Reference) []uint64 {
	out := make([]uint64, len(refs))
	for i, r := range refs {
		out[i] = r.GetIdentifier()
	}
	return out
}

func equalTraces(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
