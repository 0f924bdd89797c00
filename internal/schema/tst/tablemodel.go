// Package tst holds the spreadsheet/table archive messages: the table
// model, its tiled cell storage, the side tables (strings, rich text,
// styles, number formats) and the stroke sidecar.
package tst

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// TileRow is one row's packed cell-storage buffer plus its per-column
// offset array.
type TileRow struct {
	Buffer  []byte
	Offsets []uint16
}

func (r *TileRow) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			r.Buffer = append([]byte(nil), v...)
			return n, nil
		case 2:
			v, n := pbdecode.Varint(b)
			r.Offsets = append(r.Offsets, uint16(v))
			return n, nil
		}
		return 0, nil
	})
}

func (r *TileRow) Marshal() []byte {
	var out []byte
	if r.Buffer != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Buffer)
	}
	for _, o := range r.Offsets {
		out = protowire.AppendTag(out, 2, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(o))
	}
	return out
}

// TileArchive is one row-range slice of a table's cell storage: the tile
// index within the table and its rows in order.
type TileArchive struct {
	TileIndex *uint32
	Rows      []*TileRow
}

func (t *TileArchive) GetTileIndex() uint32 {
	if t != nil && t.TileIndex != nil {
		return *t.TileIndex
	}
	return 0
}

func (t *TileArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			t.TileIndex = pbdecode.Uint32Ptr(uint32(v))
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			row := &TileRow{}
			if err := row.Unmarshal(raw); err != nil {
				return 0, err
			}
			t.Rows = append(t.Rows, row)
			return n, nil
		}
		return 0, nil
	})
}

func (t *TileArchive) Marshal() []byte {
	var out []byte
	if t.TileIndex != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*t.TileIndex))
	}
	for _, row := range t.Rows {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, row.Marshal())
	}
	return out
}

// TableModelArchive is the two-dimensional table structure: row/column
// counts, header/footer counts, and references to its tiles and side
// tables.
type TableModelArchive struct {
	NumRows            *uint32
	NumCols            *uint32
	NumHeaderRows      *uint32
	NumHeaderCols      *uint32
	NumFooterRows      *uint32
	RowStride          *uint32
	Tiles              []*tsp.Reference
	StringTable        *tsp.Reference
	RichTextTable      *tsp.Reference
	CellStyleTable     *tsp.Reference
	TextStyleTable     *tsp.Reference
	NumberFormatTable  *tsp.Reference
	CurrencyFormatTable *tsp.Reference
	DateFormatTable    *tsp.Reference
	DurationFormatTable *tsp.Reference
	StrokeSidecar      *tsp.Reference
}

func (m *TableModelArchive) GetNumRows() uint32 {
	if m != nil && m.NumRows != nil {
		return *m.NumRows
	}
	return 0
}

func (m *TableModelArchive) GetNumCols() uint32 {
	if m != nil && m.NumCols != nil {
		return *m.NumCols
	}
	return 0
}

func (m *TableModelArchive) GetRowStride() uint32 {
	if m != nil && m.RowStride != nil && *m.RowStride > 0 {
		return *m.RowStride
	}
	return 256
}

func (m *TableModelArchive) Unmarshal(b []byte) error {
	readRef := func(b []byte) (*tsp.Reference, error) {
		ref := &tsp.Reference{}
		if err := ref.Unmarshal(b); err != nil {
			return nil, err
		}
		return ref, nil
	}
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1, 2, 3, 4, 5, 6:
			v, n := pbdecode.Varint(b)
			u := pbdecode.Uint32Ptr(uint32(v))
			switch num {
			case 1:
				m.NumRows = u
			case 2:
				m.NumCols = u
			case 3:
				m.NumHeaderRows = u
			case 4:
				m.NumHeaderCols = u
			case 5:
				m.NumFooterRows = u
			case 6:
				m.RowStride = u
			}
			return n, nil
		case 7:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref, err := readRef(raw)
			if err != nil {
				return 0, err
			}
			m.Tiles = append(m.Tiles, ref)
			return n, nil
		case 8, 9, 10, 11, 12, 13, 14, 15, 16:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref, err := readRef(raw)
			if err != nil {
				return 0, err
			}
			switch num {
			case 8:
				m.StringTable = ref
			case 9:
				m.RichTextTable = ref
			case 10:
				m.CellStyleTable = ref
			case 11:
				m.TextStyleTable = ref
			case 12:
				m.NumberFormatTable = ref
			case 13:
				m.CurrencyFormatTable = ref
			case 14:
				m.DateFormatTable = ref
			case 15:
				m.DurationFormatTable = ref
			case 16:
				m.StrokeSidecar = ref
			}
			return n, nil
		}
		return 0, nil
	})
}

func (m *TableModelArchive) Marshal() []byte {
	var out []byte
	appendU := func(num protowire.Number, v *uint32) {
		if v == nil {
			return
		}
		out = protowire.AppendTag(out, num, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*v))
	}
	appendU(1, m.NumRows)
	appendU(2, m.NumCols)
	appendU(3, m.NumHeaderRows)
	appendU(4, m.NumHeaderCols)
	appendU(5, m.NumFooterRows)
	appendU(6, m.RowStride)
	for _, t := range m.Tiles {
		out = protowire.AppendTag(out, 7, protowire.BytesType)
		out = protowire.AppendBytes(out, t.Marshal())
	}
	appendRef := func(num protowire.Number, r *tsp.Reference) {
		if r == nil {
			return
		}
		out = protowire.AppendTag(out, num, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Marshal())
	}
	appendRef(8, m.StringTable)
	appendRef(9, m.RichTextTable)
	appendRef(10, m.CellStyleTable)
	appendRef(11, m.TextStyleTable)
	appendRef(12, m.NumberFormatTable)
	appendRef(13, m.CurrencyFormatTable)
	appendRef(14, m.DateFormatTable)
	appendRef(15, m.DurationFormatTable)
	appendRef(16, m.StrokeSidecar)
	return out
}
