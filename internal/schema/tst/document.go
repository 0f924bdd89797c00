package tst

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// SheetArchive is one spreadsheet sheet: its name and the drawables placed
// on it (including the tables themselves, which are drawables).
type SheetArchive struct {
	Name      *string
	Drawables []*tsp.Reference
}

func (s *SheetArchive) GetName() string {
	if s != nil && s.Name != nil {
		return *s.Name
	}
	return ""
}

func (s *SheetArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			s.Name = pbdecode.StringPtr(string(v))
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			s.Drawables = append(s.Drawables, ref)
			return n, nil
		}
		return 0, nil
	})
}

func (s *SheetArchive) Marshal() []byte {
	var out []byte
	if s.Name != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendString(out, *s.Name)
	}
	for _, r := range s.Drawables {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Marshal())
	}
	return out
}

// DocumentArchive is the spreadsheet document anchor: its sheets, in
// declaration order.
type DocumentArchive struct {
	Sheets []*tsp.Reference
}

func (d *DocumentArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			d.Sheets = append(d.Sheets, ref)
			return n, nil
		}
		return 0, nil
	})
}

func (d *DocumentArchive) Marshal() []byte {
	var out []byte
	for _, r := range d.Sheets {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Marshal())
	}
	return out
}
