package tst

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"google.golang.org/protobuf/encoding/protowire"
)

// StrokeRun is one border run in the stroke sidecar: it covers
// [StartIndex, StartIndex+Length) along a row or column, with a priority
// used to resolve overlapping runs.
type StrokeRun struct {
	StartIndex *uint32
	Length     *uint32
	Priority   *uint32
	Width      *float64
}

func (r *StrokeRun) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1, 2, 3:
			v, n := pbdecode.Varint(b)
			u := pbdecode.Uint32Ptr(uint32(v))
			switch num {
			case 1:
				r.StartIndex = u
			case 2:
				r.Length = u
			case 3:
				r.Priority = u
			}
			return n, nil
		case 4:
			v, n := pbdecode.Fixed64(b)
			f := fixed64ToFloat(v)
			r.Width = &f
			return n, nil
		}
		return 0, nil
	})
}

func (r *StrokeRun) Marshal() []byte {
	var out []byte
	appendU := func(num protowire.Number, v *uint32) {
		if v == nil {
			return
		}
		out = protowire.AppendTag(out, num, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*v))
	}
	appendU(1, r.StartIndex)
	appendU(2, r.Length)
	appendU(3, r.Priority)
	if r.Width != nil {
		out = protowire.AppendTag(out, 4, protowire.Fixed64Type)
		out = protowire.AppendFixed64(out, floatToFixed64(*r.Width))
	}
	return out
}

// StrokeSidecar carries a table's cell borders as overlapping runs per row
// and column.
type StrokeSidecar struct {
	RowRuns []*StrokeRun
	ColRuns []*StrokeRun
}

func (s *StrokeSidecar) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1, 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			run := &StrokeRun{}
			if err := run.Unmarshal(raw); err != nil {
				return 0, err
			}
			if num == 1 {
				s.RowRuns = append(s.RowRuns, run)
			} else {
				s.ColRuns = append(s.ColRuns, run)
			}
			return n, nil
		}
		return 0, nil
	})
}

func (s *StrokeSidecar) Marshal() []byte {
	var out []byte
	for _, r := range s.RowRuns {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Marshal())
	}
	for _, r := range s.ColRuns {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Marshal())
	}
	return out
}
