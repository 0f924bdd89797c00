package tsd

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// MediaStyleArchive is one level of a media (image/movie/3D-object) style
// parent chain: border stroke and shadow properties.
type MediaStyleArchive struct {
	Parent      *tsp.Reference
	StrokeColor *tsp.Color
	StrokeWidth *float64
	HasShadow   *bool
}

func (m *MediaStyleArchive) GetParent() *tsp.Reference { return m.Parent }

func (m *MediaStyleArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			m.Parent = ref
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			col := &tsp.Color{}
			if err := col.Unmarshal(raw); err != nil {
				return 0, err
			}
			m.StrokeColor = col
			return n, nil
		case 3:
			v, n := pbdecode.Fixed64(b)
			f := fixed64ToFloat(v)
			m.StrokeWidth = &f
			return n, nil
		case 4:
			v, n := pbdecode.Varint(b)
			m.HasShadow = pbdecode.BoolPtr(v != 0)
			return n, nil
		}
		return 0, nil
	})
}

func (m *MediaStyleArchive) Marshal() []byte {
	var out []byte
	if m.Parent != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, m.Parent.Marshal())
	}
	if m.StrokeColor != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, m.StrokeColor.Marshal())
	}
	if m.StrokeWidth != nil {
		out = protowire.AppendTag(out, 3, protowire.Fixed64Type)
		out = protowire.AppendFixed64(out, floatToFixed64(*m.StrokeWidth))
	}
	if m.HasShadow != nil {
		out = protowire.AppendTag(out, 4, protowire.VarintType)
		x := uint64(0)
		if *m.HasShadow {
			x = 1
		}
		out = protowire.AppendVarint(out, x)
	}
	return out
}
