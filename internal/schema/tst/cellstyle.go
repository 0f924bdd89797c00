package tst

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// CellStyleArchive is one level of a cell-style parent chain: fill color
// and text alignment. No border flags are decoded.
type CellStyleArchive struct {
	Parent     *tsp.Reference
	FillColor  *tsp.Color
	Alignment  *int32
}

func (c *CellStyleArchive) GetParent() *tsp.Reference { return c.Parent }

func (c *CellStyleArchive) Unmarshal(b []byte) error {
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
			c.Parent = ref
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
			c.FillColor = col
			return n, nil
		case 3:
			v, n := pbdecode.Varint(b)
			c.Alignment = pbdecode.Int32Ptr(int32(v))
			return n, nil
		}
		return 0, nil
	})
}

func (c *CellStyleArchive) Marshal() []byte {
	var out []byte
	if c.Parent != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, c.Parent.Marshal())
	}
	if c.FillColor != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, c.FillColor.Marshal())
	}
	if c.Alignment != nil {
		out = protowire.AppendTag(out, 3, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*c.Alignment))
	}
	return out
}
