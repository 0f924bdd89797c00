package tswp

import (
	"math"

	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// CharacterStyleArchive is one level of a character-style parent chain.
// Every field is "has X" gated: nil means "not set at this level".
type CharacterStyleArchive struct {
	Parent        *tsp.Reference
	FontName      *string
	FontSize      *float32
	Bold          *bool
	Italic        *bool
	Underline     *bool
	Strikethrough *bool
	FontColor     *tsp.Color
}

func (c *CharacterStyleArchive) GetParent() *tsp.Reference { return c.Parent }

func (c *CharacterStyleArchive) Unmarshal(b []byte) error {
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
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			c.FontName = pbdecode.StringPtr(string(v))
			return n, nil
		case 3:
			v, n := pbdecode.Fixed32(b)
			f := math.Float32frombits(v)
			c.FontSize = &f
			return n, nil
		case 4:
			v, n := pbdecode.Varint(b)
			c.Bold = pbdecode.BoolPtr(v != 0)
			return n, nil
		case 5:
			v, n := pbdecode.Varint(b)
			c.Italic = pbdecode.BoolPtr(v != 0)
			return n, nil
		case 6:
			v, n := pbdecode.Varint(b)
			c.Underline = pbdecode.BoolPtr(v != 0)
			return n, nil
		case 7:
			v, n := pbdecode.Varint(b)
			c.Strikethrough = pbdecode.BoolPtr(v != 0)
			return n, nil
		case 8:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			col := &tsp.Color{}
			if err := col.Unmarshal(raw); err != nil {
				return 0, err
			}
			c.FontColor = col
			return n, nil
		}
		return 0, nil
	})
}

func (c *CharacterStyleArchive) Marshal() []byte {
	var out []byte
	if c.Parent != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, c.Parent.Marshal())
	}
	if c.FontName != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendString(out, *c.FontName)
	}
	if c.FontSize != nil {
		out = protowire.AppendTag(out, 3, protowire.Fixed32Type)
		out = protowire.AppendFixed32(out, math.Float32bits(*c.FontSize))
	}
	appendBool := func(num protowire.Number, v *bool) {
		if v == nil {
			return
		}
		out = protowire.AppendTag(out, num, protowire.VarintType)
		x := uint64(0)
		if *v {
			x = 1
		}
		out = protowire.AppendVarint(out, x)
	}
	appendBool(4, c.Bold)
	appendBool(5, c.Italic)
	appendBool(6, c.Underline)
	appendBool(7, c.Strikethrough)
	if c.FontColor != nil {
		out = protowire.AppendTag(out, 8, protowire.BytesType)
		out = protowire.AppendBytes(out, c.FontColor.Marshal())
	}
	return out
}
