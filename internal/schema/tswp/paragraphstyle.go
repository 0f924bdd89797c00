package tswp

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// Alignment mirrors the small enum of paragraph alignments.
type Alignment int32

const (
	AlignmentLeft Alignment = iota
	AlignmentRight
	AlignmentCenter
	AlignmentJustify
)

// ParagraphStyleArchive is one level of a paragraph-style parent chain.
type ParagraphStyleArchive struct {
	Parent                *tsp.Reference
	Alignment             *int32
	LeftIndent            *float32
	RightIndent           *float32
	SpaceBefore           *float32
	SpaceAfter            *float32
	ListStyle             *tsp.Reference
	DefaultCharacterStyle *tsp.Reference
}

func (p *ParagraphStyleArchive) GetParent() *tsp.Reference { return p.Parent }

func (p *ParagraphStyleArchive) Unmarshal(b []byte) error {
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
			p.Parent = ref
			return n, nil
		case 2:
			v, n := pbdecode.Varint(b)
			p.Alignment = pbdecode.Int32Ptr(int32(v))
			return n, nil
		case 3, 4, 5, 6:
			v, n := pbdecode.Fixed32(b)
			f := float32FromFixed(v)
			switch num {
			case 3:
				p.LeftIndent = &f
			case 4:
				p.RightIndent = &f
			case 5:
				p.SpaceBefore = &f
			case 6:
				p.SpaceAfter = &f
			}
			return n, nil
		case 7:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			p.ListStyle = ref
			return n, nil
		case 8:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			p.DefaultCharacterStyle = ref
			return n, nil
		}
		return 0, nil
	})
}

func (p *ParagraphStyleArchive) Marshal() []byte {
	var out []byte
	if p.Parent != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, p.Parent.Marshal())
	}
	if p.Alignment != nil {
		out = protowire.AppendTag(out, 2, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*p.Alignment))
	}
	appendF := func(num protowire.Number, v *float32) {
		if v == nil {
			return
		}
		out = protowire.AppendTag(out, num, protowire.Fixed32Type)
		out = protowire.AppendFixed32(out, float32ToFixed(*v))
	}
	appendF(3, p.LeftIndent)
	appendF(4, p.RightIndent)
	appendF(5, p.SpaceBefore)
	appendF(6, p.SpaceAfter)
	if p.ListStyle != nil {
		out = protowire.AppendTag(out, 7, protowire.BytesType)
		out = protowire.AppendBytes(out, p.ListStyle.Marshal())
	}
	if p.DefaultCharacterStyle != nil {
		out = protowire.AppendTag(out, 8, protowire.BytesType)
		out = protowire.AppendBytes(out, p.DefaultCharacterStyle.Marshal())
	}
	return out
}
