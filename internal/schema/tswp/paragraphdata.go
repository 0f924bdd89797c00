package tswp

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"google.golang.org/protobuf/encoding/protowire"
)

// ParagraphDataArchive is the small record a storage's paragraph-data
// attribute table points at: the paragraph's list nesting level.
type ParagraphDataArchive struct {
	Level *uint32
}

func (p *ParagraphDataArchive) GetLevel() uint32 {
	if p != nil && p.Level != nil {
		return *p.Level
	}
	return 0
}

func (p *ParagraphDataArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 {
			v, n := pbdecode.Varint(b)
			p.Level = pbdecode.Uint32Ptr(uint32(v))
			return n, nil
		}
		return 0, nil
	})
}

func (p *ParagraphDataArchive) Marshal() []byte {
	var out []byte
	if p.Level != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*p.Level))
	}
	return out
}
