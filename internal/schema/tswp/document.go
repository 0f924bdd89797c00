package tswp

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// SectionArchive is one page-template section of a word-processor document:
// its background drawables and placeholder drawables, visited before the
// body storage.
type SectionArchive struct {
	BackgroundDrawables []*tsp.Reference
	Placeholders        []*tsp.Reference
}

func (s *SectionArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1, 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			if num == 1 {
				s.BackgroundDrawables = append(s.BackgroundDrawables, ref)
			} else {
				s.Placeholders = append(s.Placeholders, ref)
			}
			return n, nil
		}
		return 0, nil
	})
}

func (s *SectionArchive) Marshal() []byte {
	var out []byte
	for _, r := range s.BackgroundDrawables {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Marshal())
	}
	for _, r := range s.Placeholders {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Marshal())
	}
	return out
}

// DocumentArchive is the word-processor document anchor: the page-template
// sections, the body storage, and the floating (non-inline) drawables
// scattered across the document.
type DocumentArchive struct {
	Sections         []*SectionArchive
	Body             *tsp.Reference
	FloatingDrawables []*tsp.Reference
	DrawableOrder    *tsp.Reference
}

func (d *DocumentArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			s := &SectionArchive{}
			if err := s.Unmarshal(raw); err != nil {
				return 0, err
			}
			d.Sections = append(d.Sections, s)
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
			d.Body = ref
			return n, nil
		case 3:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			d.FloatingDrawables = append(d.FloatingDrawables, ref)
			return n, nil
		case 4:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			d.DrawableOrder = ref
			return n, nil
		}
		return 0, nil
	})
}

func (d *DocumentArchive) Marshal() []byte {
	var out []byte
	for _, s := range d.Sections {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, s.Marshal())
	}
	if d.Body != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, d.Body.Marshal())
	}
	for _, r := range d.FloatingDrawables {
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Marshal())
	}
	if d.DrawableOrder != nil {
		out = protowire.AppendTag(out, 4, protowire.BytesType)
		out = protowire.AppendBytes(out, d.DrawableOrder.Marshal())
	}
	return out
}
