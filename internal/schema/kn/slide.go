// Package kn holds the presentation (Keynote) archive messages. Slide
// identity and ordering come from the package metadata's component
// list; this package only decodes each slide's own content.
package kn

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// SlideArchive is one slide: its drawables and page bounds.
type SlideArchive struct {
	Drawables []*tsp.Reference
	Bounds    *tsd.Size
}

func (s *SlideArchive) Unmarshal(b []byte) error {
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
			s.Drawables = append(s.Drawables, ref)
			return n, nil
		case 2:
			v, n := pbdecode.Fixed64(b)
			if s.Bounds == nil {
				s.Bounds = &tsd.Size{}
			}
			s.Bounds.Width = float64FromBits(v)
			return n, nil
		case 3:
			v, n := pbdecode.Fixed64(b)
			if s.Bounds == nil {
				s.Bounds = &tsd.Size{}
			}
			s.Bounds.Height = float64FromBits(v)
			return n, nil
		}
		return 0, nil
	})
}

func (s *SlideArchive) Marshal() []byte {
	var out []byte
	for _, r := range s.Drawables {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, r.Marshal())
	}
	if s.Bounds != nil {
		out = protowire.AppendTag(out, 2, protowire.Fixed64Type)
		out = protowire.AppendFixed64(out, float64ToBits(s.Bounds.Width))
		out = protowire.AppendTag(out, 3, protowire.Fixed64Type)
		out = protowire.AppendFixed64(out, float64ToBits(s.Bounds.Height))
	}
	return out
}
