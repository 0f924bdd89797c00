package tsd

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsp"
	"google.golang.org/protobuf/encoding/protowire"
)

// Info is the common envelope every concrete drawable archive embeds:
// geometry plus an optional name.
type Info struct {
	Geometry *GeometryArchive
	Name     *string
}

func (i *Info) GetName() string {
	if i != nil && i.Name != nil {
		return *i.Name
	}
	return ""
}

func (i *Info) unmarshalField(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
	switch num {
	case 100:
		raw, n := pbdecode.Bytes(b)
		if n < 0 {
			return 0, true, nil
		}
		g := &GeometryArchive{}
		if err := g.Unmarshal(raw); err != nil {
			return 0, true, err
		}
		i.Geometry = g
		return n, true, nil
	case 101:
		v, n := pbdecode.Bytes(b)
		if n < 0 {
			return 0, true, nil
		}
		i.Name = pbdecode.StringPtr(string(v))
		return n, true, nil
	}
	return 0, false, nil
}

func (i *Info) marshal(out []byte) []byte {
	if i.Geometry != nil {
		out = protowire.AppendTag(out, 100, protowire.BytesType)
		out = protowire.AppendBytes(out, i.Geometry.Marshal())
	}
	if i.Name != nil {
		out = protowire.AppendTag(out, 101, protowire.BytesType)
		out = protowire.AppendString(out, *i.Name)
	}
	return out
}

// ShapeArchive is a drawable carrying text storage (a callout, text box, or
// autoshape with a caption). Text is nil for a pure geometric shape.
type ShapeArchive struct {
	Info
	Text *tsp.Reference
	Path *tsp.Reference
}

func (s *ShapeArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, handled, err := s.unmarshalField(num, typ, b); handled {
			return n, err
		}
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
			s.Text = ref
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
			s.Path = ref
			return n, nil
		}
		return 0, nil
	})
}

func (s *ShapeArchive) Marshal() []byte {
	out := s.Info.marshal(nil)
	if s.Text != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, s.Text.Marshal())
	}
	if s.Path != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, s.Path.Marshal())
	}
	return out
}

// GroupArchive is a drawable grouping other drawables.
type GroupArchive struct {
	Info
	Children []*tsp.Reference
}

func (g *GroupArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, handled, err := g.unmarshalField(num, typ, b); handled {
			return n, err
		}
		if num == 1 {
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			ref := &tsp.Reference{}
			if err := ref.Unmarshal(raw); err != nil {
				return 0, err
			}
			g.Children = append(g.Children, ref)
			return n, nil
		}
		return 0, nil
	})
}

func (g *GroupArchive) Marshal() []byte {
	out := g.Info.marshal(nil)
	for _, c := range g.Children {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, c.Marshal())
	}
	return out
}

// PlaceholderArchive is a page-template placeholder (e.g. a title or body
// placeholder on a slide master).
type PlaceholderArchive struct {
	Info
}

func (p *PlaceholderArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, handled, err := p.unmarshalField(num, typ, b); handled {
			return n, err
		}
		return 0, nil
	})
}

func (p *PlaceholderArchive) Marshal() []byte { return p.Info.marshal(nil) }
