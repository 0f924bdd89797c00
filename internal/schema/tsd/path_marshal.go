package tsd

import "google.golang.org/protobuf/encoding/protowire"

func marshalPoint(p *Point) []byte {
	var out []byte
	out = protowire.AppendTag(out, 1, protowire.Fixed64Type)
	out = protowire.AppendFixed64(out, floatToFixed64(p.X))
	out = protowire.AppendTag(out, 2, protowire.Fixed64Type)
	out = protowire.AppendFixed64(out, floatToFixed64(p.Y))
	return out
}

func marshalSize(s *Size) []byte {
	var out []byte
	out = protowire.AppendTag(out, 1, protowire.Fixed64Type)
	out = protowire.AppendFixed64(out, floatToFixed64(s.Width))
	out = protowire.AppendTag(out, 2, protowire.Fixed64Type)
	out = protowire.AppendFixed64(out, floatToFixed64(s.Height))
	return out
}

func (e *PathElement) Marshal() []byte {
	var out []byte
	if e.Kind != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*e.Kind))
	}
	for _, p := range e.Points {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalPoint(p))
	}
	return out
}

func (p *BezierPath) Marshal() []byte {
	var out []byte
	for _, e := range p.Elements {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, e.Marshal())
	}
	if p.NaturalSize != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalSize(p.NaturalSize))
	}
	return out
}

func (p *PointPath) Marshal() []byte {
	var out []byte
	if p.ShapeType != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*p.ShapeType))
	}
	if p.DefiningPoint != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalPoint(p.DefiningPoint))
	}
	if p.NaturalSize != nil {
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalSize(p.NaturalSize))
	}
	return out
}

func (s *ScalarPath) Marshal() []byte {
	var out []byte
	if s.ShapeType != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*s.ShapeType))
	}
	if s.Scalar != nil {
		out = protowire.AppendTag(out, 2, protowire.Fixed64Type)
		out = protowire.AppendFixed64(out, floatToFixed64(*s.Scalar))
	}
	if s.NaturalSize != nil {
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalSize(s.NaturalSize))
	}
	if s.ContinuousCurve != nil {
		out = protowire.AppendTag(out, 4, protowire.VarintType)
		x := uint64(0)
		if *s.ContinuousCurve {
			x = 1
		}
		out = protowire.AppendVarint(out, x)
	}
	return out
}

func (c *CalloutPath) Marshal() []byte {
	var out []byte
	if c.NaturalSize != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalSize(c.NaturalSize))
	}
	if c.TailPosition != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalPoint(c.TailPosition))
	}
	if c.TailSize != nil {
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalSize(c.TailSize))
	}
	if c.CornerRadius != nil {
		out = protowire.AppendTag(out, 4, protowire.Fixed64Type)
		out = protowire.AppendFixed64(out, floatToFixed64(*c.CornerRadius))
	}
	if c.CenterTail != nil {
		out = protowire.AppendTag(out, 5, protowire.VarintType)
		x := uint64(0)
		if *c.CenterTail {
			x = 1
		}
		out = protowire.AppendVarint(out, x)
	}
	return out
}

func (cl *ConnectionLinePath) Marshal() []byte {
	var out []byte
	if cl.Kind != nil {
		out = protowire.AppendTag(out, 1, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*cl.Kind))
	}
	if cl.Bezier != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, cl.Bezier.Marshal())
	}
	if cl.OutsetStart != nil {
		out = protowire.AppendTag(out, 3, protowire.Fixed64Type)
		out = protowire.AppendFixed64(out, floatToFixed64(*cl.OutsetStart))
	}
	if cl.OutsetEnd != nil {
		out = protowire.AppendTag(out, 4, protowire.Fixed64Type)
		out = protowire.AppendFixed64(out, floatToFixed64(*cl.OutsetEnd))
	}
	return out
}

func (n *EditableNode) Marshal() []byte {
	var out []byte
	if n.InControl != nil {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalPoint(n.InControl))
	}
	if n.Node != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalPoint(n.Node))
	}
	if n.OutControl != nil {
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalPoint(n.OutControl))
	}
	if n.NodeKind != nil {
		out = protowire.AppendTag(out, 4, protowire.VarintType)
		out = protowire.AppendVarint(out, uint64(*n.NodeKind))
	}
	return out
}

func (s *EditableSubpath) Marshal() []byte {
	var out []byte
	for _, n := range s.Nodes {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, n.Marshal())
	}
	if s.Closed != nil {
		out = protowire.AppendTag(out, 2, protowire.VarintType)
		x := uint64(0)
		if *s.Closed {
			x = 1
		}
		out = protowire.AppendVarint(out, x)
	}
	return out
}

func (e *EditableBezierPath) Marshal() []byte {
	var out []byte
	for _, sp := range e.Subpaths {
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, sp.Marshal())
	}
	if e.NaturalSize != nil {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendBytes(out, marshalSize(e.NaturalSize))
	}
	return out
}
