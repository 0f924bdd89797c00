package tsd

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"google.golang.org/protobuf/encoding/protowire"
)

func (p *PointPath) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			p.ShapeType = pbdecode.Int32Ptr(int32(v))
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			pt, err := unmarshalPoint(raw)
			if err != nil {
				return 0, err
			}
			p.DefiningPoint = pt
			return n, nil
		case 3:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			sz, err := unmarshalSize(raw)
			if err != nil {
				return 0, err
			}
			p.NaturalSize = sz
			return n, nil
		}
		return 0, nil
	})
}

func (s *ScalarPath) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			s.ShapeType = pbdecode.Int32Ptr(int32(v))
			return n, nil
		case 2:
			v, n := pbdecode.Fixed64(b)
			f := fixed64ToFloat(v)
			s.Scalar = &f
			return n, nil
		case 3:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			sz, err := unmarshalSize(raw)
			if err != nil {
				return 0, err
			}
			s.NaturalSize = sz
			return n, nil
		case 4:
			v, n := pbdecode.Varint(b)
			s.ContinuousCurve = pbdecode.BoolPtr(v != 0)
			return n, nil
		}
		return 0, nil
	})
}

func (c *CalloutPath) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			sz, err := unmarshalSize(raw)
			if err != nil {
				return 0, err
			}
			c.NaturalSize = sz
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			pt, err := unmarshalPoint(raw)
			if err != nil {
				return 0, err
			}
			c.TailPosition = pt
			return n, nil
		case 3:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			sz, err := unmarshalSize(raw)
			if err != nil {
				return 0, err
			}
			c.TailSize = sz
			return n, nil
		case 4:
			v, n := pbdecode.Fixed64(b)
			f := fixed64ToFloat(v)
			c.CornerRadius = &f
			return n, nil
		case 5:
			v, n := pbdecode.Varint(b)
			c.CenterTail = pbdecode.BoolPtr(v != 0)
			return n, nil
		}
		return 0, nil
	})
}

func (cl *ConnectionLinePath) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			cl.Kind = pbdecode.Int32Ptr(int32(v))
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			bp := &BezierPath{}
			if err := bp.Unmarshal(raw); err != nil {
				return 0, err
			}
			cl.Bezier = bp
			return n, nil
		case 3:
			v, n := pbdecode.Fixed64(b)
			f := fixed64ToFloat(v)
			cl.OutsetStart = &f
			return n, nil
		case 4:
			v, n := pbdecode.Fixed64(b)
			f := fixed64ToFloat(v)
			cl.OutsetEnd = &f
			return n, nil
		}
		return 0, nil
	})
}

func (n *EditableNode) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1, 2, 3:
			raw, nn := pbdecode.Bytes(b)
			if nn < 0 {
				return 0, nil
			}
			pt, err := unmarshalPoint(raw)
			if err != nil {
				return 0, err
			}
			switch num {
			case 1:
				n.InControl = pt
			case 2:
				n.Node = pt
			case 3:
				n.OutControl = pt
			}
			return nn, nil
		case 4:
			v, nn := pbdecode.Varint(b)
			n.NodeKind = pbdecode.Int32Ptr(int32(v))
			return nn, nil
		}
		return 0, nil
	})
}

func (s *EditableSubpath) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			node := &EditableNode{}
			if err := node.Unmarshal(raw); err != nil {
				return 0, err
			}
			s.Nodes = append(s.Nodes, node)
			return n, nil
		case 2:
			v, n := pbdecode.Varint(b)
			s.Closed = pbdecode.BoolPtr(v != 0)
			return n, nil
		}
		return 0, nil
	})
}

func (e *EditableBezierPath) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			sp := &EditableSubpath{}
			if err := sp.Unmarshal(raw); err != nil {
				return 0, err
			}
			e.Subpaths = append(e.Subpaths, sp)
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			sz, err := unmarshalSize(raw)
			if err != nil {
				return 0, err
			}
			e.NaturalSize = sz
			return n, nil
		}
		return 0, nil
	})
}
