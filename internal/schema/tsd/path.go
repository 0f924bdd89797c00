package tsd

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"google.golang.org/protobuf/encoding/protowire"
)

// PathKind discriminates the shape-path archive variants.
type PathKind int32

const (
	PathKindPoint PathKind = iota + 1
	PathKindScalar
	PathKindBezier
	PathKindCallout
	PathKindConnectionLine
	PathKindEditableBezier
)

// BezierElementKind is the element tag of a BezierPath.
type BezierElementKind int32

const (
	BezierMoveTo BezierElementKind = iota
	BezierLineTo
	BezierQuadCurveTo
	BezierCurveTo
	BezierCloseSubpath
)

// ConnectionLineKind distinguishes the two connection-line routing modes.
type ConnectionLineKind int32

const (
	ConnectionQuadratic ConnectionLineKind = iota
	ConnectionOrthogonal
)

// EditableNodeKind is the corner behavior of an editable-bezier node.
type EditableNodeKind int32

const (
	NodeSharp EditableNodeKind = iota
	NodeBezier
	NodeSmooth
)

// PathElement is one element of a BezierPath: moveTo/lineTo take 1 point,
// quadCurveTo takes 2, curveTo takes 3, closeSubpath takes none.
type PathElement struct {
	Kind   *int32
	Points []*Point
}

func (e *PathElement) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Varint(b)
			e.Kind = pbdecode.Int32Ptr(int32(v))
			return n, nil
		case 2:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			p, err := unmarshalPoint(raw)
			if err != nil {
				return 0, err
			}
			e.Points = append(e.Points, p)
			return n, nil
		}
		return 0, nil
	})
}

// BezierPath is an ordered list of path elements plus the shape's natural
// (unscaled) size.
type BezierPath struct {
	Elements    []*PathElement
	NaturalSize *Size
}

func (p *BezierPath) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			e := &PathElement{}
			if err := e.Unmarshal(raw); err != nil {
				return 0, err
			}
			p.Elements = append(p.Elements, e)
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
			p.NaturalSize = sz
			return n, nil
		}
		return 0, nil
	})
}

// PointPath is the point-based variant (arrows, stars, plus signs): a type
// tag, one defining point and the shape's natural size.
type PointPath struct {
	ShapeType   *int32
	DefiningPoint *Point
	NaturalSize *Size
}

// ScalarPath is the scalar-based variant (rounded rectangle, regular
// polygon, chevron): a type tag, one scalar parameter, natural size and a
// continuous-curve flag.
type ScalarPath struct {
	ShapeType       *int32
	Scalar          *float64
	NaturalSize     *Size
	ContinuousCurve *bool
}

// CalloutPath describes a callout bubble's tail.
type CalloutPath struct {
	NaturalSize  *Size
	TailPosition *Point
	TailSize     *Size
	CornerRadius *float64
	CenterTail   *bool
}

// ConnectionLinePath is a line routed between two shapes.
type ConnectionLinePath struct {
	Kind        *int32
	Bezier      *BezierPath
	OutsetStart *float64
	OutsetEnd   *float64
}

// EditableNode is one control-point triple of an editable bezier subpath.
type EditableNode struct {
	InControl  *Point
	Node       *Point
	OutControl *Point
	NodeKind   *int32
}

// EditableSubpath is a list of nodes plus whether the subpath is closed.
type EditableSubpath struct {
	Nodes  []*EditableNode
	Closed *bool
}

// EditableBezierPath is a free-form, user-editable path: a list of
// subpaths plus natural size.
type EditableBezierPath struct {
	Subpaths    []*EditableSubpath
	NaturalSize *Size
}

// PathSource is the normalized, decoded form of a shape-path archive: the
// discriminant kind plus the one populated variant.
type PathSource struct {
	Kind           PathKind
	Point          *PointPath
	Scalar         *ScalarPath
	Bezier         *BezierPath
	Callout        *CalloutPath
	ConnectionLine *ConnectionLinePath
	EditableBezier *EditableBezierPath
}

func unmarshalPoint(b []byte) (*Point, error) {
	p := &Point{}
	err := pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Fixed64(b)
			p.X = fixed64ToFloat(v)
			return n, nil
		case 2:
			v, n := pbdecode.Fixed64(b)
			p.Y = fixed64ToFloat(v)
			return n, nil
		}
		return 0, nil
	})
	return p, err
}

func unmarshalSize(b []byte) (*Size, error) {
	s := &Size{}
	err := pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Fixed64(b)
			s.Width = fixed64ToFloat(v)
			return n, nil
		case 2:
			v, n := pbdecode.Fixed64(b)
			s.Height = fixed64ToFloat(v)
			return n, nil
		}
		return 0, nil
	})
	return s, err
}
