package traverse

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/tsd"
	"github.com/benedoc-inc/iworkdoc/visitor"
)

// pathValue flattens a normalized shape-path source into the visitor
// payload form: the bezier-backed variants keep their outline element
// list, the parametric ones carry kind and natural size only.
func pathValue(src *tsd.PathSource) *visitor.PathValue {
	out := &visitor.PathValue{Kind: visitor.PathKind(src.Kind)}
	switch src.Kind {
	case tsd.PathKindPoint:
		setNaturalSize(out, src.Point.NaturalSize)
	case tsd.PathKindScalar:
		setNaturalSize(out, src.Scalar.NaturalSize)
	case tsd.PathKindBezier:
		setNaturalSize(out, src.Bezier.NaturalSize)
		out.Elements = bezierElements(src.Bezier)
	case tsd.PathKindCallout:
		setNaturalSize(out, src.Callout.NaturalSize)
	case tsd.PathKindConnectionLine:
		if src.ConnectionLine.Bezier != nil {
			setNaturalSize(out, src.ConnectionLine.Bezier.NaturalSize)
			out.Elements = bezierElements(src.ConnectionLine.Bezier)
		}
	case tsd.PathKindEditableBezier:
		setNaturalSize(out, src.EditableBezier.NaturalSize)
		out.Elements = editableElements(src.EditableBezier)
	}
	return out
}

func setNaturalSize(out *visitor.PathValue, sz *tsd.Size) {
	if sz != nil {
		out.NaturalWidth, out.NaturalHeight = sz.Width, sz.Height
	}
}

func bezierElements(p *tsd.BezierPath) []visitor.PathElement {
	out := make([]visitor.PathElement, 0, len(p.Elements))
	for _, e := range p.Elements {
		el := visitor.PathElement{}
		if e.Kind != nil {
			el.Kind = visitor.PathElementKind(*e.Kind)
		}
		for _, pt := range e.Points {
			if pt != nil {
				el.Points = append(el.Points, visitor.PathPointValue{X: pt.X, Y: pt.Y})
			}
		}
		out = append(out, el)
	}
	return out
}

// editableElements converts an editable bezier's control-point node
// triples into a plain outline: a node pair with no control points in
// between becomes a lineTo, otherwise a curveTo through the outgoing and
// incoming controls (falling back to the adjacent node where a control is
// unset).
func editableElements(p *tsd.EditableBezierPath) []visitor.PathElement {
	var out []visitor.PathElement
	for _, sub := range p.Subpaths {
		if sub == nil || len(sub.Nodes) == 0 {
			continue
		}
		prev := sub.Nodes[0]
		out = append(out, visitor.PathElement{
			Kind:   visitor.PathMoveTo,
			Points: []visitor.PathPointValue{pointValue(prev.Node)},
		})
		for _, node := range sub.Nodes[1:] {
			out = append(out, editableSegment(prev, node))
			prev = node
		}
		if sub.Closed != nil && *sub.Closed {
			out = append(out, editableSegment(prev, sub.Nodes[0]))
			out = append(out, visitor.PathElement{Kind: visitor.PathCloseSubpath})
		}
	}
	return out
}

func editableSegment(from, to *tsd.EditableNode) visitor.PathElement {
	if from.OutControl == nil && to.InControl == nil {
		return visitor.PathElement{
			Kind:   visitor.PathLineTo,
			Points: []visitor.PathPointValue{pointValue(to.Node)},
		}
	}
	c1 := from.OutControl
	if c1 == nil {
		c1 = from.Node
	}
	c2 := to.InControl
	if c2 == nil {
		c2 = to.Node
	}
	return visitor.PathElement{
		Kind:   visitor.PathCurveTo,
		Points: []visitor.PathPointValue{pointValue(c1), pointValue(c2), pointValue(to.Node)},
	}
}

func pointValue(p *tsd.Point) visitor.PathPointValue {
	if p == nil {
		return visitor.PathPointValue{}
	}
	return visitor.PathPointValue{X: p.X, Y: p.Y}
}
