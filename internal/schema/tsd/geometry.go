// Package tsd holds the drawable archive messages shared across word
// processing, spreadsheet and presentation documents: geometry, shapes,
// groups, images, media, 3D objects, charts, z-order and shape paths.
package tsd

import (
	"math"

	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"google.golang.org/protobuf/encoding/protowire"
)

// Point is a 2D coordinate.
type Point struct{ X, Y float64 }

// Size is a 2D extent.
type Size struct{ Width, Height float64 }

// GeometryArchive is a drawable's position, size and rotation.
type GeometryArchive struct {
	Position     *Point
	Sz           *Size
	AngleRadians *float64
}

func (g *GeometryArchive) Position2D() Point {
	if g == nil || g.Position == nil {
		return Point{}
	}
	return *g.Position
}

func (g *GeometryArchive) SizeValue() Size {
	if g == nil || g.Sz == nil {
		return Size{}
	}
	return *g.Sz
}

// Center returns the geometry's frame center, used for spatial reading
// order.
func (g *GeometryArchive) Center() Point {
	pos := g.Position2D()
	sz := g.SizeValue()
	return Point{X: pos.X + sz.Width/2, Y: pos.Y + sz.Height/2}
}

func (g *GeometryArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1, 2:
			v, n := pbdecode.Fixed64(b)
			f := math.Float64frombits(v)
			if g.Position == nil {
				g.Position = &Point{}
			}
			if num == 1 {
				g.Position.X = f
			} else {
				g.Position.Y = f
			}
			return n, nil
		case 3, 4:
			v, n := pbdecode.Fixed64(b)
			f := math.Float64frombits(v)
			if g.Sz == nil {
				g.Sz = &Size{}
			}
			if num == 3 {
				g.Sz.Width = f
			} else {
				g.Sz.Height = f
			}
			return n, nil
		case 5:
			v, n := pbdecode.Fixed64(b)
			f := math.Float64frombits(v)
			g.AngleRadians = &f
			return n, nil
		}
		return 0, nil
	})
}

func (g *GeometryArchive) Marshal() []byte {
	var out []byte
	appendF := func(num protowire.Number, v float64) {
		out = protowire.AppendTag(out, num, protowire.Fixed64Type)
		out = protowire.AppendFixed64(out, math.Float64bits(v))
	}
	if g.Position != nil {
		appendF(1, g.Position.X)
		appendF(2, g.Position.Y)
	}
	if g.Sz != nil {
		appendF(3, g.Sz.Width)
		appendF(4, g.Sz.Height)
	}
	if g.AngleRadians != nil {
		appendF(5, *g.AngleRadians)
	}
	return out
}
