package tsp

import (
	"math"

	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"google.golang.org/protobuf/encoding/protowire"
)

// Color is a normalized RGBA color, shared by character, cell and media
// styles.
type Color struct {
	Red, Green, Blue, Alpha *float32
}

func (c *Color) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1, 2, 3, 4:
			v, n := pbdecode.Fixed32(b)
			f := math.Float32frombits(v)
			switch num {
			case 1:
				c.Red = &f
			case 2:
				c.Green = &f
			case 3:
				c.Blue = &f
			case 4:
				c.Alpha = &f
			}
			return n, nil
		}
		return 0, nil
	})
}

func (c *Color) Marshal() []byte {
	var out []byte
	appendF := func(num protowire.Number, v *float32) {
		if v == nil {
			return
		}
		out = protowire.AppendTag(out, num, protowire.Fixed32Type)
		out = protowire.AppendFixed32(out, math.Float32bits(*v))
	}
	appendF(1, c.Red)
	appendF(2, c.Green)
	appendF(3, c.Blue)
	appendF(4, c.Alpha)
	return out
}
