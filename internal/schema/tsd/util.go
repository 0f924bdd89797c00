package tsd

import (
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

func fixed64ToFloat(b uint64) float64  { return math.Float64frombits(b) }
func floatToFixed64(v float64) uint64 { return math.Float64bits(v) }

// Marshal encodes the chart archive. Used by tests to build synthetic
// chart records.
func (c *ChartArchive) Marshal() []byte {
	out := c.Info.marshal(nil)
	for _, s := range c.Series {
		var sb []byte
		if s.Name != nil {
			sb = protowire.AppendTag(sb, 1, protowire.BytesType)
			sb = protowire.AppendString(sb, *s.Name)
		}
		for _, v := range s.Values {
			sb = protowire.AppendTag(sb, 2, protowire.Fixed64Type)
			sb = protowire.AppendFixed64(sb, floatToFixed64(v))
		}
		out = protowire.AppendTag(out, 1, protowire.BytesType)
		out = protowire.AppendBytes(out, sb)
	}
	for _, l := range c.CategoryAxisLabels {
		out = protowire.AppendTag(out, 2, protowire.BytesType)
		out = protowire.AppendString(out, l)
	}
	if c.ValueAxisTitle != nil {
		out = protowire.AppendTag(out, 3, protowire.BytesType)
		out = protowire.AppendString(out, *c.ValueAxisTitle)
	}
	for _, l := range c.LegendEntries {
		out = protowire.AppendTag(out, 4, protowire.BytesType)
		out = protowire.AppendString(out, l)
	}
	return out
}
