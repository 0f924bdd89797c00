package tsd

import (
	"github.com/benedoc-inc/iworkdoc/internal/schema/pbdecode"
	"google.golang.org/protobuf/encoding/protowire"
)

// ChartSeries is one data series of a chart's grid data.
type ChartSeries struct {
	Name   *string
	Values []float64
}

func (s *ChartSeries) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			s.Name = pbdecode.StringPtr(string(v))
			return n, nil
		case 2:
			v, n := pbdecode.Fixed64(b)
			s.Values = append(s.Values, fixed64ToFloat(v))
			return n, nil
		}
		return 0, nil
	})
}

// ChartArchive is a floating chart drawable: grid data (series), axis
// labels and legend text, carried as a single event. No background fill
// is decoded.
type ChartArchive struct {
	Info
	Series     []*ChartSeries
	CategoryAxisLabels []string
	ValueAxisTitle     *string
	LegendEntries      []string
}

func (c *ChartArchive) Unmarshal(b []byte) error {
	return pbdecode.Walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if n, handled, err := c.unmarshalField(num, typ, b); handled {
			return n, err
		}
		switch num {
		case 1:
			raw, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			s := &ChartSeries{}
			if err := s.Unmarshal(raw); err != nil {
				return 0, err
			}
			c.Series = append(c.Series, s)
			return n, nil
		case 2:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			c.CategoryAxisLabels = append(c.CategoryAxisLabels, string(v))
			return n, nil
		case 3:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			c.ValueAxisTitle = pbdecode.StringPtr(string(v))
			return n, nil
		case 4:
			v, n := pbdecode.Bytes(b)
			if n < 0 {
				return 0, nil
			}
			c.LegendEntries = append(c.LegendEntries, string(v))
			return n, nil
		}
		return 0, nil
	})
}
