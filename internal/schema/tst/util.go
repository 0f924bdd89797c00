package tst

import "math"

func fixed64ToFloat(b uint64) float64  { return math.Float64frombits(b) }
func floatToFixed64(v float64) uint64 { return math.Float64bits(v) }
