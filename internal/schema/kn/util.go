package kn

import "math"

func float64FromBits(b uint64) float64 { return math.Float64frombits(b) }
func float64ToBits(v float64) uint64   { return math.Float64bits(v) }
