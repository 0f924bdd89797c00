package tswp

import "math"

func float32FromFixed(b uint32) float32 { return math.Float32frombits(b) }
func float32ToFixed(v float32) uint32   { return math.Float32bits(v) }
