package cellcodec

import (
	"math"
	"math/big"
)

// Decimal128Bias is Apple's truncated-decimal128 exponent bias.
const Decimal128Bias = 6176

// UnpackDecimal128 reads Apple's truncated 128-bit decimal
// representation: sign bit at the high bit of byte 15; 14-bit combined
// biased exponent from the low 7 bits of byte 15 and the high 7 bits of
// byte 14; mantissa is the remaining low bit of byte 14 extended with
// bytes 0..13 as a little-endian 113-bit unsigned integer. b must be
// exactly 16 bytes.
//
// The result is computed by converting the mantissa to a float64 and
// multiplying by 10^(exponent-bias), so rounding matches a
// multiply-through-float64 reference to within 1 ULP.
func UnpackDecimal128(b []byte) float64 {
	if len(b) != 16 {
		return 0
	}
	sign := b[15]>>7 != 0
	expHigh7 := uint32(b[15] & 0x7F)
	expLow7 := uint32(b[14] >> 1)
	biasedExp := (expHigh7 << 7) | expLow7

	mantissaTopBit := b[14] & 0x01
	beBytes := make([]byte, 15)
	beBytes[0] = mantissaTopBit
	for i := 0; i < 14; i++ {
		beBytes[1+i] = b[13-i]
	}
	mantissaInt := new(big.Int).SetBytes(beBytes)
	mantissaFloat, _ := new(big.Float).SetInt(mantissaInt).Float64()

	value := mantissaFloat * math.Pow10(int(biasedExp)-Decimal128Bias)
	if sign {
		value = -value
	}
	return value
}
