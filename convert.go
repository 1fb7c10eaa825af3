package fixedpoint

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd"
)

// FromFloat64 converts a binary floating-point value to an unscaled value,
// rounding excess fractional digits with the engine's rounding mode.
//
// The conversion goes through the shortest decimal rendering of f rather
// than the binary bit pattern. This is not performance-critical and keeps
// the rounding outcome identical to parsing the printed number.
func (a Arithmetic) FromFloat64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, a.opError(ErrInvalidNumber, fmt.Sprintf("fromFloat64(%v)", f))
	}
	v, err := a.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return 0, fmt.Errorf("fromFloat64(%v): %w", f, err)
	}
	return v, nil
}

// ToFloat64 converts an unscaled value to the nearest float64.
func (a Arithmetic) ToFloat64(x int64) float64 {
	f, _ := strconv.ParseFloat(a.Text(x), 64)
	return f
}

// ToFloat32 converts an unscaled value to the nearest float32.
func (a Arithmetic) ToFloat32(x int64) float32 {
	f, _ := strconv.ParseFloat(a.Text(x), 32)
	return float32(f)
}

// ToBigDecimal converts an unscaled value to an arbitrary-precision decimal
// with the engine's scale. The conversion is exact and may allocate.
func (a Arithmetic) ToBigDecimal(x int64) *apd.Decimal {
	return apd.New(x, -int32(a.Scale()))
}

// FromBigInt converts an arbitrary-precision integer to an unscaled value
// at the engine's scale. The conversion is exact; values outside the
// representable range overflow in checked mode and wrap otherwise.
func (a Arithmetic) FromBigInt(b *big.Int) (int64, error) {
	var u big.Int
	u.Mul(b, big.NewInt(a.metrics.ScaleFactor()))
	if u.IsInt64() {
		return u.Int64(), nil
	}
	if a.checked {
		return 0, fmt.Errorf("fromBigInt(%v) [scale=%d]: %w", b, a.Scale(), ErrOverflow)
	}
	var mod big.Int
	mod.Mod(&u, two64)
	return int64(mod.Uint64()), nil
}

// FromBigDecimal converts an arbitrary-precision decimal to an unscaled
// value, rounding to the engine's scale with the engine's rounding mode.
func (a Arithmetic) FromBigDecimal(d *apd.Decimal) (int64, error) {
	ctx := apd.BaseContext.WithPrecision(uint32(d.NumDigits()) + 2*MaxScale + 2)
	ctx.Rounding = a.rounding.apd()

	var q apd.Decimal
	res, err := ctx.Quantize(&q, d, -int32(a.Scale()))
	if err != nil {
		return 0, fmt.Errorf("fromBigDecimal(%v) [scale=%d]: %v: %w", d, a.Scale(), err, ErrOverflow)
	}
	if a.rounding == RoundUnnecessary && res.Inexact() {
		return 0, fmt.Errorf("fromBigDecimal(%v) [scale=%d]: %w", d, a.Scale(), ErrRoundingNecessary)
	}
	if res.Inexact() && q.Sign() == 0 && d.Sign() != 0 {
		// Quantize discards values below a tenth of a unit in the last
		// place without consulting the rounding mode. Modes that round
		// a nonzero fraction away from zero never produce an inexact
		// zero themselves, so for them an inexact zero means the
		// discarded value was below a tenth of a unit; for all other
		// modes the increment is zero anyway.
		inc, err := a.rounding.increment(partLessThanHalf, int64(d.Sign()), false)
		if err != nil {
			return 0, fmt.Errorf("fromBigDecimal(%v) [scale=%d]: %w", d, a.Scale(), err)
		}
		return inc, nil
	}

	// The quantized value has exponent -scale, so its coefficient is the
	// unscaled result.
	var unscaled apd.Decimal
	unscaled.Set(&q)
	unscaled.Exponent = 0
	u, err := unscaled.Int64()
	if err != nil {
		if a.checked {
			return 0, fmt.Errorf("fromBigDecimal(%v) [scale=%d]: %w", d, a.Scale(), ErrOverflow)
		}
		// Unchecked mode keeps the low 64 bits of the exact coefficient.
		var mod big.Int
		mod.Mod(&unscaled.Coeff, two64)
		return int64(mod.Uint64()), nil
	}
	return u, nil
}

// two64 is 2^64, the modulus of unchecked truncation.
var two64 = new(big.Int).Lsh(big.NewInt(1), 64)

// apd maps the engine's rounding mode onto an apd rounder name.
// RoundUnnecessary truncates and relies on the caller inspecting the Inexact
// condition, since apd has no failing rounder.
func (m RoundingMode) apd() string {
	switch m {
	case RoundUp:
		return apd.RoundUp
	case RoundCeiling:
		return apd.RoundCeiling
	case RoundFloor:
		return apd.RoundFloor
	case RoundHalfUp:
		return apd.RoundHalfUp
	case RoundHalfDown:
		return apd.RoundHalfDown
	case RoundHalfEven:
		return apd.RoundHalfEven
	}
	return apd.RoundDown
}
