package fixedpoint

import (
	"fmt"
	"math"
)

// Arithmetic is a fixed-point decimal arithmetic engine bound to one
// (scale, rounding mode, overflow mode) triple. All operations are pure
// functions over unscaled int64 values, where an unscaled value represents
// trueValue * 10^scale. Arithmetic is an immutable value type and is safe
// for concurrent use by multiple goroutines.
type Arithmetic struct {
	metrics  *ScaleMetrics
	rounding RoundingMode
	checked  bool
}

// New returns the arithmetic engine for the given scale, rounding mode and
// overflow mode.
// New returns an error if scale is less than 0 or greater than [MaxScale],
// or if the rounding or overflow mode is unknown.
func New(scale int, rounding RoundingMode, overflow OverflowMode) (Arithmetic, error) {
	m, err := MetricsOf(scale)
	if err != nil {
		return Arithmetic{}, err
	}
	if rounding > RoundUnnecessary {
		return Arithmetic{}, fmt.Errorf("unknown rounding mode %d", uint8(rounding))
	}
	if overflow > OverflowChecked {
		return Arithmetic{}, fmt.Errorf("unknown overflow mode %d", uint8(overflow))
	}
	return Arithmetic{metrics: m, rounding: rounding, checked: overflow == OverflowChecked}, nil
}

// Scale returns the number of digits after the decimal point.
func (a Arithmetic) Scale() int {
	return a.metrics.Scale()
}

// Rounding returns the engine's rounding mode.
func (a Arithmetic) Rounding() RoundingMode {
	return a.rounding
}

// Overflow returns the engine's overflow mode.
func (a Arithmetic) Overflow() OverflowMode {
	if a.checked {
		return OverflowChecked
	}
	return OverflowUnchecked
}

// Metrics returns the engine's scale metrics.
func (a Arithmetic) Metrics() *ScaleMetrics {
	return a.metrics
}

// One returns the unscaled representation of 1, that is 10^scale.
func (a Arithmetic) One() int64 {
	return a.metrics.ScaleFactor()
}

// opError wraps err with the operation name, its operands and the engine
// configuration, so that a failure can be reproduced from its message.
func (a Arithmetic) opError(err error, op string, operands ...int64) error {
	if len(operands) == 0 {
		return fmt.Errorf("%s [scale=%d rounding=%v overflow=%v]: %w", op, a.Scale(), a.rounding, a.Overflow(), err)
	}
	return fmt.Errorf("%s%v [scale=%d rounding=%v overflow=%v]: %w", op, operands, a.Scale(), a.rounding, a.Overflow(), err)
}

// narrow reduces an exact 128-bit result to 64 bits according to the
// engine's overflow mode.
func (a Arithmetic) narrow(z int128, op string, operands ...int64) (int64, error) {
	if a.checked && !z.fits64() {
		return 0, a.opError(ErrOverflow, op, operands...)
	}
	return z.int64(), nil
}

// Add calculates x + y. The sum of two operands of the same scale is always
// exact, so no rounding is applied.
func (a Arithmetic) Add(x, y int64) (int64, error) {
	return a.narrow(add128(x, y), "add", x, y)
}

// Sub calculates x - y. Like [Arithmetic.Add], the result is always exact.
func (a Arithmetic) Sub(x, y int64) (int64, error) {
	return a.narrow(sub128(x, y), "sub", x, y)
}

// Avg calculates (x + y) / 2 with rounding. The floor average is computed
// with the and/xor identity, which cannot overflow, so the result is the
// same in both overflow modes.
func (a Arithmetic) Avg(x, y int64) (int64, error) {
	xor := x ^ y
	floor := (x & y) + (xor >> 1)
	if xor&1 == 0 {
		return floor, nil
	}
	// The discarded fraction is exactly one half.
	truncated, sgn := floor, int64(1)
	if floor < 0 {
		truncated++
		sgn = -1
	}
	inc, err := a.rounding.increment(partEqualToHalf, sgn, truncated&1 != 0)
	if err != nil {
		return 0, a.opError(err, "avg", x, y)
	}
	return truncated + inc, nil
}

// Abs calculates |x|.
// In checked mode Abs fails for math.MinInt64, whose magnitude is not
// representable; in unchecked mode it wraps around to math.MinInt64.
func (a Arithmetic) Abs(x int64) (int64, error) {
	if x >= 0 {
		return x, nil
	}
	return a.Neg(x)
}

// Neg calculates -x, with the same math.MinInt64 behavior as [Arithmetic.Abs].
func (a Arithmetic) Neg(x int64) (int64, error) {
	if x == math.MinInt64 {
		if a.checked {
			return 0, a.opError(ErrOverflow, "neg", x)
		}
		return x, nil
	}
	return -x, nil
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (a Arithmetic) Cmp(x, y int64) int {
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (a Arithmetic) Sign(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// FromInt64 converts an integer value to its unscaled representation,
// calculating v * 10^scale.
func (a Arithmetic) FromInt64(v int64) (int64, error) {
	z, ok := a.metrics.mulByScaleFactorChecked(v)
	if !ok {
		if a.checked {
			return 0, a.opError(ErrOverflow, "fromInt64", v)
		}
		return a.metrics.MulByScaleFactor(v), nil
	}
	return z, nil
}

// ToInt64 converts an unscaled value to an integer, rounding the fractional
// part with the engine's rounding mode.
func (a Arithmetic) ToInt64(x int64) (int64, error) {
	truncated := a.metrics.DivByScaleFactor(x)
	rem := a.metrics.ModByScaleFactor(x)
	inc, err := a.rounding.incrementForRemainder(truncated, rem, a.metrics.ScaleFactor())
	if err != nil {
		return 0, a.opError(err, "toInt64", x)
	}
	return truncated + inc, nil
}

// FromUnscaled converts an unscaled value with the given source scale to
// this engine's scale, rounding or zero-padding as needed.
func (a Arithmetic) FromUnscaled(v int64, sourceScale int) (int64, error) {
	return a.mulPow10(v, int64(a.Scale()-sourceScale), "fromUnscaled")
}

// ShiftLeft calculates x * 2^n. A negative n shifts right.
// Shift distances of 64 or more zero out any operand; in checked mode they
// fail for non-zero operands.
func (a Arithmetic) ShiftLeft(x int64, n int) (int64, error) {
	return a.shiftLeft(x, int64(n), "shiftLeft")
}

// ShiftRight calculates x / 2^n, truncating towards zero and applying the
// engine's rounding mode to the discarded fraction. A negative n shifts left.
func (a Arithmetic) ShiftRight(x int64, n int) (int64, error) {
	return a.shiftLeft(x, -int64(n), "shiftRight")
}

func (a Arithmetic) shiftLeft(x, n int64, op string) (int64, error) {
	// Special cases
	switch {
	case n == 0 || x == 0:
		return x, nil
	case n < 0:
		return a.shiftRight(x, uint64(-n), op)
	case n >= 64:
		if a.checked {
			return 0, a.opError(ErrOverflow, op, x, n)
		}
		return 0, nil
	}
	// General case
	z := x << n
	if a.checked && z>>n != x {
		return 0, a.opError(ErrOverflow, op, x, n)
	}
	return z, nil
}

func (a Arithmetic) shiftRight(x int64, n uint64, op string) (int64, error) {
	mag := absUint64(x)
	sgn := int64(1)
	if x < 0 {
		sgn = -1
	}

	var truncated int64
	var part truncatedPart
	switch {
	case n > 64:
		// 2 * |x| < 2^65 <= 2^n, so the fraction is below one half.
		part = partLessThanHalf
	case n == 64:
		part = partLessThanHalf
		if mag == 1<<63 {
			part = partEqualToHalf
		}
	default:
		truncated = sgn * int64(mag>>n)
		rem := mag & (1<<n - 1)
		half := uint64(1) << (n - 1)
		switch {
		case rem == 0:
			part = partZero
		case rem < half:
			part = partLessThanHalf
		case rem == half:
			part = partEqualToHalf
		default:
			part = partGreaterThanHalf
		}
	}

	inc, err := a.rounding.increment(part, sgn, truncated&1 != 0)
	if err != nil {
		return 0, a.opError(err, op, x, int64(n))
	}
	return truncated + inc, nil
}
