package fixedpoint

import (
	"fmt"
	"math"
)

// MaxScale is the largest supported number of digits after the decimal point.
// 10^18 is the largest power of ten that fits into an int64.
const MaxScale = 18

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// ScaleMetrics holds the derived constants of a single scale: the scale
// factor 10^scale and the largest and smallest integer parts whose scaled
// representation still fits into an int64.
// All metrics are computed once at package initialization and never mutated,
// so they are safe to share across goroutines.
type ScaleMetrics struct {
	scale  int
	factor int64
	maxInt int64
	minInt int64
}

var scaleMetrics [MaxScale + 1]ScaleMetrics

func init() {
	for s := 0; s <= MaxScale; s++ {
		f := pow10[s]
		scaleMetrics[s] = ScaleMetrics{
			scale:  s,
			factor: f,
			maxInt: math.MaxInt64 / f,
			minInt: math.MinInt64 / f,
		}
	}
}

// MetricsOf returns the metrics for the given scale.
// MetricsOf returns an error if scale is less than 0 or greater than [MaxScale].
func MetricsOf(scale int) (*ScaleMetrics, error) {
	if scale < 0 || MaxScale < scale {
		return nil, fmt.Errorf("scale %v: %w", scale, ErrScaleRange)
	}
	return &scaleMetrics[scale], nil
}

// Scale returns the number of digits after the decimal point.
func (m *ScaleMetrics) Scale() int {
	return m.scale
}

// ScaleFactor returns 10^scale.
func (m *ScaleMetrics) ScaleFactor() int64 {
	return m.factor
}

// MaxIntegerPart returns ⌊math.MaxInt64 / 10^scale⌋, the largest value whose
// product with the scale factor still fits into an int64.
func (m *ScaleMetrics) MaxIntegerPart() int64 {
	return m.maxInt
}

// MinIntegerPart returns ⌈math.MinInt64 / 10^scale⌉, the smallest value whose
// product with the scale factor still fits into an int64.
func (m *ScaleMetrics) MinIntegerPart() int64 {
	return m.minInt
}

// DivByScaleFactor calculates x / 10^scale, truncating towards zero.
func (m *ScaleMetrics) DivByScaleFactor(x int64) int64 {
	// Special case: scale 0
	if m.scale == 0 {
		return x
	}
	// General case
	return x / m.factor
}

// MulByScaleFactor calculates x * 10^scale.
// The product silently wraps around on overflow; overflow checking is the
// caller's responsibility.
func (m *ScaleMetrics) MulByScaleFactor(x int64) int64 {
	// Special case: scale 0
	if m.scale == 0 {
		return x
	}
	// General case
	return x * m.factor
}

// ModByScaleFactor calculates x % 10^scale.
// The result carries the sign of x.
func (m *ScaleMetrics) ModByScaleFactor(x int64) int64 {
	// Special case: scale 0
	if m.scale == 0 {
		return 0
	}
	// General case
	return x % m.factor
}

// mulByScaleFactorChecked calculates x * 10^scale and checks overflow.
func (m *ScaleMetrics) mulByScaleFactorChecked(x int64) (int64, bool) {
	if x < m.minInt || x > m.maxInt {
		return 0, false
	}
	return x * m.factor, true
}

// factorOf returns the scale whose factor equals |x|, or -1 if |x| is not
// a power of ten.
// factorOf treats math.MinInt64 as not a power of ten.
func factorOf(x int64) int {
	if x < 0 {
		if x == math.MinInt64 {
			return -1
		}
		x = -x
	}
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		switch {
		case pow10[mid] == x:
			return mid
		case pow10[mid] < x:
			left = mid + 1
		default:
			right = mid
		}
	}
	return -1
}
