package fixedpoint

// RoundingMode determines how an operation resolves results that cannot be
// represented exactly at the engine's scale.
type RoundingMode uint8

const (
	// RoundDown truncates towards zero.
	RoundDown RoundingMode = iota
	// RoundUp rounds away from zero.
	RoundUp
	// RoundCeiling rounds towards positive infinity.
	RoundCeiling
	// RoundFloor rounds towards negative infinity.
	RoundFloor
	// RoundHalfUp rounds to the nearest neighbor, ties away from zero.
	RoundHalfUp
	// RoundHalfDown rounds to the nearest neighbor, ties towards zero.
	RoundHalfDown
	// RoundHalfEven rounds to the nearest neighbor, ties to the even neighbor.
	RoundHalfEven
	// RoundUnnecessary asserts that no rounding is needed and fails with
	// [ErrRoundingNecessary] otherwise.
	RoundUnnecessary
)

// String implements the [fmt.Stringer] interface.
func (m RoundingMode) String() string {
	switch m {
	case RoundDown:
		return "DOWN"
	case RoundUp:
		return "UP"
	case RoundCeiling:
		return "CEILING"
	case RoundFloor:
		return "FLOOR"
	case RoundHalfUp:
		return "HALF_UP"
	case RoundHalfDown:
		return "HALF_DOWN"
	case RoundHalfEven:
		return "HALF_EVEN"
	case RoundUnnecessary:
		return "UNNECESSARY"
	}
	return "UNKNOWN"
}

// OverflowMode determines how an operation treats results that do not fit
// into a 64-bit unscaled value.
type OverflowMode uint8

const (
	// OverflowUnchecked silently truncates the exact result to its low
	// 64 bits.
	OverflowUnchecked OverflowMode = iota
	// OverflowChecked fails with [ErrOverflow] when the exact result does
	// not fit into 64 bits.
	OverflowChecked
)

// String implements the [fmt.Stringer] interface.
func (m OverflowMode) String() string {
	if m == OverflowChecked {
		return "CHECKED"
	}
	return "UNCHECKED"
}

// truncatedPart classifies the magnitude of a discarded fraction relative to
// one half of the unit in the last place.
type truncatedPart uint8

const (
	partZero truncatedPart = iota
	partLessThanHalf
	partEqualToHalf
	partGreaterThanHalf
)

// classifyRemainder relates 2*|rem| to |divisor|.
// The remainder of a truncating division is always strictly smaller in
// magnitude than the divisor, so 2*|rem| fits into a uint64.
func classifyRemainder(rem, divisor int64) truncatedPart {
	if rem == 0 {
		return partZero
	}
	r2 := 2 * absUint64(rem)
	d := absUint64(divisor)
	switch {
	case r2 < d:
		return partLessThanHalf
	case r2 == d:
		return partEqualToHalf
	}
	return partGreaterThanHalf
}

// classifyDigits classifies the digits truncated by the string parser:
// last is the first discarded decimal digit and trailing reports whether any
// later discarded digit was non-zero.
func classifyDigits(last byte, trailing bool) truncatedPart {
	switch {
	case last == 0 && !trailing:
		return partZero
	case last < 5:
		return partLessThanHalf
	case last == 5 && !trailing:
		return partEqualToHalf
	}
	return partGreaterThanHalf
}

// increment returns the signed unit to add to a truncated result so that it
// realizes the rounding mode. sgn is the sign of the exact result and odd is
// the parity of the truncated value.
func (m RoundingMode) increment(part truncatedPart, sgn int64, odd bool) (int64, error) {
	if part == partZero || sgn == 0 {
		return 0, nil
	}
	switch m {
	case RoundDown:
		return 0, nil
	case RoundUp:
		return sgn, nil
	case RoundCeiling:
		if sgn > 0 {
			return 1, nil
		}
		return 0, nil
	case RoundFloor:
		if sgn < 0 {
			return -1, nil
		}
		return 0, nil
	case RoundHalfUp:
		if part >= partEqualToHalf {
			return sgn, nil
		}
		return 0, nil
	case RoundHalfDown:
		if part == partGreaterThanHalf {
			return sgn, nil
		}
		return 0, nil
	case RoundHalfEven:
		if part == partGreaterThanHalf || (part == partEqualToHalf && odd) {
			return sgn, nil
		}
		return 0, nil
	}
	return 0, ErrRoundingNecessary
}

// incrementForRemainder computes the rounding increment for a truncating
// division truncated = x / divisor, rem = x - truncated * divisor.
func (m RoundingMode) incrementForRemainder(truncated, rem, divisor int64) (int64, error) {
	sgn := int64(1)
	if (rem < 0) != (divisor < 0) {
		sgn = -1
	}
	return m.increment(classifyRemainder(rem, divisor), sgn, truncated&1 != 0)
}

// absUint64 returns |x| as a uint64, which is exact even for math.MinInt64.
func absUint64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
