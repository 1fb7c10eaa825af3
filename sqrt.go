package fixedpoint

// Sqrt calculates the square root of x, rounding the result to the engine's
// scale. The unscaled root of an unscaled operand is the integer square root
// of x * 10^scale, which needs up to 128 bits before narrowing.
//
// The root of a non-square is irrational, so the discarded fraction can
// never be exactly one half: the true value exceeds root + 1/2 exactly when
// the remainder exceeds the root.
//
// Sqrt fails with [ErrInvalidNumber] for negative operands regardless of the
// rounding mode.
func (a Arithmetic) Sqrt(x int64) (int64, error) {
	// Special cases
	switch {
	case x < 0:
		return 0, a.opError(ErrInvalidNumber, "sqrt", x)
	case x == 0:
		return 0, nil
	case x == a.One():
		return x, nil
	}

	// General case
	w := mul128(x, a.metrics.ScaleFactor())
	root, rem := sqrt128(w)

	var part truncatedPart
	switch {
	case rem.hi == 0 && rem.lo == 0:
		part = partZero
	case rem.hi > 0 || rem.lo > root:
		part = partGreaterThanHalf
	default:
		part = partLessThanHalf
	}
	inc, err := a.rounding.increment(part, 1, root&1 != 0)
	if err != nil {
		return 0, a.opError(err, "sqrt", x)
	}
	return int64(root) + inc, nil
}
