package fixedpoint

// Div calculates x / y, rounding the quotient to the engine's scale.
//
// After the special cases, a divisor that is a power of ten reduces to a
// scale shift. A dividend whose scaled form provably fits into 64 bits is
// divided natively; otherwise the quotient is assembled from its integral
// and fractional components, falling back to the 128-by-64 long division
// only for a fractional remainder outside the safe range.
func (a Arithmetic) Div(x, y int64) (int64, error) {
	// Special cases
	one := a.One()
	switch {
	case y == 0:
		return 0, a.opError(ErrDivisionByZero, "div", x, y)
	case x == 0:
		return 0, nil
	case y == one:
		return x, nil
	case y == -one:
		return a.Neg(x)
	case x == y:
		return one, nil
	case x == -y:
		return -one, nil
	}

	// Special case: divisor is a power of ten
	if p := factorOf(y); p >= 0 {
		return a.divByPow10Divisor(x, y, p)
	}

	m := a.metrics

	// Fast path: the scaled dividend fits into 64 bits.
	if x <= m.MaxIntegerPart() && x >= m.MinIntegerPart() {
		scaled := m.MulByScaleFactor(x)
		q := scaled / y
		r := scaled - q*y
		inc, err := a.rounding.incrementForRemainder(q, r, y)
		if err != nil {
			return 0, a.opError(err, "div", x, y)
		}
		return q + inc, nil
	}

	if a.checked {
		// Exact 128-bit scaled dividend, vetted with fits64.
		w := mul128(x, m.ScaleFactor())
		q, rem := w.divRem64(y)
		inc, err := a.rounding.incrementForRemainder(q.int64(), rem, y)
		if err != nil {
			return 0, a.opError(err, "div", x, y)
		}
		return a.narrow(q.addInt64(inc), "div", x, y)
	}

	// Component-wise division.
	integral := x / y
	rem := x - integral*y
	if rem <= m.MaxIntegerPart() && rem >= m.MinIntegerPart() {
		scaledRem := m.MulByScaleFactor(rem)
		frac := scaledRem / y
		subRem := scaledRem - frac*y
		truncated := m.MulByScaleFactor(integral) + frac
		inc, err := a.rounding.incrementForRemainder(truncated, subRem, y)
		if err != nil {
			return 0, a.opError(err, "div", x, y)
		}
		return truncated + inc, nil
	}

	// The scaled remainder needs 128 bits. |rem| < |y| keeps the fractional
	// quotient below the scale factor, so it always narrows to 64 bits.
	w := mul128(rem, m.ScaleFactor())
	q, subRem := w.divRem64(y)
	frac := q.int64()
	inc, err := a.rounding.incrementForRemainder(frac, subRem, y)
	if err != nil {
		return 0, a.opError(err, "div", x, y)
	}
	return m.MulByScaleFactor(integral) + frac + inc, nil
}

// divByPow10Divisor divides by a divisor whose magnitude is 10^p, which is a
// pure scale shift of the dividend.
func (a Arithmetic) divByPow10Divisor(x, y int64, p int) (int64, error) {
	scaleDiff := a.Scale() - p
	if scaleDiff <= 0 {
		scaler := &scaleMetrics[-scaleDiff]
		tv := scaler.DivByScaleFactor(x)
		td := x - scaler.MulByScaleFactor(tv)
		if y < 0 {
			tv, td = -tv, -td
		}
		inc, err := a.rounding.incrementForRemainder(tv, td, scaler.ScaleFactor())
		if err != nil {
			return 0, a.opError(err, "div", x, y)
		}
		return tv + inc, nil
	}
	scaler := &scaleMetrics[scaleDiff]
	q, ok := scaler.mulByScaleFactorChecked(x)
	if !ok {
		if a.checked {
			return 0, a.opError(ErrOverflow, "div", x, y)
		}
		q = scaler.MulByScaleFactor(x)
	}
	if y < 0 {
		q = -q
	}
	return q, nil
}

// DivInt64 calculates x / v, where v is a plain integer rather than an
// unscaled value, rounding with the engine's rounding mode.
func (a Arithmetic) DivInt64(x, v int64) (int64, error) {
	// Special cases
	switch {
	case v == 0:
		return 0, a.opError(ErrDivisionByZero, "divInt64", x, v)
	case v == 1:
		return x, nil
	case v == -1:
		return a.Neg(x)
	case x == 0:
		return 0, nil
	}
	// General case
	q := x / v
	r := x - q*v
	inc, err := a.rounding.incrementForRemainder(q, r, v)
	if err != nil {
		return 0, a.opError(err, "divInt64", x, v)
	}
	return q + inc, nil
}

// Invert calculates 1 / x.
func (a Arithmetic) Invert(x int64) (int64, error) {
	return a.Div(a.One(), x)
}
