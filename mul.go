package fixedpoint

// sqrtMaxInt64 is ⌊sqrt(math.MaxInt64)⌋. A product of two factors within
// ±sqrtMaxInt64 always fits into an int64.
const sqrtMaxInt64 = 3_037_000_499

// Mul calculates x * y, rounding the result to the engine's scale.
//
// The unchecked general case splits each operand into integer and fractional
// parts relative to the scale factor and combines the cross terms with native
// 64-bit multiplication. For scales above 9 the fractional parts are split
// again into nine-digit halves so that every intermediate product fits into
// 64 bits. The checked variant computes the exact 128-bit product instead and
// verifies that the rounded quotient narrows to 64 bits.
func (a Arithmetic) Mul(x, y int64) (int64, error) {
	// Special cases
	one := a.One()
	switch {
	case x == 0 || y == 0:
		return 0, nil
	case y == one:
		return x, nil
	case x == one:
		return y, nil
	case y == -one:
		return a.Neg(x)
	case x == -one:
		return a.Neg(y)
	}

	// General case
	if a.checked {
		return a.mulChecked(x, y, "mul")
	}
	return a.mulUnchecked(x, y)
}

// Square calculates x * x, exploiting the symmetry of the cross terms.
func (a Arithmetic) Square(x int64) (int64, error) {
	// Special cases
	one := a.One()
	switch {
	case x == 0:
		return 0, nil
	case x == one || x == -one:
		return one, nil
	}

	// General case
	if a.checked {
		return a.mulChecked(x, x, "square")
	}

	m := a.metrics
	i := m.DivByScaleFactor(x)
	f := x - m.MulByScaleFactor(i)
	if f >= -sqrtMaxInt64 && f <= sqrtMaxInt64 {
		// The fractional product f*f fits into an int64.
		fxf := f * f
		fxfd := m.DivByScaleFactor(fxf)
		fxfr := fxf - m.MulByScaleFactor(fxfd)
		unrounded := m.MulByScaleFactor(i*i) + (i*f)<<1 + fxfd
		inc, err := a.rounding.incrementForRemainder(unrounded, fxfr, m.ScaleFactor())
		if err != nil {
			return 0, a.opError(err, "square", x)
		}
		return unrounded + inc, nil
	}

	// The fractional product does not fit; split f into nine-digit halves.
	scale9 := &scaleMetrics[9]
	diff09 := &scaleMetrics[a.Scale()-9]
	diff18 := &scaleMetrics[18-a.Scale()]
	hf := scale9.DivByScaleFactor(f)
	lf := f - scale9.MulByScaleFactor(hf)

	lfxlf := lf * lf
	lfxlfd := scale9.DivByScaleFactor(lfxlf)
	lfxlfr := lfxlf - scale9.MulByScaleFactor(lfxlfd)
	mid := (hf*lf)<<1 + lfxlfd
	midd := diff09.DivByScaleFactor(mid)
	midr := mid - diff09.MulByScaleFactor(midd)
	fxf := diff18.MulByScaleFactor(hf*hf) + midd
	unrounded := m.MulByScaleFactor(i*i) + (i*f)<<1 + fxf
	rem := scale9.MulByScaleFactor(midr) + lfxlfr
	inc, err := a.rounding.incrementForRemainder(unrounded, rem, m.ScaleFactor())
	if err != nil {
		return 0, a.opError(err, "square", x)
	}
	return unrounded + inc, nil
}

func (a Arithmetic) mulUnchecked(x, y int64) (int64, error) {
	m := a.metrics
	i1 := m.DivByScaleFactor(x)
	i2 := m.DivByScaleFactor(y)
	f1 := x - m.MulByScaleFactor(i1)
	f2 := y - m.MulByScaleFactor(i2)

	if a.Scale() <= 9 {
		// The fractional product f1*f2 fits into an int64.
		f1xf2 := f1 * f2
		f1xf2d := m.DivByScaleFactor(f1xf2)
		f1xf2r := f1xf2 - m.MulByScaleFactor(f1xf2d)
		unrounded := m.MulByScaleFactor(i1*i2) + i1*f2 + i2*f1 + f1xf2d
		inc, err := a.rounding.incrementForRemainder(unrounded, f1xf2r, m.ScaleFactor())
		if err != nil {
			return 0, a.opError(err, "mul", x, y)
		}
		return unrounded + inc, nil
	}

	// The fractional product does not fit; split each fractional part into
	// nine-digit halves so that every intermediate product stays within
	// 64 bits, carrying a separate remainder term into the rounding step.
	scale9 := &scaleMetrics[9]
	diff09 := &scaleMetrics[a.Scale()-9]
	diff18 := &scaleMetrics[18-a.Scale()]
	hf1 := scale9.DivByScaleFactor(f1)
	hf2 := scale9.DivByScaleFactor(f2)
	lf1 := f1 - scale9.MulByScaleFactor(hf1)
	lf2 := f2 - scale9.MulByScaleFactor(hf2)

	lf1xlf2 := lf1 * lf2
	lf1xlf2d := scale9.DivByScaleFactor(lf1xlf2)
	lf1xlf2r := lf1xlf2 - scale9.MulByScaleFactor(lf1xlf2d)
	mid := hf1*lf2 + hf2*lf1 + lf1xlf2d
	midd := diff09.DivByScaleFactor(mid)
	midr := mid - diff09.MulByScaleFactor(midd)
	f1xf2 := diff18.MulByScaleFactor(hf1*hf2) + midd
	unrounded := m.MulByScaleFactor(i1*i2) + i1*f2 + i2*f1 + f1xf2
	rem := scale9.MulByScaleFactor(midr) + lf1xlf2r
	inc, err := a.rounding.incrementForRemainder(unrounded, rem, m.ScaleFactor())
	if err != nil {
		return 0, a.opError(err, "mul", x, y)
	}
	return unrounded + inc, nil
}

// mulChecked computes the exact 128-bit product, divides it by the scale
// factor with the 128-by-64 long division, rounds, and verifies the result
// narrows to 64 bits.
func (a Arithmetic) mulChecked(x, y int64, op string) (int64, error) {
	w := mul128(x, y)
	factor := a.metrics.ScaleFactor()
	q, rem := w.divRem64(factor)
	inc, err := a.rounding.incrementForRemainder(q.int64(), rem, factor)
	if err != nil {
		return 0, a.opError(err, op, x, y)
	}
	return a.narrow(q.addInt64(inc), op, x, y)
}

// MulInt64 calculates x * v, where v is a plain integer rather than an
// unscaled value. The product needs no rounding.
func (a Arithmetic) MulInt64(x, v int64) (int64, error) {
	// Special cases
	switch {
	case x == 0 || v == 0:
		return 0, nil
	case v == 1:
		return x, nil
	case v == -1:
		return a.Neg(x)
	}
	// General case
	if a.checked {
		return a.narrow(mul128(x, v), "mulInt64", x, v)
	}
	return x * v, nil
}

// MulPow10 calculates x * 10^n with the engine's rounding (for negative n)
// and overflow behavior.
func (a Arithmetic) MulPow10(x int64, n int) (int64, error) {
	return a.mulPow10(x, int64(n), "mulPow10")
}

// DivPow10 calculates x / 10^n with the engine's rounding (for positive n)
// and overflow behavior.
func (a Arithmetic) DivPow10(x int64, n int) (int64, error) {
	return a.mulPow10(x, -int64(n), "divPow10")
}

func (a Arithmetic) mulPow10(x, n int64, op string) (int64, error) {
	// Special cases
	if x == 0 || n == 0 {
		return x, nil
	}
	// Any shift beyond ±64 behaves like a shift by exactly 64 digits:
	// multiplication has wrapped to zero (10^64 is divisible by 2^64) and
	// division has discarded strictly less than half of the last unit.
	switch {
	case n > 64:
		n = 64
	case n < -64:
		n = -64
	}

	if n > 0 {
		if n <= MaxScale {
			z, ok := scaleMetrics[n].mulByScaleFactorChecked(x)
			if ok {
				return z, nil
			}
			if a.checked {
				return 0, a.opError(ErrOverflow, op, x, n)
			}
			return scaleMetrics[n].MulByScaleFactor(x), nil
		}
		if a.checked {
			return 0, a.opError(ErrOverflow, op, x, n)
		}
		z := x
		k := n
		for k > MaxScale {
			z *= pow10[MaxScale]
			k -= MaxScale
		}
		return z * pow10[k], nil
	}

	// n < 0: divide by 10^-n with rounding.
	k := -n
	if k <= MaxScale {
		pm := &scaleMetrics[k]
		truncated := pm.DivByScaleFactor(x)
		rem := x - pm.MulByScaleFactor(truncated)
		inc, err := a.rounding.incrementForRemainder(truncated, rem, pm.ScaleFactor())
		if err != nil {
			return 0, a.opError(err, op, x, n)
		}
		return truncated + inc, nil
	}

	// The divisor exceeds any 64-bit magnitude, so the truncated value is
	// zero and only the rounding increment remains.
	sgn := int64(1)
	if x < 0 {
		sgn = -1
	}
	part := partLessThanHalf
	if k == MaxScale+1 && absUint64(x) >= 5_000_000_000_000_000_000 {
		// |x| relative to 10^19: the midpoint is 5*10^18.
		if absUint64(x) == 5_000_000_000_000_000_000 {
			part = partEqualToHalf
		} else {
			part = partGreaterThanHalf
		}
	}
	inc, err := a.rounding.increment(part, sgn, false)
	if err != nil {
		return 0, a.opError(err, op, x, n)
	}
	return inc, nil
}

// Pow calculates x^n by binary exponentiation, applying [Arithmetic.Mul] and
// [Arithmetic.Square] (and therefore the engine's rounding) at every step.
// A negative n raises the positive power first and then inverts it.
//
// Known limitation: rounding is applied to every intermediate product rather
// than once to an exact accumulated result, so the final value can differ
// from the correctly rounded power by a few units in the last place.
func (a Arithmetic) Pow(x int64, n int) (int64, error) {
	// Special cases
	switch {
	case n == 0:
		return a.One(), nil
	case n == 1:
		return x, nil
	}

	// General case
	neg := n < 0
	e := absUint64(int64(n))
	ret := a.One()
	b := x
	var err error
	for {
		if e&1 != 0 {
			ret, err = a.Mul(ret, b)
			if err != nil {
				return 0, err
			}
		}
		e >>= 1
		if e == 0 {
			break
		}
		b, err = a.Square(b)
		if err != nil {
			return 0, err
		}
	}
	if neg {
		return a.Invert(ret)
	}
	return ret, nil
}
