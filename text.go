package fixedpoint

import (
	"fmt"
	"math"
)

// Text returns the canonical decimal rendering of an unscaled value: an
// optional leading '-', an integer part without leading zeros (a bare "0"
// when the value is within one), and exactly scale fractional digits.
func (a Arithmetic) Text(v int64) string {
	var buf [21]byte
	pos := len(buf) - 1
	mag := absUint64(v)
	scale := a.Scale()

	// Digits
	for {
		buf[pos] = byte(mag%10) + '0'
		pos--
		mag /= 10
		if scale > 0 {
			scale--
			// Decimal point
			if scale == 0 {
				buf[pos] = '.'
				pos--
				// Leading 0
				if mag == 0 {
					buf[pos] = '0'
					pos--
				}
			}
		}
		if mag == 0 && scale == 0 {
			break
		}
	}

	// Sign
	if v < 0 {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// Parse converts a string to an unscaled value.
// The input must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.25
//	-.25
//	12.
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Fractional digits beyond the engine's scale are rounded with the engine's
// rounding mode, one digit at a time.
//
// Parse returns an error if the string does not represent a valid decimal
// number, if the integer part does not fit into an int64, or, in checked
// mode, if the unscaled result overflows.
func (a Arithmetic) Parse(s string) (int64, error) {
	var (
		pos      int
		width    int
		neg      bool
		hasdig   bool
		imag     uint64
		fval     int64
		fdigits  int
		last     byte
		trailing bool
	)

	width = len(s)
	scale := a.Scale()

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer part
	imax := uint64(math.MaxInt64)
	if neg {
		imax++
	}
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		hasdig = true
		d := uint64(s[pos] - '0')
		if imag > (imax-d)/10 {
			return 0, fmt.Errorf("parse(%q): integer part out of range: %w", s, ErrInvalidNumber)
		}
		imag = imag*10 + d
		pos++
	}

	// Fractional part
	if pos < width && s[pos] == '.' {
		pos++
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			hasdig = true
			d := s[pos] - '0'
			switch {
			case fdigits < scale:
				fval = fval*10 + int64(d)
			case fdigits == scale:
				last = d
			default:
				trailing = trailing || d != 0
			}
			fdigits++
			pos++
		}
	}

	if pos != width {
		return 0, fmt.Errorf("parse(%q): invalid character %q: %w", s, s[pos], ErrInvalidNumber)
	}
	if !hasdig {
		return 0, fmt.Errorf("parse(%q): no digits: %w", s, ErrInvalidNumber)
	}

	// Zero-pad the fraction up to the engine's scale.
	for ; fdigits < scale; fdigits++ {
		fval *= 10
	}

	ival := int64(imag)
	if neg {
		ival = -ival
		fval = -fval
	}
	w := mul128(ival, a.One()).addInt64(fval)

	// Rounding of excess fractional digits
	sgn := int64(1)
	if neg {
		sgn = -1
	}
	inc, err := a.rounding.increment(classifyDigits(last, trailing), sgn, w.lo&1 != 0)
	if err != nil {
		return 0, fmt.Errorf("parse(%q) [scale=%d rounding=%v]: %w", s, scale, a.rounding, err)
	}
	w = w.addInt64(inc)

	if a.checked && !w.fits64() {
		return 0, fmt.Errorf("parse(%q) [scale=%d]: %w", s, scale, ErrOverflow)
	}
	return w.int64(), nil
}
