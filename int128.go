package fixedpoint

import "math/bits"

// int128 is a signed 128-bit integer in two's complement, stored as two
// 64-bit halves. It exists only as an intermediate value inside
// multiplication, division and square root and never escapes the package.
type int128 struct {
	hi, lo uint64
}

// signExt returns 0 for non-negative x and all ones for negative x.
func signExt(x int64) uint64 {
	return uint64(x >> 63)
}

// add128 calculates the exact sum of two int64 values.
func add128(x, y int64) int128 {
	lo, carry := bits.Add64(uint64(x), uint64(y), 0)
	hi := signExt(x) + signExt(y) + carry
	return int128{hi: hi, lo: lo}
}

// sub128 calculates the exact difference of two int64 values.
func sub128(x, y int64) int128 {
	lo, borrow := bits.Sub64(uint64(x), uint64(y), 0)
	hi := signExt(x) - signExt(y) - borrow
	return int128{hi: hi, lo: lo}
}

// mul128 calculates the exact product of two int64 values.
func mul128(x, y int64) int128 {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	if x < 0 {
		hi -= uint64(y)
	}
	if y < 0 {
		hi -= uint64(x)
	}
	return int128{hi: hi, lo: lo}
}

// isNeg returns true if z < 0.
func (z int128) isNeg() bool {
	return z.hi>>63 != 0
}

// sign returns:
//
//	-1 if z < 0
//	 0 if z == 0
//	+1 if z > 0
func (z int128) sign() int {
	switch {
	case z.isNeg():
		return -1
	case z.hi == 0 && z.lo == 0:
		return 0
	}
	return 1
}

// neg calculates -z.
func (z int128) neg() int128 {
	lo := -z.lo
	hi := ^z.hi
	if z.lo == 0 {
		hi++
	}
	return int128{hi: hi, lo: lo}
}

// abs calculates |z|.
func (z int128) abs() int128 {
	if z.isNeg() {
		return z.neg()
	}
	return z
}

// fits64 returns true if z can be narrowed to an int64 without loss.
func (z int128) fits64() bool {
	switch z.hi {
	case 0:
		return z.lo <= 1<<63-1
	case 1<<64 - 1:
		return z.lo >= 1<<63
	}
	return false
}

// int64 returns the low 64 bits of z reinterpreted as a signed value.
// The result equals z only if z.fits64() is true.
func (z int128) int64() int64 {
	return int64(z.lo)
}

// addInt64 calculates z + x.
func (z int128) addInt64(x int64) int128 {
	lo, carry := bits.Add64(z.lo, uint64(x), 0)
	hi := z.hi + signExt(x) + carry
	return int128{hi: hi, lo: lo}
}

// divRem64 calculates the quotient and remainder of z / d, truncating towards
// zero. The quotient is itself 128 bits wide, computed with binary long
// division on the unsigned magnitude: 128 iterations of shift and conditional
// subtract, with signs applied afterwards. The remainder carries the sign of
// the dividend and is always strictly smaller in magnitude than the divisor.
//
// divRem64 must not be called with a zero divisor.
func (z int128) divRem64(d int64) (int128, int64) {
	neg := z.isNeg()
	m := z.abs()
	ud := absUint64(d)

	hi, lo := m.hi, m.lo
	var r uint64
	for i := 0; i < 128; i++ {
		carry := hi >> 63
		hi = hi<<1 | lo>>63
		lo <<= 1
		rOvf := r >> 63
		r = r<<1 | carry
		// The subtraction is also exact when r overflowed its 64 bits,
		// because then r + 2^64 >= ud and the wraparound cancels.
		if rOvf != 0 || r >= ud {
			r -= ud
			lo |= 1
		}
	}

	q := int128{hi: hi, lo: lo}
	if neg != (d < 0) {
		q = q.neg()
	}
	rem := int64(r)
	if neg {
		rem = -rem
	}
	return q, rem
}

// sqrt128 calculates the integer square root of a non-negative z and the
// remainder z - root*root, processing two bits of the operand per step.
// The remainder can exceed 64 bits by one bit, hence the wide return type.
func sqrt128(z int128) (uint64, int128) {
	xhi, xlo := z.hi, z.lo
	var rhi, rlo, root uint64
	for i := 0; i < 64; i++ {
		rhi = rhi<<2 | rlo>>62
		rlo = rlo<<2 | xhi>>62
		xhi = xhi<<2 | xlo>>62
		xlo <<= 2

		// Appending a set bit to root grows the square by
		// (2*root+1)^2 - (2*root)^2 = 4*root+1.
		chi := root >> 62
		clo := root<<2 | 1
		root <<= 1
		if rhi > chi || (rhi == chi && rlo >= clo) {
			var borrow uint64
			rlo, borrow = bits.Sub64(rlo, clo, 0)
			rhi, _ = bits.Sub64(rhi, chi, borrow)
			root |= 1
		}
	}
	return root, int128{hi: rhi, lo: rlo}
}
