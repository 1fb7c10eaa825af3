/*
Package fixedpoint implements exact, overflow-aware fixed-point decimal
arithmetic over scaled 64-bit integers.

# Representation

A decimal value is stored as an unscaled int64 together with an implicit
scale, the number of digits after the decimal point:

	unscaled = trueValue * 10^scale

The scale is not carried by the value itself; it is fixed by the
[Arithmetic] engine that produced it. An engine binds one (scale, rounding
mode, overflow mode) triple and exposes the full operation set as pure
functions over unscaled values. Both operands of a binary operation must
belong to the same scale; rescaling between engines is done with
[Arithmetic.FromUnscaled].

The supported scales are 0 through [MaxScale]. The representable range of a
value shrinks with its scale:

	| Scale | Minimum                     | Maximum                    |
	| ----- | --------------------------- | -------------------------- |
	| 0     | -9223372036854775808        | 9223372036854775807        |
	| 2     | -92233720368547758.08       | 92233720368547758.07       |
	| 6     | -9223372036854.775808       | 9223372036854.775807       |
	| 18    | -9.223372036854775808       | 9.223372036854775807       |

# Rounding

Results that cannot be represented exactly at the engine's scale are rounded
with the engine's [RoundingMode]. [RoundUnnecessary] asserts exactness and
fails with [ErrRoundingNecessary] when a result would need rounding.

# Overflow

The exact mathematical result of an operation may not fit into 64 bits.
In [OverflowChecked] mode such operations fail with [ErrOverflow]; in
[OverflowUnchecked] mode they silently return the low 64 bits of the exact
result. Unchecked truncation is documented behavior, not an error.

Intermediate values wider than 64 bits (products, scaled dividends) are
computed exactly in 128 bits with native integer arithmetic; the package
never falls back to arbitrary-precision arithmetic in the hot path. The
conversions [Arithmetic.FromBigDecimal] and [Arithmetic.ToBigDecimal] bridge
to arbitrary-precision decimals at the package boundary and are explicitly
not performance-critical.

# Concurrency

[Arithmetic] is an immutable value type and all operations are pure
functions, so engines can be freely copied and shared across goroutines
without synchronization.
*/
package fixedpoint
