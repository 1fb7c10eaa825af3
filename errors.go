package fixedpoint

import "errors"

// Errors returned by arithmetic operations.
// Operations wrap these sentinels with the offending operands and the engine
// configuration, so errors.Is can always be used to classify a failure.
var (
	// ErrOverflow is returned by checked arithmetic when the exact result
	// does not fit into a 64-bit unscaled value.
	ErrOverflow = errors.New("overflow")

	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrRoundingNecessary is returned in [RoundUnnecessary] mode when the
	// exact result cannot be represented without rounding.
	ErrRoundingNecessary = errors.New("rounding necessary")

	// ErrInvalidNumber is returned for malformed text and for operands
	// outside an operation's domain, such as the square root of a negative.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrScaleRange is returned when a scale is less than 0 or greater
	// than [MaxScale].
	ErrScaleRange = errors.New("scale out of range")
)
