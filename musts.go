package fixedpoint

import "fmt"

// MustNew is like [New] but panics on invalid arguments.
// It simplifies safe initialization of global variables holding engines.
func MustNew(scale int, rounding RoundingMode, overflow OverflowMode) Arithmetic {
	a, err := New(scale, rounding, overflow)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v, %v) failed: %v", scale, rounding, overflow, err))
	}
	return a
}

// MustParse is like [Arithmetic.Parse] but panics if the string cannot be
// parsed. It simplifies safe initialization of global variables holding
// unscaled values.
func (a Arithmetic) MustParse(s string) int64 {
	v, err := a.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return v
}
