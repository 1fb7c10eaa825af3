package fixedpoint

import (
	"fmt"
	"testing"
)

var (
	sinkInt64 int64
	sinkErr   error
	sinkStr   string
)

func benchEngines(b *testing.B, f func(b *testing.B, a Arithmetic)) {
	for _, scale := range []int{6, 18} {
		for _, overflow := range []OverflowMode{OverflowUnchecked, OverflowChecked} {
			a := MustNew(scale, RoundHalfEven, overflow)
			b.Run(fmt.Sprintf("scale=%d/%v", scale, overflow), func(b *testing.B) {
				f(b, a)
			})
		}
	}
}

func BenchmarkArithmetic_Mul(b *testing.B) {
	benchEngines(b, func(b *testing.B, a Arithmetic) {
		x := 15 * a.One() / 10
		y := 25 * a.One() / 10
		for i := 0; i < b.N; i++ {
			sinkInt64, sinkErr = a.Mul(x, y)
		}
	})
}

func BenchmarkArithmetic_Div(b *testing.B) {
	benchEngines(b, func(b *testing.B, a Arithmetic) {
		x := a.One()
		y := 3 * a.One()
		for i := 0; i < b.N; i++ {
			sinkInt64, sinkErr = a.Div(x, y)
		}
	})
}

func BenchmarkArithmetic_Sqrt(b *testing.B) {
	benchEngines(b, func(b *testing.B, a Arithmetic) {
		x := 2 * a.One()
		for i := 0; i < b.N; i++ {
			sinkInt64, sinkErr = a.Sqrt(x)
		}
	})
}

func BenchmarkArithmetic_Parse(b *testing.B) {
	a := MustNew(6, RoundHalfEven, OverflowChecked)
	for i := 0; i < b.N; i++ {
		sinkInt64, sinkErr = a.Parse("123456.654321")
	}
}

func BenchmarkArithmetic_Text(b *testing.B) {
	a := MustNew(6, RoundHalfEven, OverflowChecked)
	for i := 0; i < b.N; i++ {
		sinkStr = a.Text(123_456_654_321)
	}
}
