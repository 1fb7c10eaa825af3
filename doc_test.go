package fixedpoint_test

import (
	"fmt"

	"github.com/scaledmath/fixedpoint"
)

// In this example the yearly interest on an account balance is calculated
// and rounded to cents with banker's rounding.
func Example_interestAccrual() {
	a := fixedpoint.MustNew(2, fixedpoint.RoundHalfEven, fixedpoint.OverflowChecked)
	balance := a.MustParse("1250.75")
	rate := a.MustParse("0.05")
	interest, err := a.Mul(balance, rate)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Text(interest))
	// Output: 62.54
}

func ExampleNew() {
	a, err := fixedpoint.New(4, fixedpoint.RoundHalfUp, fixedpoint.OverflowChecked)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Scale(), a.Rounding(), a.Overflow())

	_, err = fixedpoint.New(19, fixedpoint.RoundHalfUp, fixedpoint.OverflowChecked)
	fmt.Println(err)
	// Output:
	// 4 HALF_UP CHECKED
	// scale 19: scale out of range
}

func ExampleArithmetic_Parse() {
	a := fixedpoint.MustNew(2, fixedpoint.RoundHalfUp, fixedpoint.OverflowChecked)
	fmt.Println(a.Parse("19.99"))
	fmt.Println(a.Parse("19.999"))
	fmt.Println(a.Parse("-.25"))
	// Output:
	// 1999 <nil>
	// 2000 <nil>
	// -25 <nil>
}

func ExampleArithmetic_Text() {
	a := fixedpoint.MustNew(4, fixedpoint.RoundDown, fixedpoint.OverflowChecked)
	fmt.Println(a.Text(12_345))
	fmt.Println(a.Text(-1))
	fmt.Println(a.Text(0))
	// Output:
	// 1.2345
	// -0.0001
	// 0.0000
}

func ExampleArithmetic_Div() {
	a := fixedpoint.MustNew(4, fixedpoint.RoundHalfUp, fixedpoint.OverflowChecked)
	x := a.MustParse("1")
	y := a.MustParse("3")
	q, err := a.Div(x, y)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Text(q))
	// Output: 0.3333
}

func ExampleArithmetic_Sqrt() {
	a := fixedpoint.MustNew(9, fixedpoint.RoundHalfUp, fixedpoint.OverflowChecked)
	root, err := a.Sqrt(a.MustParse("2"))
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Text(root))
	// Output: 1.414213562
}

func ExampleArithmetic_Avg() {
	a := fixedpoint.MustNew(2, fixedpoint.RoundHalfEven, fixedpoint.OverflowChecked)
	mid, err := a.Avg(a.MustParse("0.10"), a.MustParse("0.25"))
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Text(mid))
	// Output: 0.18
}

func ExampleRoundingMode() {
	modes := []fixedpoint.RoundingMode{
		fixedpoint.RoundDown,
		fixedpoint.RoundHalfUp,
		fixedpoint.RoundHalfEven,
		fixedpoint.RoundCeiling,
	}
	for _, mode := range modes {
		a := fixedpoint.MustNew(0, mode, fixedpoint.OverflowChecked)
		fmt.Println(mode, a.MustParse("2.5"))
	}
	// Output:
	// DOWN 2
	// HALF_UP 3
	// HALF_EVEN 2
	// CEILING 3
}
