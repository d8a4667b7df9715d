package minicalc_test

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"testing"

	"github.com/zephyrtronium/minicalc"
)

// div divides at run time, so that expected values are rounded the way the
// evaluator rounds rather than as exact constants.
func div(a, b float64) float64 {
	return a / b
}

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"frac", "1.5", 1.5},
		{"leadingpoint", ".5", 0.5},
		{"trailingpoint", "5.", 5},
		{"exp", "1e+21", 1e21},
		{"smallexp", "1.5e-08×2", 3e-08},
		{"neg", "-3", -3},
		{"negneg", "--3", 3},
		{"add", "2+3", 5},
		{"prec", "2+3×4", 14},
		{"paren", "(2+3)×4", 20},
		{"add3", "4+5+6", 4 + 5 + 6},
		{"sub3", "4-5-6", 4 - 5 - 6},
		{"mul3", "4×5×6", 4 * 5 * 6},
		{"div3", "4÷5÷6", div(div(4, 5), 6)},
		{"ascii", "4*5/8", 2.5},
		{"unicodeminus", "4−5", -1},
		{"subneg", "2--3", 5},
		{"mulneg", "2×-3", -6},
		{"ieee", "0.1+0.2", 0.30000000000000004},
		{"third", "1÷3", div(1, 3)},
		{"nested", "((1+2)×(3-4))÷5", -0.6},
		{"spaces", " 2 + 3 × 4 ", 14},
		{"pow", "2^10", 1024},
		{"powneg", "2^-1", 0.5},
		{"powright", "2^3^2", 512},
		{"negpow", "-2^2", -4},
		{"negbase-odd", "(-2)^3", -8},
		{"negbase-even", "(-2)^2", 4},
		{"pow-zero", "0^0", 1},
		{"zero-pow", "0^2", 0},
		{"negzero", "-0", 0},
		{"tiny", "1e-400", 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := minicalc.ParseString(c.src)
			if err != nil {
				t.Fatal(c.src, "failed to parse:", err)
			}
			r, err := a.Eval()
			if err != nil {
				t.Fatal("evaluation error:", err)
			}
			if r != c.r {
				t.Errorf("wrong result: want %g, got %g", c.r, r)
			}
			q, err := a.Eval()
			if err != nil || math.Float64bits(q) != math.Float64bits(r) {
				t.Errorf("different results: first %g, then %g with error %v", r, q, err)
			}
		})
	}
}

func TestEvalPowFrac(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"sqrt", "4^0.5", 2},
		{"cbrt", "27^(1÷3)", 3},
		{"frac", "2^1.5", 2 * math.Sqrt2},
		{"bigint", "1.0001^2000", math.Pow(1.0001, 2000)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := minicalc.EvalString(c.src)
			if err != nil {
				t.Fatal("evaluation error:", err)
			}
			if math.Abs(r-c.r) > 1e-12*math.Abs(c.r) {
				t.Errorf("wrong result: want %g, got %g", c.r, r)
			}
		})
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	cases := []struct {
		name string
		src  string
		pos  int
	}{
		{"div", "5÷0", 2},
		{"ascii", "5/0", 2},
		{"zero", "0÷0", 2},
		{"negzero", "5÷-0", 2},
		{"expr", "1+5÷(2-2)", 4},
		{"nested", "(1÷0)+1", 3},
		{"pow", "0^-1", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := minicalc.EvalString(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave %g with no error", c.src, r)
			}
			if !errors.Is(err, minicalc.ErrDivisionByZero) {
				t.Errorf("%#v does not match ErrDivisionByZero", err)
			}
			if errors.Is(err, minicalc.ErrMalformed) {
				t.Errorf("%#v matches ErrMalformed", err)
			}
			var de *minicalc.DivisionError
			if !errors.As(err, &de) {
				t.Fatalf("%#v is not *minicalc.DivisionError", err)
			}
			if de.Pos() != c.pos {
				t.Errorf("wrong position: want %d, got %d", c.pos, de.Pos())
			}
			if !regexp.MustCompile(`(?i)\bdivision by zero\b`).MatchString(err.Error()) {
				t.Errorf("%q doesn't mention division by zero", err.Error())
			}
		})
	}
}

func TestEvalMalformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"empty", "", new(minicalc.EmptyExpressionError)},
		{"trailing", "2+", new(minicalc.EmptyExpressionError)},
		{"unbalanced", "(2+3", new(minicalc.BracketError)},
		{"unopened", "2+3)", new(minicalc.BracketError)},
		{"double", "2×÷3", new(minicalc.OperatorError)},
		{"doubleplus", "2++3", new(minicalc.OperatorError)},
		{"mulplus", "2×+3", new(minicalc.OperatorError)},
		{"leadingplus", "+4", new(minicalc.OperatorError)},
		{"decimals", "1.2.3", new(minicalc.LexError)},
		{"implicit", "2(3)", new(minicalc.OperandError)},
		{"overflow", "1e308×10÷10", new(minicalc.RangeError)},
		{"overflow-literal", "1e400", new(minicalc.RangeError)},
		{"overflow-pow", "10^400", new(minicalc.RangeError)},
		{"domain", "(-8)^0.5", new(minicalc.DomainError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := minicalc.EvalString(c.src)
			if err == nil {
				t.Fatalf("evaluating %q gave %g with no error", c.src, r)
			}
			if !errors.Is(err, minicalc.ErrMalformed) {
				t.Errorf("%#v does not match ErrMalformed", err)
			}
			if errors.Is(err, minicalc.ErrDivisionByZero) {
				t.Errorf("%#v matches ErrDivisionByZero", err)
			}
			if got, want := fmt.Sprintf("%T", err), fmt.Sprintf("%T", c.err); got != want {
				t.Errorf("wrong error type: want %s, got %s", want, got)
			}
			if r != 0 {
				t.Errorf("nonzero result %g with error", r)
			}
			var ie minicalc.InputError
			if !errors.As(err, &ie) {
				t.Errorf("%#v is not an InputError", err)
			}
		})
	}
}

func TestEvalRoundTrip(t *testing.T) {
	cases := []string{
		"2+3",
		"-5",
		"1÷3",
		"-2÷3",
		"0.1+0.2",
		"2^-30",
		"1e21×7",
		"123456789×987654321",
		"1÷7e10",
		"2^0.5",
		"0-0",
		"-0",
	}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			r, err := minicalc.EvalString(src)
			if err != nil {
				t.Fatalf("evaluating %q: %v", src, err)
			}
			s := minicalc.Format(r)
			q, err := minicalc.EvalString(s)
			if err != nil {
				t.Fatalf("evaluating %q from %q: %v", s, src, err)
			}
			if q != r {
				t.Errorf("%q gave %g, formatted as %q, which gave %g", src, r, s, q)
			}
		})
	}
}

func TestEvalReader(t *testing.T) {
	r, err := minicalc.Eval(strings.NewReader("(2+3)×4"))
	if err != nil {
		t.Fatal(err)
	}
	if r != 20 {
		t.Errorf("wrong result: want 20, got %g", r)
	}
}

func BenchmarkEval(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"add", "2+3+4"},
		{"mixed", "(1.5+2.25)×4÷(3-0.5)"},
		{"pow", "2^10+3^0.5"},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			a, err := minicalc.ParseString(c.src)
			if err != nil {
				b.Fatal(err)
			}
			for i := 0; i < b.N; i++ {
				a.Eval()
			}
		})
	}
}

func Example() {
	for _, src := range []string{"2+3", "2+3×4", "(2+3)×4", "5÷0", "2+"} {
		r, err := minicalc.EvalString(src)
		switch {
		case errors.Is(err, minicalc.ErrDivisionByZero):
			fmt.Printf("%s: cannot divide by zero\n", src)
		case errors.Is(err, minicalc.ErrMalformed):
			fmt.Printf("%s: malformed\n", src)
		default:
			fmt.Printf("%s = %s\n", src, minicalc.Format(r))
		}
	}

	// Output:
	// 2+3 = 5
	// 2+3×4 = 14
	// (2+3)×4 = 20
	// 5÷0: cannot divide by zero
	// 2+: malformed
}
