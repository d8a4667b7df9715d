package minicalc

import (
	"io"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// prec is the precision of the evaluation stack, that of a float64.
const prec = 53

// maxIntPow is the largest exponent magnitude evaluated by repeated squaring.
const maxIntPow = 1 << 10

// machine is the stack on which an expression is evaluated.
type machine struct {
	stack []*big.Float
}

// push ensures a settable value on the stack.
func (m *machine) push() *big.Float {
	r := new(big.Float).SetPrec(prec)
	m.stack = append(m.stack, r)
	return r
}

// pop removes the top from the stack and returns it.
func (m *machine) pop() *big.Float {
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (m *machine) top() *big.Float {
	return m.stack[len(m.stack)-1]
}

// Eval evaluates the expression. Evaluating the same expression always gives
// the same result.
func (e *Expr) Eval() (float64, error) {
	var m machine
	if err := e.n.eval(&m); err != nil {
		return 0, err
	}
	if len(m.stack) != 1 {
		panic("minicalc: inconsistent stack: " + strconv.Itoa(len(m.stack)) + " items (bad AST?)")
	}
	r, _ := m.stack[0].Float64()
	return r, nil
}

// settle rounds v to the nearest float64, as if the operation that produced
// it had been done in double precision. If the result is not finite, the
// error is a RangeError at col.
func settle(v *big.Float, col int) error {
	f, _ := v.Float64()
	if math.IsInf(f, 0) {
		return &RangeError{Col: col}
	}
	v.SetFloat64(f)
	return nil
}

// binary evaluates both operands of n and returns the right one popped and
// the left one on top of the stack, ready to receive the result.
func (n *node) binary(m *machine) (l, r *big.Float, err error) {
	if err := n.left.eval(m); err != nil {
		return nil, nil, err
	}
	if err := n.right.eval(m); err != nil {
		return nil, nil, err
	}
	r = m.pop()
	l = m.top()
	return l, r, nil
}

// eval pushes the node's value to the machine's stack.
func (n *node) eval(m *machine) error {
	switch n.kind {
	case nodeNum:
		v := m.push()
		if _, _, err := v.Parse(n.name, 10); err != nil {
			// The lexer only produces valid numbers, so the only way to fail
			// is an exponent too large even for big.Float.
			return &RangeError{Col: n.pos}
		}
		return settle(v, n.pos)
	case nodeNeg:
		if err := n.left.eval(m); err != nil {
			return err
		}
		v := m.top()
		v.Neg(v)
	case nodeAdd:
		l, r, err := n.binary(m)
		if err != nil {
			return err
		}
		l.Add(l, r)
		return settle(l, n.pos)
	case nodeSub:
		l, r, err := n.binary(m)
		if err != nil {
			return err
		}
		l.Sub(l, r)
		return settle(l, n.pos)
	case nodeMul:
		l, r, err := n.binary(m)
		if err != nil {
			return err
		}
		l.Mul(l, r)
		return settle(l, n.pos)
	case nodeDiv:
		l, r, err := n.binary(m)
		if err != nil {
			return err
		}
		if r.Sign() == 0 {
			return &DivisionError{Col: n.pos}
		}
		l.Quo(l, r)
		return settle(l, n.pos)
	case nodePow:
		l, r, err := n.binary(m)
		if err != nil {
			return err
		}
		if err := pow(l, r, n.pos); err != nil {
			return err
		}
		return settle(l, n.pos)
	default:
		panic("minicalc: invalid AST node " + n.kind.String())
	}
	return nil
}

// pow sets z to z^y. col is the position of the operator, for errors.
func pow(z, y *big.Float, col int) error {
	switch {
	case y.Sign() == 0:
		z.SetFloat64(1)
		return nil
	case z.Sign() == 0:
		if y.Sign() < 0 {
			return &DivisionError{Col: col}
		}
		z.SetFloat64(0)
		return nil
	}
	neg := false
	if z.Signbit() {
		// A negative base only has a real power for integer exponents.
		if !y.IsInt() {
			return &DomainError{X: new(big.Float).Copy(z), Col: col, Func: "^"}
		}
		i, _ := y.Int(nil)
		neg = i.Bit(0) == 1
	}
	x := new(big.Float).Abs(z)
	xf, _ := x.Float64()
	yf, _ := y.Float64()
	// Decide overflow and underflow in float64 before doing the expensive work.
	switch est := math.Pow(xf, yf); {
	case math.IsInf(est, 0):
		return &RangeError{Col: col}
	case est == 0:
		z.SetFloat64(0)
	case y.IsInt() && math.Abs(yf) <= maxIntPow:
		intpow(z, x, int64(yf))
	default:
		bigfloat.Pow(z, x, y)
	}
	if neg {
		z.Neg(z)
	}
	return nil
}

// intpow sets z to x^n by repeated squaring with guard bits, so that small
// integer powers are exact whenever the result is representable.
func intpow(z, x *big.Float, n int64) {
	const wp = 2 * prec
	acc := new(big.Float).SetPrec(wp).SetInt64(1)
	b := new(big.Float).SetPrec(wp).Set(x)
	inv := n < 0
	if inv {
		n = -n
	}
	for n > 0 {
		if n&1 != 0 {
			acc.Mul(acc, b)
		}
		b.Mul(b, b)
		n >>= 1
	}
	if inv {
		acc.Quo(new(big.Float).SetPrec(wp).SetInt64(1), acc)
	}
	z.Set(acc)
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// DivisionError is an error from dividing by zero. It implements InputError
// and matches ErrDivisionByZero.
type DivisionError struct {
	// Col is the position of the operator that divided by zero.
	Col int
}

func (err *DivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Pos() int {
	return err.Col
}

func (err *DivisionError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// RangeError is an error from a value too large in magnitude to represent.
// It matches ErrMalformed.
type RangeError struct {
	// Col is the position of the operator or number that overflowed.
	Col int
}

func (err *RangeError) Error() string {
	return errpos(err.Col, "value out of range")
}

func (err *RangeError) Pos() int {
	return err.Col
}

func (err *RangeError) Is(target error) bool {
	return target == ErrMalformed
}

// DomainError is an error returned when an operator is applied to arguments
// outside its domain. It matches ErrMalformed.
type DomainError struct {
	// X is the out-of-domain argument.
	X *big.Float
	// Col is the position of the operator.
	Col int
	// Func is the operator.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.Text('g', -1) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return errpos(err.Col, r)
}

func (err *DomainError) Pos() int {
	return err.Col
}

func (err *DomainError) Is(target error) bool {
	return target == ErrMalformed
}
