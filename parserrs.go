package minicalc

import (
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrMalformed is matched by every error from text which is not a valid
	// arithmetic expression, and by results that are not finite numbers.
	ErrMalformed = errors.New("malformed expression")
	// ErrDivisionByZero is matched by errors from dividing by exactly zero in
	// an otherwise valid expression.
	ErrDivisionByZero = errors.New("division by zero")
)

// OperatorError is an error indicating an operator token that is not
// understood by the parser where it appears, e.g. a binary-only operator in
// place of an operand. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Is(target error) bool {
	return target == ErrMalformed
}

// BracketError is an error indicating unbalanced parentheses in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis, or of the end of the
	// input for an open parenthesis that was never closed.
	Col int
	// Left is the opening parenthesis, or empty if there was none.
	Left string
	// Right is the closing parenthesis, or empty if there was none.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Is(target error) bool {
	return target == ErrMalformed
}

// EmptyExpressionError is an error indicating an empty subexpression: no
// input at all, empty parentheses, or an operator with nothing after it.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrMalformed
}

// OperandError is an error indicating an operand where an operator was
// expected, as in "2(3)" or "(1)2". There is no implicit multiplication.
type OperandError struct {
	// Col is the position of the unexpected operand.
	Col int
	// Text is the first token of the operand.
	Text string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "expected operator before "+strconv.Quote(err.Text))
}

func (err *OperandError) Pos() int {
	return err.Col
}

func (err *OperandError) Is(target error) bool {
	return target == ErrMalformed
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*LexError)(nil)
	_ InputError = (*DivisionError)(nil)
)
