// Package minicalc implements the engine of a pocket calculator: a text
// buffer that grows one key press at a time and an evaluator that turns the
// text into a number when "=" is pressed.
//
// The evaluator understands what the keypad can type: decimal numbers, the
// four arithmetic operators with the usual precedence, unary minus, and
// parentheses. "2+3×4" is 14 and "(2+3)×4" is 20. It also accepts a little
// more than the keypad produces, so that typed input and previous results
// work too: "*" and "/" for "×" and "÷", "^" for powers, and exponent notation
// like "1e+21".
//
// Arithmetic is IEEE double precision. Failures are either malformed input or
// division by zero; see ErrMalformed and ErrDivisionByZero.
//
package minicalc
