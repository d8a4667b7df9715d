package minicalc

import "strconv"

// Token is a symbol that can be appended to a Buffer.
type Token uint8

const (
	Zero Token = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	// Point is the decimal point.
	Point
	Plus
	Minus
	Times
	Divide
	// Open and Close are parentheses.
	Open
	Close

	tokenCount
)

// Digit returns the token for the decimal digit n. Panics if n is not in
// 0 through 9.
func Digit(n int) Token {
	if n < 0 || n > 9 {
		panic("minicalc: invalid digit " + strconv.Itoa(n))
	}
	return Zero + Token(n)
}

// Tokens returns every token in keypad order: digits, then the point, the
// operators, and the parentheses.
func Tokens() []Token {
	v := make([]Token, tokenCount)
	for i := range v {
		v[i] = Token(i)
	}
	return v
}

// String returns the text the token appends to an expression.
func (t Token) String() string {
	switch t {
	case Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return string(rune('0' + t))
	case Point:
		return "."
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Times:
		return "×"
	case Divide:
		return "÷"
	case Open:
		return "("
	case Close:
		return ")"
	default:
		panic("minicalc: invalid token " + strconv.Itoa(int(t)))
	}
}

// IsDigit returns whether t is one of the digit tokens.
func (t Token) IsDigit() bool {
	return t <= Nine
}

// IsOperator returns whether t is one of the four arithmetic operators.
func (t Token) IsOperator() bool {
	switch t {
	case Plus, Minus, Times, Divide:
		return true
	default:
		return false
	}
}

// Action is what a key press does to a Buffer.
type Action uint8

const (
	// Insert appends the key's token.
	Insert Action = iota
	// Delete removes the last character.
	Delete
	// Clear empties the buffer.
	Clear
	// Equals evaluates the buffer and replaces it with the result.
	Equals
)

func (a Action) String() string {
	switch a {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Clear:
		return "clear"
	case Equals:
		return "equals"
	default:
		return "Action(" + strconv.Itoa(int(a)) + ")"
	}
}

// Key is a key on the calculator's keypad. Token is meaningful only when
// Action is Insert.
type Key struct {
	Action Action
	Token  Token
}

// TokenKey returns the key that inserts t.
func TokenKey(t Token) Key {
	return Key{Action: Insert, Token: t}
}

func (k Key) String() string {
	if k.Action == Insert {
		return k.Token.String()
	}
	return k.Action.String()
}

// KeyFor maps a typed character to the key it stands for. Operators may be
// typed in ASCII or with their mathematical symbols. "=" and newline are
// Equals, backspace and DEL are Delete, and c is Clear. The second result is
// false if r is no key.
func KeyFor(r rune) (Key, bool) {
	if '0' <= r && r <= '9' {
		return TokenKey(Digit(int(r - '0'))), true
	}
	switch r {
	case '.':
		return TokenKey(Point), true
	case '+':
		return TokenKey(Plus), true
	case '-', '−', '—':
		// The keypad's minus label is an em dash.
		return TokenKey(Minus), true
	case '*', '×':
		return TokenKey(Times), true
	case '/', '÷':
		return TokenKey(Divide), true
	case '(':
		return TokenKey(Open), true
	case ')':
		return TokenKey(Close), true
	case '=', '\n':
		return Key{Action: Equals}, true
	case '\b', '\x7f':
		return Key{Action: Delete}, true
	case 'c', 'C':
		return Key{Action: Clear}, true
	default:
		return Key{}, false
	}
}
