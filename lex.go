package minicalc

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number, possibly with an exponent.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators. Besides
// the keypad's + - × ÷, it has the ASCII * and /, the Unicode minus sign, and
// ^ for exponentiation.
const Operators = "+-*/^×÷−"

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("minicalc: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("minicalc: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. The first time EOF is encountered
// before any non-whitespace characters, the result is an EOF token with a nil
// error. Subsequent times, if the EOF token is not pushed, the result is an
// empty token with io.EOF. Whitespace runes in wseof end the input as if they
// were EOF.
func (l *lexer) next(wseof string) (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			return tok, errors.Wrap(err, "minicalc: reading expression")
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			tok.pos++
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '(':
			tok.text = "("
			tok.kind = tokenOpen
			return tok, nil
		case r == ')':
			tok.text = ")"
			tok.kind = tokenClose
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.text = string(r)
			tok.kind = tokenOp
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans a decimal number with an optional fraction and exponent. At
// least one digit must precede the exponent marker.
func (l *lexer) scanNum() error {
	var dig, dot, e, le, ed bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return errors.Wrap(err, "minicalc: reading number")
		}
		if unicode.IsSpace(r) {
			l.unreadRune()
			break
		}
		if r == '+' || r == '-' {
			// + or - anywhere other than immediately following an exponent
			// marker means a new token, as it is an operator.
			if !le {
				l.unreadRune()
				break
			}
			le = false
			l.buf.WriteRune(r)
			continue
		}
		if r == '(' || r == ')' || strings.ContainsRune(Operators, r) {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
		switch r {
		case '.':
			if dot || e {
				return l.error("number")
			}
			dot = true
			le = false
		case 'e', 'E':
			if !dig || e {
				return l.error("number")
			}
			e = true
			le = true
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			return l.error("number")
		}
	}
	if !dig || (e && !ed) {
		return l.error("number")
	}
	return nil
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError indicates an invalid token. It implements InputError and matches
// ErrMalformed.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Is(target error) bool {
	return target == ErrMalformed
}
