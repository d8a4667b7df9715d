package minicalc

import (
	"io"
	"strings"
)

// Expr = num | Neg | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Neg = '-' Expr | '−' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr | Expr '−' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Pow = Expr '^' Expr

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse parses an expression so it can be evaluated. The given options are
// applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parseterm(scan, &p, exprprec)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
	case tokenClose:
		return nil, &BracketError{Col: tok.pos, Right: tok.text}
	default:
		panic("minicalc: parse ended on " + tok.String())
	}
	return &Expr{n: n}, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string, opts ...ParseOption) (*Expr, error) {
	return Parse(strings.NewReader(src), opts...)
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression ending at a close parenthesis, the result is nil with no
// error; callers must create an error in contexts where that is illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (*node, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum, tokenOpen:
			// 2 3 and 2(3) are both missing an operator.
			return nil, &OperandError{Col: tok.pos, Text: tok.text}
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				end := scan.must()
				return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
			}
			n = &node{kind: prec.op, pos: tok.pos, left: n, right: rhs}
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("minicalc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// any encountered token must be valid as the start of a subexpression, and
// whitespace normally lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx, until operator) (*node, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenNum:
		n = &node{kind: nodeNum, name: tok.text, pos: tok.pos}
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			end := scan.must()
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = &node{kind: prec.op, pos: tok.pos, left: rhs}
	case tokenOpen:
		rhs, err := parseterm(scan, p, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			// Only EOF can end a term other than a close parenthesis.
			return nil, &BracketError{Col: tok.pos, Left: tok.text}
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		n = rhs
	case tokenClose:
		// Let the caller decide whether this is empty parentheses or an
		// unbalanced close.
		scan.push(tok)
		return nil, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("minicalc: unknown token: " + tok.String())
	}
	return n, nil
}

// String creates a fully parenthesized representation of the parsed
// expression using × and ÷. The result parses to the same expression.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, true)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-", "−":
		return operator{1, false, nodeSub}
	case "*", "×":
		return operator{5, false, nodeMul}
	case "/", "÷":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. Only negation is unary, so
// "2++3" is malformed. If there is no such unary operator, then the result
// has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "-", "−":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
