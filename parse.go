package calc

import (
	"strings"
)

// Expr is a parsed expression in postfix order. An Expr is immutable and safe
// to evaluate concurrently.
type Expr struct {
	// src is the expression with whitespace removed.
	src string
	// rpn is the expression's tokens in postfix order.
	rpn []token
}

// Parse parses an expression so it can be evaluated. The given options are
// applied in order.
//
// Parsing never fails without the Strict option. Mismatched brackets, missing
// operands, and the like are reported when the expression is evaluated.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := newparsectx(opts)
	src = stripSpace(src)
	toks, err := lex(src, p)
	if err != nil {
		return nil, err
	}
	return &Expr{src: src, rpn: postfix(toks, p)}, nil
}

// postfix reorders tokens from infix to postfix order using the shunting-yard
// algorithm. A close bracket with no open bracket is dropped. An open bracket
// with no close bracket remains in the output, where evaluation rejects it.
func postfix(toks []token, p parsectx) []token {
	out := make([]token, 0, len(toks))
	var stack []token
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOpen:
			stack = append(stack, tok)
		case tokenClose:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		case tokenOp, tokenFunc:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.isOp() || !popsFor(top, tok, p) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		out = append(out, stack[i])
	}
	return out
}

// popsFor reports whether top, on the operator stack, must be output before
// tok is pushed.
func popsFor(top, tok token, p parsectx) bool {
	tp, kp := top.precedence(), tok.precedence()
	if tp != kp {
		return tp > kp
	}
	// Equal precedence groups left to right, except ^ when it is
	// right-associative.
	return !(p.rightpow && tok.kind == tokenOp && tok.op == opPow)
}

// String formats the expression in postfix order with tokens separated by
// spaces.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.String())
	}
	return b.String()
}

// Source returns the expression text with whitespace removed. Error
// positions are columns in this text.
func (e *Expr) Source() string {
	return e.src
}
