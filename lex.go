package calc

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// tokenpattern matches every token the lexer understands. Alternatives are
// tried in order, so function names which are prefixes of others must come
// later.
var tokenpattern = regexp.MustCompile(`\d+(?:\.\d*)?|[-+*/^()]|` + strings.Join(funcnames[:], "|") + `|PI|E`)

// stripSpace removes all whitespace from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// lex scans src into tokens. src should already have whitespace removed.
// Unless p is strict, text between tokens which does not match any token is
// skipped. A minus sign at the start of src or following an open bracket or
// another operator is rewritten to a multiplication by -1.
func lex(src string, p parsectx) ([]token, error) {
	var toks []token
	// last is the byte offset of the end of the last match, and col is the
	// rune column of that offset.
	last, col := 0, 1
	for _, m := range tokenpattern.FindAllStringIndex(src, -1) {
		if m[0] > last && p.strict {
			return nil, &LexError{Text: src[last:m[0]], Col: col}
		}
		col += utf8.RuneCountInString(src[last:m[0]])
		pos := col
		text := src[m[0]:m[1]]
		col += utf8.RuneCountInString(text)
		last = m[1]
		switch c := text[0]; {
		case '0' <= c && c <= '9':
			toks = append(toks, token{kind: tokenNum, num: parsenum(text), pos: pos})
		case c == '(':
			toks = append(toks, token{kind: tokenOpen, pos: pos})
		case c == ')':
			toks = append(toks, token{kind: tokenClose, pos: pos})
		default:
			if op := opnamed(text); op != opNone {
				if op == opSub && unaryPos(toks) {
					// -x -> (-1) * x
					toks = append(toks,
						token{kind: tokenNum, num: -1, pos: pos},
						token{kind: tokenOp, op: opMul, pos: pos},
					)
					continue
				}
				toks = append(toks, token{kind: tokenOp, op: op, pos: pos})
				continue
			}
			if v, ok := constnamed(text); ok {
				toks = append(toks, token{kind: tokenNum, num: v, pos: pos})
				continue
			}
			fn := funcnamed(text)
			if fn == fnNone {
				panic("calc: token pattern matched unknown name " + strconv.Quote(text))
			}
			toks = append(toks, token{kind: tokenFunc, fn: fn, pos: pos})
		}
	}
	if last < len(src) && p.strict {
		return nil, &LexError{Text: src[last:], Col: col}
	}
	return toks, nil
}

// unaryPos reports whether a minus sign following toks is a negation rather
// than a subtraction.
func unaryPos(toks []token) bool {
	if len(toks) == 0 {
		return true
	}
	switch toks[len(toks)-1].kind {
	case tokenOpen, tokenOp:
		return true
	default:
		return false
	}
}

// parsenum parses a number token. Numbers too large for a float64 become
// infinity.
func parsenum(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		panic("calc: invalid number: " + s + " (" + err.Error() + ")")
	}
	return f
}

// LexError indicates text that is not a token. It is returned only when
// parsing with the Strict option. It implements InputError.
type LexError struct {
	// Text is the unrecognized text.
	Text string
	// Col is the column of the start of Text in the expression with
	// whitespace removed.
	Col int
}

func (err *LexError) Error() string {
	return "invalid token at column " + strconv.Itoa(err.Col) + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}
