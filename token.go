package calc

import (
	"math"
	"strconv"
)

type token struct {
	kind tokenKind
	// num is the value of a tokenNum.
	num float64
	// op is the operator of a tokenOp.
	op operator
	// fn is the function of a tokenFunc.
	fn function
	// pos is the column of the token in the expression with whitespace
	// removed, starting at 1.
	pos int
}

func (t token) String() string {
	switch t.kind {
	case tokenNum:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case tokenOp:
		return t.op.String()
	case tokenFunc:
		return t.fn.String()
	case tokenOpen:
		return "("
	case tokenClose:
		return ")"
	default:
		return "$" + t.kind.String()
	}
}

// precedence is the binding strength of the token during conversion to
// postfix. Brackets and numbers have precedence 0.
func (t token) precedence() int {
	switch t.kind {
	case tokenOp:
		return t.op.precedence()
	case tokenFunc:
		return 4
	default:
		return 0
	}
}

// isOp reports whether the token is an operator or a function, i.e. anything
// that lives on the operator stack and is compared by precedence.
func (t token) isOp() bool {
	return t.kind == tokenOp || t.kind == tokenFunc
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a literal number or a resolved constant.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenFunc is the name of a unary function.
	tokenFunc
	// tokenOpen is (.
	tokenOpen
	// tokenClose is ).
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenFunc:
		return "Func"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// operator is one of the binary operators.
type operator int8

const (
	opNone operator = iota
	opAdd
	opSub
	opMul
	opDiv
	opPow
)

// opnamed gets the operator for its symbol. The result is opNone if s is not
// an operator.
func opnamed(s string) operator {
	switch s {
	case "+":
		return opAdd
	case "-":
		return opSub
	case "*":
		return opMul
	case "/":
		return opDiv
	case "^":
		return opPow
	default:
		return opNone
	}
}

func (op operator) String() string {
	switch op {
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opPow:
		return "^"
	default:
		return "operator(" + strconv.Itoa(int(op)) + ")"
	}
}

func (op operator) precedence() int {
	switch op {
	case opAdd, opSub:
		return 1
	case opMul, opDiv:
		return 2
	case opPow:
		return 3
	default:
		return 0
	}
}

// apply computes a op b. The second result is false if op is not a valid
// operator.
func (op operator) apply(a, b float64) (float64, bool) {
	switch op {
	case opAdd:
		return a + b, true
	case opSub:
		return a - b, true
	case opMul:
		return a * b, true
	case opDiv:
		return a / b, true
	case opPow:
		return math.Pow(a, b), true
	default:
		return 0, false
	}
}
