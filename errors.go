package calc

import (
	"errors"
	"strconv"
)

// ErrNoResult is the error when evaluating an expression leaves nothing on
// the stack, e.g. because the input was empty or contained no tokens.
var ErrNoResult = errors.New("invalid expression: no result on stack")

// OperandError is an error indicating an operator or function with too few
// values to operate on. It implements InputError.
type OperandError struct {
	// Col is the position of the operator or function.
	Col int
	// Op is the operator or function name.
	Op string
	// Func is whether Op is a function.
	Func bool
}

func (err *OperandError) Error() string {
	s := "operator"
	if err.Func {
		s = "function"
	}
	return errpos(err.Col, "invalid expression: not enough values for "+s+" "+err.Op)
}

func (err *OperandError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a bracket that survived conversion to
// postfix, which happens when an open bracket has no close bracket. It
// implements InputError.
type TokenError struct {
	// Col is the position of the bracket.
	Col int
	// Token is the bracket.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "invalid token "+strconv.Quote(err.Token)+" (bracket with no match)")
}

func (err *TokenError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator the evaluator does not
// understand. The lexer only produces known operators, so this indicates a
// bug. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// FunctionError is an error indicating a function the evaluator does not
// understand. Like OperatorError, it indicates a bug. It implements
// InputError.
type FunctionError struct {
	// Col is the position of the function name.
	Col int
	// Func is the function that was not understood.
	Func string
}

func (err *FunctionError) Error() string {
	return errpos(err.Col, "unknown function "+strconv.Quote(err.Func))
}

func (err *FunctionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input except ErrNoResult implements InputError.
type InputError interface {
	error
	// Pos returns the column of the token that caused the error in the
	// expression with whitespace removed.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*FunctionError)(nil)
)
