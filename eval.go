package calc

// Eval evaluates the expression. Each call uses its own stack, so an Expr may
// be evaluated any number of times, including concurrently.
//
// The result may be NaN or infinite; division by zero and arguments outside a
// function's domain are not errors. If the expression leaves more than one
// value on the stack, the result is the last one.
func (e *Expr) Eval() (float64, error) {
	stack := make([]float64, 0, len(e.rpn))
	for _, tok := range e.rpn {
		switch tok.kind {
		case tokenNum:
			stack = append(stack, tok.num)
		case tokenOp:
			if len(stack) < 2 {
				return 0, &OperandError{Col: tok.pos, Op: tok.op.String()}
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			r, ok := tok.op.apply(a, b)
			if !ok {
				return 0, &OperatorError{Col: tok.pos, Operator: tok.op.String()}
			}
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = r
		case tokenFunc:
			if len(stack) < 1 {
				return 0, &OperandError{Col: tok.pos, Op: tok.fn.String(), Func: true}
			}
			r, ok := tok.fn.apply(stack[len(stack)-1])
			if !ok {
				return 0, &FunctionError{Col: tok.pos, Func: tok.fn.String()}
			}
			stack[len(stack)-1] = r
		case tokenOpen, tokenClose:
			return 0, &TokenError{Col: tok.pos, Token: tok.String()}
		default:
			panic("calc: invalid token in postfix expression: " + tok.String())
		}
	}
	if len(stack) == 0 {
		return 0, ErrNoResult
	}
	return stack[len(stack)-1], nil
}

// Eval is a shortcut to parse and evaluate an expression.
func Eval(src string, opts ...ParseOption) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}
