package calc

import (
	"math"
	"strconv"
)

// function is one of the unary functions the lexer recognizes.
type function int8

const (
	fnNone function = iota
	fnSin
	fnCos
	fnTan
	fnAsin
	fnAcos
	fnAtan
	fnExp
	fnLn
	fnLog
	fnLog2
	fnLog10
	fnAbs
	fnSqrt
)

// funcnames lists the names of all functions. Names which are prefixes of
// other names come after the longer names so that the lexer's pattern prefers
// the longest match.
var funcnames = [...]string{
	"asin", "acos", "atan",
	"sin", "cos", "tan",
	"exp", "ln", "log10", "log2", "log",
	"abs", "sqrt",
}

// funcnamed gets the function for its name. The result is fnNone if there is
// no such function.
func funcnamed(s string) function {
	switch s {
	case "sin":
		return fnSin
	case "cos":
		return fnCos
	case "tan":
		return fnTan
	case "asin":
		return fnAsin
	case "acos":
		return fnAcos
	case "atan":
		return fnAtan
	case "exp":
		return fnExp
	case "ln":
		return fnLn
	case "log":
		return fnLog
	case "log2":
		return fnLog2
	case "log10":
		return fnLog10
	case "abs":
		return fnAbs
	case "sqrt":
		return fnSqrt
	default:
		return fnNone
	}
}

func (fn function) String() string {
	switch fn {
	case fnSin:
		return "sin"
	case fnCos:
		return "cos"
	case fnTan:
		return "tan"
	case fnAsin:
		return "asin"
	case fnAcos:
		return "acos"
	case fnAtan:
		return "atan"
	case fnExp:
		return "exp"
	case fnLn:
		return "ln"
	case fnLog:
		return "log"
	case fnLog2:
		return "log2"
	case fnLog10:
		return "log10"
	case fnAbs:
		return "abs"
	case fnSqrt:
		return "sqrt"
	default:
		return "function(" + strconv.Itoa(int(fn)) + ")"
	}
}

// apply computes fn(x). Trigonometric functions work in radians, and both log
// and log10 are base 10. Arguments outside a function's domain give NaN. The
// second result is false if fn is not a valid function.
func (fn function) apply(x float64) (float64, bool) {
	switch fn {
	case fnSin:
		return math.Sin(x), true
	case fnCos:
		return math.Cos(x), true
	case fnTan:
		return math.Tan(x), true
	case fnAsin:
		return math.Asin(x), true
	case fnAcos:
		return math.Acos(x), true
	case fnAtan:
		return math.Atan(x), true
	case fnExp:
		return math.Exp(x), true
	case fnLn:
		return math.Log(x), true
	case fnLog, fnLog10:
		return math.Log10(x), true
	case fnLog2:
		return math.Log2(x), true
	case fnAbs:
		return math.Abs(x), true
	case fnSqrt:
		return math.Sqrt(x), true
	default:
		return 0, false
	}
}

// constnamed gets the value of a named constant.
func constnamed(s string) (float64, bool) {
	switch s {
	case "PI":
		return math.Pi, true
	case "E":
		return math.E, true
	default:
		return 0, false
	}
}
