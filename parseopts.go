package calc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	strictopt   struct{}
	rightpowopt struct{}
)

// parsectx holds the settings for a single parse.
type parsectx struct {
	// strict indicates that unrecognized text is an error rather than
	// skipped.
	strict bool
	// rightpow indicates that ^ is right-associative.
	rightpow bool
}

// Strict makes the parser return a *LexError for any text that is not a
// token, e.g. an unknown function name. By default, such text is skipped, so
// "wxyz(2)" evaluates to 2.
func Strict() ParseOption {
	return strictopt{}
}

func (strictopt) parseOption(p parsectx) parsectx {
	p.strict = true
	return p
}

// RightAssocPow makes exponentiation group right to left, so that "2^3^2" is
// 2^9 = 512. By default, every operator groups left to right, and "2^3^2" is
// 8^2 = 64.
func RightAssocPow() ParseOption {
	return rightpowopt{}
}

func (rightpowopt) parseOption(p parsectx) parsectx {
	p.rightpow = true
	return p
}

func newparsectx(opts []ParseOption) parsectx {
	var p parsectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}
