package calc_test

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/zephyrtronium/calc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "1", 1},
		{"precedence", "2 + 3 * 4", 14},
		{"brackets", "(2 + 3) * 4", 20},
		{"basic", "1 + 2 - 3 / 10 ", 2.7},
		{"pi", "2 + PI", 5.141592653589793},
		{"e", "2 * E", 5.43656365691809},
		{"exp", "exp(2.0)", 7.38905609893065},
		{"log10", "log10(100)", 2},
		{"log", "log(1000)", 3},
		{"log2", "2 + log2(8)", 5},
		{"ln", "ln(E^2)", 2},
		{"sqrt", "sqrt(16) + sqrt 9", 7},
		{"neg-one", "-1*1*-(2*3)", 6},
		{"double-neg", "-3--3", 0},
		{"neg-funcs", "-sin(45)--cos(45)-tan(-30)", -math.Sin(45) - (-math.Cos(45)) - math.Tan(-30)},
		{"abs", "abs(-sin(45) * tan(45) * cos(45))", 0.7240368080645851},
		{"arcs", "asin(-0.98803162)+acos(-0.98803162)+atan(-0.98803162)", 0.7914183067858805},
		{"unknown-func", "wxyz(-0.98803162)", -0.98803162},
		{"left-sub", "10 - 4 - 3", 3},
		{"left-div", "8 / 4 / 2", 1},
		{"left-pow", "2^3^2", 64},
		{"pow-neg", "2^-1", 0.5},
		{"nested", "((1 + 2) * (3 + 4)) / 7", 3},
		{"unopened", "2 + 3)", 5},
		{"surplus", "(2)(3)", 3},
		{"spaced-number", "1 2 . 5", 12.5},
		{"trailing-dot", "3. * 2", 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Eval(c.src)
			require.NoError(t, err)
			assert.InDelta(t, c.r, r, 1e-12)
		})
	}
}

func TestEvalRightAssocPow(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"pow", "2^3^2", 512},
		{"pow-pow-pow", "2^1^2^3", 2},
		{"mul-pow", "2*3^2", 18},
		{"pow-mul", "3^2*2", 18},
		{"sub", "10-4-3", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Eval(c.src, calc.RightAssocPow())
			require.NoError(t, err)
			assert.Equal(t, c.r, r)
		})
	}
}

func TestEvalIEEE(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		check func(float64) bool
	}{
		{"div-zero-zero", "0 / 0", math.IsNaN},
		{"div-zero", "1 / 0", func(x float64) bool { return math.IsInf(x, 1) }},
		{"div-neg-zero", "-1 / 0", func(x float64) bool { return math.IsInf(x, -1) }},
		{"sqrt-neg", "sqrt(-1)", math.IsNaN},
		{"ln-neg", "ln(-1)", math.IsNaN},
		{"ln-zero", "ln(0)", func(x float64) bool { return math.IsInf(x, -1) }},
		{"log-merged", "log 1000", func(x float64) bool { return math.IsInf(x, -1) }},
		{"asin", "asin(2)", math.IsNaN},
		{"acos", "acos(-2)", math.IsNaN},
		{"pow-neg-base", "(-8)^(1/3)", math.IsNaN},
		{"overflow", strings.Repeat("9", 400), func(x float64) bool { return math.IsInf(x, 1) }},
		{"exp-overflow", "exp(1000)", func(x float64) bool { return math.IsInf(x, 1) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Eval(c.src)
			require.NoError(t, err)
			assert.True(t, c.check(r), "%q gave %g", c.src, r)
		})
	}
}

func TestEvalError(t *testing.T) {
	cases := []struct {
		name string
		src  string
		// err is the expected error, compared with errors.Is when it is a
		// sentinel or with ObjectsAreEqual otherwise.
		err error
	}{
		{"empty", "", calc.ErrNoResult},
		{"blank", " \t ", calc.ErrNoResult},
		{"ident", "abc", calc.ErrNoResult},
		{"empty-brackets", "()", calc.ErrNoResult},
		{"unclosed", "(2 + 3", &calc.TokenError{Col: 1, Token: "("}},
		{"unclosed-inner", "2 * (3 + (4)", &calc.TokenError{Col: 3, Token: "("}},
		{"dangling-op", "2 +", &calc.OperandError{Col: 2, Op: "+"}},
		{"leading-op", "* 2", &calc.OperandError{Col: 1, Op: "*"}},
		{"minus", "-", &calc.OperandError{Col: 1, Op: "*"}},
		{"func-empty", "sqrt()", &calc.OperandError{Col: 1, Op: "sqrt", Func: true}},
		{"func-ident", "atan(hellow) * acos(-0.988031))", &calc.OperandError{Col: 1, Op: "atan", Func: true}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Eval(c.src)
			require.Error(t, err, "%q gave %g", c.src, r)
			assert.Zero(t, r)
			if errors.Is(c.err, calc.ErrNoResult) {
				assert.ErrorIs(t, err, calc.ErrNoResult)
				return
			}
			assert.Equal(t, c.err, err)
			var ierr calc.InputError
			require.ErrorAs(t, err, &ierr)
			assert.True(t, strings.HasPrefix(err.Error(), strconv.Itoa(ierr.Pos())+": "), "%q does not start with its position", err)
		})
	}
}

func TestEvalErrorMessages(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"", "invalid expression: no result on stack"},
		{"2+", "2: invalid expression: not enough values for operator +"},
		{"sqrt()", "1: invalid expression: not enough values for function sqrt"},
		{"(2+3", `1: invalid token "(" (bracket with no match)`},
	}
	for _, c := range cases {
		_, err := calc.Eval(c.src)
		require.Error(t, err)
		assert.Equal(t, c.msg, err.Error())
	}
	_, err := calc.Eval("2 + foo", calc.Strict())
	require.Error(t, err)
	assert.Equal(t, `invalid token at column 3: "foo"`, err.Error())
}

func TestEvalStrict(t *testing.T) {
	r, err := calc.Eval("sin(PI / 2) + log2(8)", calc.Strict())
	require.NoError(t, err)
	assert.InDelta(t, 4, r, 1e-12)

	_, err = calc.Eval("wxyz(-0.98803162)", calc.Strict())
	var lerr *calc.LexError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "wxyz", lerr.Text)
	assert.Equal(t, 1, lerr.Pos())
}

func TestExprReuse(t *testing.T) {
	e, err := calc.Parse("-sin(45)--cos(45)-tan(-30)")
	require.NoError(t, err)
	want, err := e.Eval()
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		r, err := e.Eval()
		require.NoError(t, err)
		require.Equal(t, want, r)
	}
	r, err := calc.Eval("-sin(45)--cos(45)-tan(-30)")
	require.NoError(t, err)
	assert.Equal(t, want, r)
}

func TestEvalConcurrent(t *testing.T) {
	srcs := []string{"2 + 3 * 4", "(2 + 3) * 4", "2 + PI", "-3--3", "abs(-sin(45) * tan(45) * cos(45))"}
	want := make([]float64, len(srcs))
	for i, src := range srcs {
		r, err := calc.Eval(src)
		require.NoError(t, err)
		want[i] = r
	}
	var g errgroup.Group
	for k := 0; k < 32; k++ {
		g.Go(func() error {
			for i, src := range srcs {
				r, err := calc.Eval(src)
				if err != nil {
					return err
				}
				if r != want[i] {
					return fmt.Errorf("%q gave %g, want %g", src, r, want[i])
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func BenchmarkEval(b *testing.B) {
	b.Run("parse", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			calc.Eval("-sin(45)--cos(45)-tan(-30)")
		}
	})
	b.Run("parsed", func(b *testing.B) {
		b.ReportAllocs()
		e, err := calc.Parse("-sin(45)--cos(45)-tan(-30)")
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < b.N; i++ {
			e.Eval()
		}
	})
}
