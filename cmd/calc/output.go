package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

// printer writes results, remembering the first write error.
type printer struct {
	w     io.Writer
	verb  string
	value *color.Color
	fail  *color.Color
	err   error
}

func newPrinter(w io.Writer, verb, mode string) *printer {
	p := &printer{
		w:     w,
		verb:  verb,
		value: color.New(color.FgGreen),
		fail:  color.New(color.FgRed, color.Bold),
	}
	if useColor(w, mode) {
		p.value.EnableColor()
		p.fail.EnableColor()
	} else {
		p.value.DisableColor()
		p.fail.DisableColor()
	}
	return p
}

// useColor resolves a color mode of auto, on, or off for w.
func useColor(w io.Writer, mode string) bool {
	switch mode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && !color.NoColor && term.IsTerminal(int(f.Fd()))
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) result(src string, r float64) {
	p.printf("Result of '%s' = %s\n", src, p.value.Sprint(fmt.Sprintf(p.verb, r)))
}

func (p *printer) failure(err error) {
	p.printf("%s %v\n", p.fail.Sprint("Error:"), err)
}

func (p *printer) postfix(src string, e *calc.Expr) {
	p.printf("Postfix of '%s' = %v\n", src, e)
}
