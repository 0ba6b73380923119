// Command calc evaluates arithmetic expressions.
//
// Each argument is one expression. With no arguments, or with -in, calc
// reads one expression per line instead. Expressions which start with a
// minus sign must follow "--" so they aren't read as flags:
//
//	calc '2 + 3 * 4' -- -3--3
//
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
