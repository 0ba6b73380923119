// Package calc implements a floating-point calculator for arithmetic
// expressions.
//
// Expressions are written the usual way: "2 + 3*4", "(2+3) * 4",
// "-sin(PI/4) + sqrt 2". The operators are + - * / ^, the functions are sin,
// cos, tan, asin, acos, atan, exp, ln, log, log2, log10, abs, and sqrt, and
// PI and E name the usual constants. Whitespace is removed before anything
// else, even inside numbers, so a function name can absorb the digits that
// follow it: "log 1000" reads as log10(00), which is -Inf. Use brackets, as in
// "log(1000)".
//
// Evaluation happens in three steps. The lexer turns the text into tokens,
// the parser reorders the tokens into reverse Polish notation using the
// shunting-yard algorithm, and the evaluator runs the result on a stack of
// float64 values. Results follow IEEE 754, so 0/0 is NaN and sqrt(-1) is
// NaN; neither is an error.
//
// Text the lexer does not recognize is skipped, so "wxyz(2)" is just 2. The
// Strict parse option reports such text as an error instead.
//
package calc
