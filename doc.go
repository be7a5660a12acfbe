// Package calc implements a calculator over arithmetic expressions with
// variables and builtin functions.
//
// An expression is evaluated in a single pass: it is split into tokens and
// parsed by recursive descent, computing values as the grammar is recognized
// rather than building a syntax tree. Values are integers or floats.
// Arithmetic on two integers stays integral, except that true division /
// always yields a float, while // (floor division) and % accept only
// integers. ** is exponentiation and binds right to left: 2**3**2 is 512.
//
// "let name = expr" assigns a variable, which later expressions given to the
// same Calculator can reference. The assignment is itself an expression and
// evaluates to the assigned value.
package calc
