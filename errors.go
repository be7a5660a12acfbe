package calc

import "strconv"

// EmptyExpressionError is an error indicating an expression with no tokens.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "empty expression"
}

// UnexpectedEndError is an error indicating that the expression ended where
// the parser required another token.
type UnexpectedEndError struct{}

func (err *UnexpectedEndError) Error() string {
	return "unexpected end of expression"
}

// TokenError is an error indicating a token the parser could not accept.
type TokenError struct {
	// Expected is the token the parser required, or the empty string if any
	// term could have appeared.
	Expected string
	// Found is the token that appeared instead.
	Found string
}

func (err *TokenError) Error() string {
	if err.Expected == "" {
		return "unexpected token " + strconv.Quote(err.Found)
	}
	return "expected " + strconv.Quote(err.Expected) + ", found " + strconv.Quote(err.Found)
}

// TrailingTokenError is an error indicating tokens left over after a
// complete expression.
type TrailingTokenError struct {
	// Found is the first unconsumed token.
	Found string
}

func (err *TrailingTokenError) Error() string {
	return "unexpected token " + strconv.Quote(err.Found) + " after expression"
}

// NumberError is an error indicating a token that could not be converted to
// a number.
type NumberError struct {
	// Text is the offending token.
	Text string
}

func (err *NumberError) Error() string {
	return "invalid number " + strconv.Quote(err.Text)
}

// IdentError is an error indicating an invalid assignment target after let.
type IdentError struct {
	// Name is the offending token, or the empty string if the expression
	// ended instead.
	Name string
}

func (err *IdentError) Error() string {
	if err.Name == "" {
		return "missing variable name after let"
	}
	return "cannot assign to " + strconv.Quote(err.Name)
}

// NameError is an error from a reference to a variable that is missing from
// the environment.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}

// UnknownFuncError is an error from a call to a name that is not a builtin
// function.
type UnknownFuncError struct {
	// Name is the name that was called.
	Name string
}

func (err *UnknownFuncError) Error() string {
	return "unknown function: " + strconv.Quote(err.Name)
}

// TypeError is an error from applying an integer-only operator to a float.
type TypeError struct {
	// Op is the operator, // or %.
	Op string
}

func (err *TypeError) Error() string {
	return "operator " + err.Op + " is valid only for integers"
}

// ZeroDivisionError is an error from dividing by zero. Op distinguishes
// which of /, //, and % failed.
type ZeroDivisionError struct {
	// Op is the operator whose divisor was zero.
	Op string
}

func (err *ZeroDivisionError) Error() string {
	switch err.Op {
	case "//":
		return "integer division by zero"
	case "%":
		return "modulo by zero"
	default:
		return "division by zero"
	}
}

// ArityError is an error indicating a function call with a number of
// arguments the function does not accept.
type ArityError struct {
	// Func is the function that was called.
	Func string
	// Len is the number of arguments in the call.
	Len int
}

func (err *ArityError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}

// FuncError wraps an error raised by a builtin function during a call. It
// unwraps to the builtin's own error.
type FuncError struct {
	// Func is the name of the builtin.
	Func string
	// Err is the builtin's error.
	Err error
}

func (err *FuncError) Error() string {
	return "calling " + err.Func + ": " + err.Err.Error()
}

func (err *FuncError) Unwrap() error {
	return err.Err
}
