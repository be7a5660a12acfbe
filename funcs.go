package calc

import "math"

// Func is a builtin function over Numbers. The table of builtins is fixed;
// expressions cannot define new functions.
type Func interface {
	// Call evaluates the function on args. len(args) is a count for which
	// CanCall returned true.
	Call(args []Number) (Number, error)

	// CanCall reports whether the function accepts n arguments.
	CanCall(n int) bool
}

// globalfuncs is the builtin function table. sqrt, sin, cos, tan, log,
// log10, and exp always return floats, even for arguments like sqrt(16);
// abs, pow, max, and min return integers for integer arguments.
var globalfuncs = map[string]Func{
	"abs":   absFunc{},
	"sqrt":  monadic(math.Sqrt),
	"pow":   powFunc{},
	"max":   extremum{gt: true},
	"min":   extremum{},
	"sin":   monadic(math.Sin),
	"cos":   monadic(math.Cos),
	"tan":   monadic(math.Tan),
	"log":   logFunc{},
	"log10": monadic(math.Log10),
	"exp":   monadic(math.Exp),
}

// monadic wraps a float64 function of one variable into a Func. The result
// is always a float. A NaN or infinite result from a finite argument is
// reported as a DomainError.
type monadic func(float64) float64

func (f monadic) Call(args []Number) (Number, error) {
	x := args[0].Float64()
	r := f(x)
	if math.IsNaN(r) || (math.IsInf(r, 0) && !math.IsInf(x, 0)) {
		return Number{}, &DomainError{X: args[0]}
	}
	return Float(r), nil
}

func (f monadic) CanCall(n int) bool {
	return n == 1
}

// absFunc is the absolute value. It keeps its argument's tag.
type absFunc struct{}

func (absFunc) Call(args []Number) (Number, error) {
	n := args[0]
	if n.IsInt() {
		if v := n.Int64(); v < 0 {
			return Int(-v), nil
		}
		return n, nil
	}
	return Float(math.Abs(n.Float64())), nil
}

func (absFunc) CanCall(n int) bool {
	return n == 1
}

// powFunc is pow(base, exponent). Like the ** operator, it returns an
// integer for integer arguments with a non-negative exponent.
type powFunc struct{}

func (powFunc) Call(args []Number) (Number, error) {
	return args[0].pow(args[1]), nil
}

func (powFunc) CanCall(n int) bool {
	return n == 2
}

// extremum is max or min of one or more arguments. It returns the chosen
// argument, keeping its tag.
type extremum struct {
	gt bool
}

func (e extremum) Call(args []Number) (Number, error) {
	r := args[0]
	for _, a := range args[1:] {
		if e.gt == (a.Float64() > r.Float64()) && a.Float64() != r.Float64() {
			r = a
		}
	}
	return r, nil
}

func (e extremum) CanCall(n int) bool {
	return n >= 1
}

// logFunc is the natural logarithm, with an optional second argument giving
// the base: log(8, 2) is 3.
type logFunc struct{}

func (logFunc) Call(args []Number) (Number, error) {
	x := args[0].Float64()
	if x <= 0 {
		return Number{}, &DomainError{X: args[0], Func: "log"}
	}
	r := math.Log(x)
	if len(args) == 2 {
		b := args[1].Float64()
		if b <= 0 || b == 1 {
			return Number{}, &DomainError{X: args[1], Func: "log"}
		}
		r /= math.Log(b)
	}
	return Float(r), nil
}

func (logFunc) CanCall(n int) bool {
	return n == 1 || n == 2
}

// DomainError is an error from calling a builtin on an argument outside its
// domain, such as sqrt(-1).
type DomainError struct {
	// X is the out-of-domain argument.
	X Number
	// Func is a name identifying the function, when known.
	Func string
}

func (err *DomainError) Error() string {
	if err.Func == "" {
		return err.X.String() + " outside domain"
	}
	return err.X.String() + " outside domain of " + err.Func
}
