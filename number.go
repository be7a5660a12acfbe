package calc

import (
	"math"
	"strconv"
	"strings"
)

// Number is an arithmetic value that is either an integer or a float. The
// zero Number is the float 0.
type Number struct {
	i     int64
	f     float64
	isInt bool
}

// Int returns an integer-tagged Number.
func Int(i int64) Number {
	return Number{i: i, isInt: true}
}

// Float returns a float-tagged Number.
func Float(f float64) Number {
	return Number{f: f}
}

// IsInt reports whether n is an integer.
func (n Number) IsInt() bool {
	return n.isInt
}

// Int64 returns the value of n as an int64, truncating if n is a float.
func (n Number) Int64() int64 {
	if n.isInt {
		return n.i
	}
	return int64(n.f)
}

// Float64 returns the value of n as a float64.
func (n Number) Float64() float64 {
	if n.isInt {
		return float64(n.i)
	}
	return n.f
}

// String formats n. Integers are formatted without a decimal point and
// floats always with one, so 2 and 2.0 remain distinguishable.
func (n Number) String() string {
	if n.isInt {
		return strconv.FormatInt(n.i, 10)
	}
	if math.IsInf(n.f, 0) || math.IsNaN(n.f) {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// ParseNumber converts a numeric token into a Number. Tokens containing a
// decimal point become floats and all others become integers; an integer
// token too large for int64 falls back to a float.
func ParseNumber(tok string) (Number, error) {
	if strings.Contains(tok, ".") {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Number{}, &NumberError{Text: tok}
		}
		return Float(f), nil
	}
	i, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Number{}, &NumberError{Text: tok}
		}
		return Float(f), nil
	}
	return Int(i), nil
}

func (n Number) add(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i + m.i)
	}
	return Float(n.Float64() + m.Float64())
}

func (n Number) sub(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i - m.i)
	}
	return Float(n.Float64() - m.Float64())
}

func (n Number) mul(m Number) Number {
	if n.isInt && m.isInt {
		return Int(n.i * m.i)
	}
	return Float(n.Float64() * m.Float64())
}

func (n Number) neg() Number {
	if n.isInt {
		return Int(-n.i)
	}
	return Float(-n.f)
}

// quo is true division. The result is always a float, even for two integer
// operands with an integral quotient.
func (n Number) quo(m Number) (Number, error) {
	if m.Float64() == 0 {
		return Number{}, &ZeroDivisionError{Op: "/"}
	}
	return Float(n.Float64() / m.Float64()), nil
}

// intDiv is floor division. Both operands must be integers, and the
// quotient rounds toward negative infinity: -7 // 2 is -4.
func (n Number) intDiv(m Number) (Number, error) {
	if m.Float64() == 0 {
		return Number{}, &ZeroDivisionError{Op: "//"}
	}
	if !n.isInt || !m.isInt {
		return Number{}, &TypeError{Op: "//"}
	}
	q := n.i / m.i
	if n.i%m.i != 0 && (n.i < 0) != (m.i < 0) {
		q--
	}
	return Int(q), nil
}

// mod is the floored modulo matching intDiv: the result has the sign of the
// divisor. Both operands must be integers.
func (n Number) mod(m Number) (Number, error) {
	if m.Float64() == 0 {
		return Number{}, &ZeroDivisionError{Op: "%"}
	}
	if !n.isInt || !m.isInt {
		return Number{}, &TypeError{Op: "%"}
	}
	r := n.i % m.i
	if r != 0 && (r < 0) != (m.i < 0) {
		r += m.i
	}
	return Int(r), nil
}

// pow is exponentiation. The result is an integer for integer operands with
// a non-negative exponent, and a float otherwise.
func (n Number) pow(m Number) Number {
	if n.isInt && m.isInt && m.i >= 0 {
		return Int(ipow(n.i, m.i))
	}
	return Float(math.Pow(n.Float64(), m.Float64()))
}

// ipow is exponentiation by squaring. ipow(0, 0) is 1.
func ipow(base, exp int64) int64 {
	r := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			r *= base
		}
		base *= base
		exp >>= 1
	}
	return r
}
