package calc

import (
	"errors"
	"testing"
)

func TestParseNumber(t *testing.T) {
	cases := []struct {
		tok   string
		want  Number
		isInt bool
	}{
		{"0", Int(0), true},
		{"42", Int(42), true},
		{"007", Int(7), true},
		{"2.0", Float(2), false},
		{"1.5", Float(1.5), false},
		{"0.25", Float(0.25), false},
	}
	for _, c := range cases {
		got, err := ParseNumber(c.tok)
		if err != nil {
			t.Errorf("parsing %q: unexpected error %v", c.tok, err)
			continue
		}
		if got != c.want {
			t.Errorf("parsing %q: want %v, got %v", c.tok, c.want, got)
		}
		if got.IsInt() != c.isInt {
			t.Errorf("parsing %q: IsInt = %v, want %v", c.tok, got.IsInt(), c.isInt)
		}
	}
}

func TestParseNumberOverflow(t *testing.T) {
	// An integer literal too large for int64 falls back to a float.
	n, err := ParseNumber("99999999999999999999999999")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if n.IsInt() {
		t.Errorf("%v should be a float", n)
	}
	if n.Float64() != 1e26 {
		t.Errorf("want 1e26, got %v", n)
	}
}

func TestParseNumberInvalid(t *testing.T) {
	for _, tok := range []string{"", ".", "1.2.3", "x", "1x"} {
		_, err := ParseNumber(tok)
		if err == nil {
			t.Errorf("parsing %q: no error", tok)
			continue
		}
		if !errors.As(err, new(*NumberError)) {
			t.Errorf("parsing %q: error %#v is not *NumberError", tok, err)
		}
	}
}

func TestNumberString(t *testing.T) {
	cases := []struct {
		n    Number
		want string
	}{
		{Int(0), "0"},
		{Int(-7), "-7"},
		{Int(2), "2"},
		// floats always show a decimal point or exponent
		{Float(2), "2.0"},
		{Float(-0.5), "-0.5"},
		{Float(1e30), "1e+30"},
	}
	for _, c := range cases {
		if got := c.n.String(); got != c.want {
			t.Errorf("formatting %#v: want %q, got %q", c.n, c.want, got)
		}
	}
}

func TestFloorDivision(t *testing.T) {
	cases := []struct {
		a, b, q, r int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{6, 3, 2, 0},
		{-6, 3, -2, 0},
	}
	for _, c := range cases {
		q, err := Int(c.a).intDiv(Int(c.b))
		if err != nil {
			t.Errorf("%d // %d: unexpected error %v", c.a, c.b, err)
		} else if q != Int(c.q) {
			t.Errorf("%d // %d: want %d, got %v", c.a, c.b, c.q, q)
		}
		r, err := Int(c.a).mod(Int(c.b))
		if err != nil {
			t.Errorf("%d %% %d: unexpected error %v", c.a, c.b, err)
		} else if r != Int(c.r) {
			t.Errorf("%d %% %d: want %d, got %v", c.a, c.b, c.r, r)
		}
	}
}

func TestIpow(t *testing.T) {
	cases := []struct {
		base, exp, want int64
	}{
		{2, 0, 1},
		{0, 0, 1},
		{2, 10, 1024},
		{-2, 3, -8},
		{-2, 4, 16},
		{3, 5, 243},
		{1, 63, 1},
	}
	for _, c := range cases {
		if got := ipow(c.base, c.exp); got != c.want {
			t.Errorf("ipow(%d, %d) = %d, want %d", c.base, c.exp, got, c.want)
		}
	}
}
