package calc

import "sort"

// Calculator evaluates arithmetic expressions. It keeps a variable
// environment across calls to Calculate, so an expression can refer to names
// assigned by earlier expressions. The builtin function table is fixed at
// construction. It is not safe to use a Calculator concurrently.
type Calculator struct {
	vars  map[string]Number
	funcs map[string]Func

	// tokens and pos are the parsing state of the current Calculate call.
	tokens []string
	pos    int
}

// New creates a calculator with an empty variable environment and the
// builtin functions.
func New() *Calculator {
	return &Calculator{
		vars:  make(map[string]Number),
		funcs: globalfuncs,
	}
}

// Calculate tokenizes and evaluates an expression and returns its value.
// Errors are the types in this package; Calculate fails if any tokens remain
// after a complete expression. Assignments with let apply to the environment
// immediately as their right-hand sides are evaluated, so a later error in
// the same expression does not undo them. Parsing recurses for nested
// parentheses and right-associative operators, so very deeply nested input
// can exhaust the stack.
func (c *Calculator) Calculate(expr string) (Number, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return Number{}, err
	}
	c.tokens, c.pos = tokens, 0
	r, err := c.assignment()
	if err != nil {
		return Number{}, err
	}
	if c.pos != len(c.tokens) {
		return Number{}, &TrailingTokenError{Found: c.tokens[c.pos]}
	}
	return r, nil
}

// Variables returns a copy of the variable environment.
func (c *Calculator) Variables() map[string]Number {
	m := make(map[string]Number, len(c.vars))
	for k, v := range c.vars {
		m[k] = v
	}
	return m
}

// Variable returns the value of a variable and whether it is defined.
func (c *Calculator) Variable(name string) (Number, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// ClearVariables removes every variable from the environment. The builtin
// functions are unaffected.
func (c *Calculator) ClearVariables() {
	c.vars = make(map[string]Number)
}

// Functions returns the names of the builtin functions in sorted order.
func (c *Calculator) Functions() []string {
	names := make([]string, 0, len(c.funcs))
	for k := range c.funcs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// current returns the token at the cursor, or false at the end of the
// expression.
func (c *Calculator) current() (string, bool) {
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos], true
	}
	return "", false
}

// consume advances past the current token and returns it. If expected is
// non-empty, the current token must equal it.
func (c *Calculator) consume(expected string) (string, error) {
	tok, ok := c.current()
	if !ok {
		return "", &UnexpectedEndError{}
	}
	if expected != "" && tok != expected {
		return "", &TokenError{Expected: expected, Found: tok}
	}
	c.pos++
	return tok, nil
}

// assignment is the grammar root: "let" IDENT "=" assignment, or an
// additive expression. The right-hand side recurses into assignment itself,
// so let x = let y = 5 assigns both names and right-associates.
func (c *Calculator) assignment() (Number, error) {
	if tok, ok := c.current(); !ok || tok != "let" {
		return c.additive()
	}
	c.pos++
	name, ok := c.current()
	if !ok || !IsIdentifier(name) {
		return Number{}, &IdentError{Name: name}
	}
	c.pos++
	if _, err := c.consume("="); err != nil {
		return Number{}, err
	}
	v, err := c.assignment()
	if err != nil {
		return Number{}, err
	}
	c.vars[name] = v
	return v, nil
}

// additive parses a left-associative chain of + and - over multiplicative
// terms.
func (c *Calculator) additive() (Number, error) {
	r, err := c.multiplicative()
	if err != nil {
		return Number{}, err
	}
	for {
		tok, ok := c.current()
		if !ok || (tok != "+" && tok != "-") {
			return r, nil
		}
		c.pos++
		rhs, err := c.multiplicative()
		if err != nil {
			return Number{}, err
		}
		if tok == "+" {
			r = r.add(rhs)
		} else {
			r = r.sub(rhs)
		}
	}
}

// multiplicative parses a left-associative chain of *, /, //, and % over
// power terms.
func (c *Calculator) multiplicative() (Number, error) {
	r, err := c.power()
	if err != nil {
		return Number{}, err
	}
	for {
		tok, ok := c.current()
		if !ok {
			return r, nil
		}
		switch tok {
		case "*", "/", "//", "%":
			c.pos++
		default:
			return r, nil
		}
		rhs, err := c.power()
		if err != nil {
			return Number{}, err
		}
		switch tok {
		case "*":
			r = r.mul(rhs)
		case "/":
			r, err = r.quo(rhs)
		case "//":
			r, err = r.intDiv(rhs)
		case "%":
			r, err = r.mod(rhs)
		}
		if err != nil {
			return Number{}, err
		}
	}
}

// power parses exponentiation, which is right-associative: 2**3**2 is
// 2**(3**2).
func (c *Calculator) power() (Number, error) {
	l, err := c.unary()
	if err != nil {
		return Number{}, err
	}
	if tok, ok := c.current(); !ok || tok != "**" {
		return l, nil
	}
	c.pos++
	r, err := c.power()
	if err != nil {
		return Number{}, err
	}
	return l.pow(r), nil
}

// unary parses any number of prefix signs applied to a primary term, so
// --x and +-x are valid.
func (c *Calculator) unary() (Number, error) {
	tok, ok := c.current()
	if !ok || (tok != "+" && tok != "-") {
		return c.primary()
	}
	c.pos++
	v, err := c.unary()
	if err != nil {
		return Number{}, err
	}
	if tok == "-" {
		v = v.neg()
	}
	return v, nil
}

// primary parses a parenthesized expression, a numeric literal, a function
// call, or a variable reference.
func (c *Calculator) primary() (Number, error) {
	tok, ok := c.current()
	if !ok {
		return Number{}, &UnexpectedEndError{}
	}
	switch {
	case tok == "(":
		c.pos++
		v, err := c.assignment()
		if err != nil {
			return Number{}, err
		}
		if _, err := c.consume(")"); err != nil {
			return Number{}, err
		}
		return v, nil
	case IsNumber(tok):
		c.pos++
		return ParseNumber(tok)
	case IsIdentifier(tok):
		c.pos++
		if next, ok := c.current(); ok && next == "(" {
			return c.call(tok)
		}
		v, ok := c.vars[tok]
		if !ok {
			return Number{}, &NameError{Name: tok}
		}
		return v, nil
	default:
		return Number{}, &TokenError{Found: tok}
	}
}

// call parses the parenthesized argument list of a function call and
// invokes the named builtin. Arguments are full expressions separated by
// commas; the list may be empty.
func (c *Calculator) call(name string) (Number, error) {
	fn := c.funcs[name]
	if fn == nil {
		return Number{}, &UnknownFuncError{Name: name}
	}
	if _, err := c.consume("("); err != nil {
		return Number{}, err
	}
	var args []Number
	if tok, ok := c.current(); !ok || tok != ")" {
		for {
			v, err := c.assignment()
			if err != nil {
				return Number{}, err
			}
			args = append(args, v)
			if tok, ok := c.current(); !ok || tok != "," {
				break
			}
			c.pos++
		}
	}
	if _, err := c.consume(")"); err != nil {
		return Number{}, err
	}
	if !fn.CanCall(len(args)) {
		return Number{}, &FuncError{Func: name, Err: &ArityError{Func: name, Len: len(args)}}
	}
	r, err := fn.Call(args)
	if err != nil {
		return Number{}, &FuncError{Func: name, Err: err}
	}
	return r, nil
}
