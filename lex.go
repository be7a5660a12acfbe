package calc

import (
	"regexp"
	"strings"
)

// tokenPattern recognizes one token at a time. Alternatives are ordered so
// that multi-character operators win over their single-character prefixes and
// the let keyword wins over a plain identifier.
var tokenPattern = regexp.MustCompile(`\*\*|//|let|\d+(?:\.\d+)?|[A-Za-z_][A-Za-z0-9_]*|[-+*/%(),=]`)

var (
	numberPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	identPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Tokenize splits an expression into its lexical tokens. A token is the
// literal text of a number, an identifier, the let keyword, an operator, a
// bracket, a comma, or =. Whitespace is removed before scanning, and
// characters that fit no token shape are skipped; the parser rejects the
// leftovers. Tokenize returns an *EmptyExpressionError if the expression is
// empty or only whitespace.
func Tokenize(expr string) ([]string, error) {
	if strings.TrimSpace(expr) == "" {
		return nil, &EmptyExpressionError{}
	}
	expr = strings.Join(strings.Fields(expr), "")
	return tokenPattern.FindAllString(expr, -1), nil
}

// IsNumber reports whether tok has the lexical shape of a numeric literal:
// digits with at most one decimal point, which must have digits on both
// sides.
func IsNumber(tok string) bool {
	return numberPattern.MatchString(tok)
}

// IsIdentifier reports whether tok has the lexical shape of an identifier: a
// letter or underscore followed by letters, digits, and underscores.
func IsIdentifier(tok string) bool {
	return identPattern.MatchString(tok)
}
