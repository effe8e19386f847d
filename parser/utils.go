package parser

import (
	"strconv"
	"strings"

	"github.com/wippyai/water/ast"
)

// ParseIdentifier parses a '$'-prefixed identifier and returns it
// interned, without the sigil. Does not eat leading whitespace.
func ParseIdentifier(input string) (ast.Symbol, string, error) {
	return Context("identifier", func(input string) (ast.Symbol, string, error) {
		rest, err := tag(input, "$")
		if err != nil {
			return ast.Symbol{}, input, err
		}
		n := 0
		for n < len(rest) && isIdentChar(rest[n]) {
			n++
		}
		if n == 0 {
			return ast.Symbol{}, input, expected(rest, "identifier character")
		}
		return ast.Intern(rest[:n]), rest[n:], nil
	})(input)
}

// The textual format's token rules: ASCII alphanumerics plus a fixed
// punctuation set.
func isIdentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '*', '+', '-', '.', '/', ':',
		'<', '=', '>', '?', '@', '\\', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

// ParseType parses one of the four numeric value types. Does not eat
// leading whitespace.
func ParseType(input string) (ast.NumType, string, error) {
	return Context("type", Alt(
		keyword("i32", ast.I32),
		keyword("i64", ast.I64),
		keyword("f32", ast.F32),
		keyword("f64", ast.F64),
	))(input)
}

func keyword[T any](lit string, v T) Rule[T] {
	return func(input string) (T, string, error) {
		rest, err := tag(input, lit)
		if err != nil {
			var zero T
			return zero, input, err
		}
		return v, rest, nil
	}
}

// ParseIndex parses an index, either symbolic or numeric. Does not eat
// leading whitespace.
func ParseIndex(input string) (ast.Index, string, error) {
	if sym, rest, err := ParseIdentifier(input); err == nil {
		return ast.SymIndex{Name: sym}, rest, nil
	}
	n, rest, err := parseInt(input, 64)
	if err != nil {
		return nil, input, expected(input, "numerical index or identifier")
	}
	return ast.NumIndex(n), rest, nil
}

// ParseString parses a double-quoted string literal. Backslash escapes
// any following character; the empty string is valid. The content is
// returned raw, escapes included.
func ParseString(input string) (string, string, error) {
	rest, err := tag(input, `"`)
	if err != nil {
		return "", input, expected(input, "string")
	}
	i := 0
	for i < len(rest) {
		switch rest[i] {
		case '"':
			return rest[:i], rest[i+1:], nil
		case '\\':
			if i+1 >= len(rest) {
				return "", input, expected(input, "terminated string")
			}
			i += 2
		default:
			i++
		}
	}
	return "", input, expected(input, "terminated string")
}

// parseInt scans an optionally signed decimal integer of the given bit
// width.
func parseInt(input string, bits int) (int64, string, error) {
	n := 0
	if n < len(input) && (input[n] == '-' || input[n] == '+') {
		n++
	}
	start := n
	for n < len(input) && input[n] >= '0' && input[n] <= '9' {
		n++
	}
	if n == start {
		return 0, input, expected(input, "integer")
	}
	v, err := strconv.ParseInt(strings.TrimPrefix(input[:n], "+"), 10, bits)
	if err != nil {
		return 0, input, expected(input, "integer")
	}
	return v, input[n:], nil
}

// parseFloat scans a decimal floating-point literal: sign, digits,
// optional fraction, optional exponent.
func parseFloat(input string) (float64, string, error) {
	n := 0
	if n < len(input) && (input[n] == '-' || input[n] == '+') {
		n++
	}
	digits := 0
	for n < len(input) && input[n] >= '0' && input[n] <= '9' {
		n++
		digits++
	}
	if n < len(input) && input[n] == '.' {
		n++
		for n < len(input) && input[n] >= '0' && input[n] <= '9' {
			n++
			digits++
		}
	}
	if digits == 0 {
		return 0, input, expected(input, "number")
	}
	if n < len(input) && (input[n] == 'e' || input[n] == 'E') {
		m := n + 1
		if m < len(input) && (input[m] == '-' || input[m] == '+') {
			m++
		}
		expDigits := 0
		for m < len(input) && input[m] >= '0' && input[m] <= '9' {
			m++
			expDigits++
		}
		if expDigits > 0 {
			n = m
		}
	}
	v, err := strconv.ParseFloat(input[:n], 64)
	if err != nil {
		return 0, input, expected(input, "number")
	}
	return v, input[n:], nil
}
