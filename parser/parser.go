// Package parser turns WebAssembly text format source into the AST of
// package ast.
//
// Rules are small composable functions: each consumes a
// whitespace-normalized prefix of its input and returns the parsed
// value plus the remaining input, or a *SyntaxError. Failures come in
// two strengths. A plain failure consumed nothing meaningful and lets
// an enclosing Alt try its next alternative. A committed failure means
// a structural marker already matched (an opening parenthesis plus the
// form's keyword) but a required continuation did not, so sibling
// alternatives must not be tried; these carry the trail of enclosing
// rules for error reporting.
package parser

import (
	"fmt"
	"strings"
)

// Rule is a parsing rule: it returns the parsed value and the
// remaining input, or a *SyntaxError.
type Rule[T any] func(input string) (T, string, error)

// SyntaxError describes a failed parse at a specific point in the
// input, with the trail of grammar rules that were active.
type SyntaxError struct {
	// Remaining is the unconsumed input at the point of failure.
	Remaining string
	// Trail lists the enclosing rule contexts, innermost first.
	Trail []string
	// Expected names what the failing rule was looking for.
	Expected string

	committed bool
}

func (e *SyntaxError) Error() string {
	var b strings.Builder
	b.WriteString("expected ")
	b.WriteString(e.Expected)
	if len(e.Trail) > 0 {
		b.WriteString(" in ")
		for i := len(e.Trail) - 1; i >= 0; i-- {
			b.WriteString(e.Trail[i])
			if i > 0 {
				b.WriteString(" > ")
			}
		}
	}
	b.WriteString(" at ")
	b.WriteString(quoteNear(e.Remaining))
	return b.String()
}

// Committed reports whether the failure happened after a confirmed
// structural marker, making it unrecoverable for Alt.
func (e *SyntaxError) Committed() bool { return e.committed }

func quoteNear(s string) string {
	if s == "" {
		return "end of input"
	}
	if len(s) > 24 {
		s = s[:24]
	}
	return fmt.Sprintf("%q", s)
}

func expected(input, what string) *SyntaxError {
	return &SyntaxError{Remaining: input, Expected: what}
}

// Render formats err against the source it came from, with line and
// column information. Non-SyntaxError values render as err.Error().
func Render(err error, source string) string {
	se, ok := err.(*SyntaxError)
	if !ok {
		return err.Error()
	}
	offset := len(source) - len(se.Remaining)
	if offset < 0 || offset > len(source) {
		return se.Error()
	}
	line, col := 1, 1
	for _, r := range source[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return fmt.Sprintf("%d:%d: %s", line, col, se.Error())
}

// Context wraps a rule so its failures carry label in their trail.
func Context[T any](label string, rule Rule[T]) Rule[T] {
	return func(input string) (T, string, error) {
		v, rest, err := rule(input)
		if err != nil {
			if se, ok := err.(*SyntaxError); ok {
				se.Trail = append(se.Trail, label)
			}
		}
		return v, rest, err
	}
}

// Cut escalates any failure of rule to a committed failure.
func Cut[T any](rule Rule[T]) Rule[T] {
	return func(input string) (T, string, error) {
		v, rest, err := rule(input)
		if err != nil {
			if se, ok := err.(*SyntaxError); ok {
				se.committed = true
			}
		}
		return v, rest, err
	}
}

// Alt tries each rule in order, returning the first success. A
// committed failure stops the chain immediately; otherwise the last
// failure is returned.
func Alt[T any](rules ...Rule[T]) Rule[T] {
	return func(input string) (T, string, error) {
		var zero T
		var last error
		for _, rule := range rules {
			v, rest, err := rule(input)
			if err == nil {
				return v, rest, nil
			}
			if se, ok := err.(*SyntaxError); ok && se.committed {
				return zero, input, err
			}
			last = err
		}
		return zero, input, last
	}
}

// Many0 applies rule zero or more times, stopping at the first
// backtrackable failure. Committed failures propagate.
func Many0[T any](rule Rule[T]) Rule[[]T] {
	return func(input string) ([]T, string, error) {
		var out []T
		rest := input
		for {
			v, r, err := rule(rest)
			if err != nil {
				if se, ok := err.(*SyntaxError); ok && se.committed {
					return nil, input, err
				}
				return out, rest, nil
			}
			out = append(out, v)
			rest = r
		}
	}
}

// Opt applies rule, treating a backtrackable failure as absence.
func Opt[T any](rule Rule[T]) func(input string) (T, bool, string, error) {
	return func(input string) (T, bool, string, error) {
		v, rest, err := rule(input)
		if err != nil {
			var zero T
			if se, ok := err.(*SyntaxError); ok && se.committed {
				return zero, false, input, err
			}
			return zero, false, input, nil
		}
		return v, true, rest, nil
	}
}

// Parenthesized wraps a rule so it requires a leading '(', optional
// interior whitespace, the delegate rule, optional whitespace, and a
// mandatory closing ')'. Once the opening parenthesis and inner rule
// have matched, a missing closing parenthesis is a committed failure.
func Parenthesized[T any](inner Rule[T]) Rule[T] {
	return func(input string) (T, string, error) {
		var zero T
		rest, err := tag(input, "(")
		if err != nil {
			return zero, input, err
		}
		v, rest, err := inner(space(rest))
		if err != nil {
			return zero, input, err
		}
		rest = space(rest)
		if !strings.HasPrefix(rest, ")") {
			se := expected(rest, "')'")
			se.Trail = append(se.Trail, "closing parenthesis")
			se.committed = true
			return zero, input, se
		}
		return v, rest[1:], nil
	}
}

// spaced wraps a rule so it eats leading whitespace and comments.
func spaced[T any](rule Rule[T]) Rule[T] {
	return func(input string) (T, string, error) {
		return rule(space(input))
	}
}

// SkipSpace returns input with leading whitespace and comments
// removed. Useful for callers checking whether a parse consumed all
// meaningful input.
func SkipSpace(input string) string {
	return space(input)
}

// tag matches a literal prefix and returns the remaining input.
func tag(input, lit string) (string, error) {
	if !strings.HasPrefix(input, lit) {
		return input, expected(input, fmt.Sprintf("%q", lit))
	}
	return input[len(lit):], nil
}

// space skips whitespace, line comments (;;) and nestable block
// comments ((; ;)).
func space(input string) string {
	for input != "" {
		switch {
		case input[0] == ' ' || input[0] == '\t' || input[0] == '\n' || input[0] == '\r':
			input = input[1:]
		case strings.HasPrefix(input, ";;"):
			if i := strings.IndexByte(input, '\n'); i >= 0 {
				input = input[i+1:]
			} else {
				return ""
			}
		case strings.HasPrefix(input, "(;"):
			depth := 1
			rest := input[2:]
			for depth > 0 && rest != "" {
				switch {
				case strings.HasPrefix(rest, "(;"):
					depth++
					rest = rest[2:]
				case strings.HasPrefix(rest, ";)"):
					depth--
					rest = rest[2:]
				default:
					rest = rest[1:]
				}
			}
			input = rest
		default:
			return input
		}
	}
	return input
}
