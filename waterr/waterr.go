// Package waterr provides the structured error types used throughout
// water.
//
// Errors are categorized by Phase (which stage failed) and Kind (error
// category) and may carry the path of grammar rules that were active
// when a parse failed:
//
//	err := waterr.New(waterr.PhaseParse, waterr.KindUnexpected).
//		Path("function", "parameter").
//		Detail("expected closing parenthesis").
//		Build()
//
// All errors implement the standard error interface and support
// errors.Is and errors.As.
package waterr

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline the error occurred.
type Phase string

const (
	PhaseParse   Phase = "parse"   // source text to AST
	PhaseResolve Phase = "resolve" // AST to opcode bytes
	PhaseEmit    Phase = "emit"    // AST to binary output
)

// Kind categorizes the error.
type Kind string

const (
	KindUnexpected     Kind = "unexpected_input"
	KindUnterminated   Kind = "unterminated"
	KindInvalidLiteral Kind = "invalid_literal"
	KindUnsupported    Kind = "unsupported"
	KindIO             Kind = "io"
)

// Error is the structured error type used throughout water.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" in ")
		b.WriteString(strings.Join(e.Path, " > "))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's phase and kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New creates a new error builder.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{err: Error{Phase: phase, Kind: kind}}
}

// Path sets the rule path, outermost first.
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Cause sets the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return &b.err
}

// ParseFailed wraps a parser error at the facade boundary.
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindUnexpected,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}

// Unsupported reports an operation the current stage cannot perform.
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Sink wraps a byte-sink write failure. The sink is left in an
// undefined partial state; callers must discard it.
func Sink(cause error) *Error {
	return &Error{
		Phase:  PhaseEmit,
		Kind:   KindIO,
		Detail: "write to sink",
		Cause:  cause,
	}
}
