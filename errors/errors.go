package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLoad    Phase = "load"    // program loading
	PhaseConfig  Phase = "config"  // breakpoint/history configuration
	PhaseExec    Phase = "exec"    // batch execution control
	PhaseHistory Phase = "history" // rewind operations
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidTarget Kind = "invalid_target"
	KindInvalidInput  Kind = "invalid_input"
	KindNoHistory     Kind = "no_history"
	KindBadProgram    Kind = "bad_program"
	KindUnsupported   Kind = "unsupported"
)

// Error is the structured error type used throughout the engine
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

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

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NoHistory is returned by a rewind with no recorded ticks remaining
func NoHistory() *Error {
	return &Error{
		Phase:  PhaseHistory,
		Kind:   KindNoHistory,
		Detail: "no recorded ticks to rewind",
	}
}

// HistoryDisabled is returned by a rewind while recording is off
func HistoryDisabled() *Error {
	return &Error{
		Phase:  PhaseHistory,
		Kind:   KindUnsupported,
		Detail: "history recording is disabled",
	}
}

// InvalidTarget creates a malformed breakpoint/watch target error
func InvalidTarget(spec string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidTarget,
		Detail: fmt.Sprintf("breakpoint target %q", spec),
		Value:  spec,
		Cause:  cause,
	}
}

// Load creates a program loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindBadProgram,
		Detail: detail,
		Cause:  cause,
	}
}

// InvalidInput creates an invalid host input error
func InvalidInput(detail string) *Error {
	return &Error{
		Phase:  PhaseExec,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}
