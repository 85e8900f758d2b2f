package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in acquisition the error occurred
type Phase string

const (
	PhaseDetect  Phase = "detect"  // capability probing
	PhaseAcquire Phase = "acquire" // reading from the entropy source
	PhaseRender  Phase = "render"  // textual output
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupported  Kind = "unsupported"   // source cannot exist on this platform
	KindUnavailable  Kind = "unavailable"   // source exists but reported failure
	KindExhausted    Kind = "exhausted"     // hardware source out of entropy after retries
	KindShortFill    Kind = "short_fill"    // fewer bytes delivered than requested
	KindInvalidInput Kind = "invalid_input" // bad caller-supplied parameter
)

// Error is the structured error type used throughout the toolkit
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Source string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Source != "" {
		b.WriteString(" from ")
		b.WriteString(e.Source)
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

// Source records the name of the entropy source involved
func (b *Builder) Source(name string) *Builder {
	b.err.Source = name
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

// Unsupported creates an error for a source the platform cannot provide
func Unsupported(source, what string) *Error {
	return &Error{
		Phase:  PhaseDetect,
		Kind:   KindUnsupported,
		Source: source,
		Detail: what,
	}
}

// Unavailable creates an error for a source that exists but failed to deliver
func Unavailable(source string, cause error) *Error {
	return &Error{
		Phase:  PhaseAcquire,
		Kind:   KindUnavailable,
		Source: source,
		Cause:  cause,
	}
}

// Exhausted creates an error for a hardware source that stayed empty across retries
func Exhausted(source string, attempts int) *Error {
	return &Error{
		Phase:  PhaseAcquire,
		Kind:   KindExhausted,
		Source: source,
		Detail: fmt.Sprintf("no value ready after %d attempts", attempts),
	}
}

// ShortFill creates an error for a partial delivery
func ShortFill(source string, got, want int) *Error {
	return &Error{
		Phase:  PhaseAcquire,
		Kind:   KindShortFill,
		Source: source,
		Detail: fmt.Sprintf("got %d of %d bytes", got, want),
	}
}

// InvalidLength creates an error for an unusable buffer length
func InvalidLength(n int) *Error {
	return &Error{
		Phase:  PhaseAcquire,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf("invalid buffer length %d", n),
	}
}
