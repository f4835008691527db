package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which handle operation the error occurred in
type Phase string

const (
	PhaseDeref Phase = "deref" // reading through a handle
	PhaseTrack Phase = "track" // registry bookkeeping
)

// Kind categorizes the error
type Kind string

const (
	KindNilPointer    Kind = "nil_pointer"
	KindInvalidHandle Kind = "invalid_handle"
	KindClosed        Kind = "closed"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Handle string // handle kind: "Unique", "Shared", "Weak"
	Label  string // caller-supplied resource label, if any
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Handle != "" {
		b.WriteString(": ")
		b.WriteString(e.Handle)
		b.WriteString(" handle")
	}
	if e.Label != "" {
		b.WriteString(" (")
		b.WriteString(e.Label)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		if e.Handle != "" || e.Label != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Handle sets the handle kind
func (b *Builder) Handle(h string) *Builder {
	b.err.Handle = h
	return b
}

// Label sets the caller-supplied resource label
func (b *Builder) Label(l string) *Builder {
	b.err.Label = l
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

// NilDeref reports a dereference of an empty handle
func NilDeref(handle string) *Error {
	return &Error{
		Phase:  PhaseDeref,
		Kind:   KindNilPointer,
		Handle: handle,
		Detail: "dereference of empty handle",
	}
}

// Closed reports an operation against a closed registry
func Closed(detail string) *Error {
	return &Error{
		Phase:  PhaseTrack,
		Kind:   KindClosed,
		Detail: detail,
	}
}
