// Package errors provides structured error types for the arc library.
//
// Errors are categorized by Phase (which handle operation failed) and
// Kind (error category). The Error type includes the handle kind, the
// caller-supplied resource label, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDeref, errors.KindNilPointer).
//		Handle("Shared").
//		Label("db-conn").
//		Detail("dereference of empty handle").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NilDeref("Unique")
//	err := errors.Closed("registry closed")
//
// All errors implement the standard error interface and support
// errors.Is/As. Note that a failed weak-handle promotion is NOT an
// error anywhere in this library; Lock reports it as an empty result.
package errors
