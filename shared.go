package arc

import "github.com/arqlabs/arc/errors"

// Shared is a reference-counted owning handle. Copies made with Clone
// share one control block; the resource's deleter runs exactly once,
// when the last owner is dropped. The zero value is an empty handle.
//
// Distinct Shared values for one resource may be used from different
// goroutines freely. A single Shared value must not be mutated
// concurrently.
type Shared[T any] struct {
	ctl *control
	ptr *T
}

// NewShared takes ownership of ptr under a fresh control block with
// strong count 1. A nil ptr yields an empty handle.
func NewShared[T any](ptr *T, del Deleter[T], opts ...Option) Shared[T] {
	if ptr == nil {
		return Shared[T]{}
	}
	return newShared(ptr, del, opts...)
}

func newShared[T any](ptr *T, del Deleter[T], opts ...Option) Shared[T] {
	destroy := func() {
		if del != nil {
			del(ptr)
		}
	}
	return Shared[T]{ctl: newControl(destroy, opts...), ptr: ptr}
}

// Clone returns a new handle sharing ownership of the same resource.
// Cloning an empty handle yields an empty handle.
func (s Shared[T]) Clone() Shared[T] {
	if s.ctl == nil {
		return Shared[T]{}
	}
	s.ctl.incStrong(EventCloned)
	return Shared[T]{ctl: s.ctl, ptr: s.ptr}
}

// Move transfers the handle without touching the count. The receiver is
// empty afterwards.
func (s *Shared[T]) Move() Shared[T] {
	m := Shared[T]{ctl: s.ctl, ptr: s.ptr}
	s.ctl, s.ptr = nil, nil
	return m
}

// CopyFrom is copy-assignment: the receiver drops its current referent
// and shares src's. Assigning a handle to itself is detected before any
// state changes and is a no-op. Cloning src before dropping the old
// referent keeps the operation safe when both handles already share one
// control block.
func (s *Shared[T]) CopyFrom(src *Shared[T]) {
	if s == src {
		return
	}
	c := src.Clone()
	s.Drop()
	*s = c
}

// Get returns the referent, or a nil_pointer error when the handle is
// empty. For an aliasing handle the referent is the sub-object it was
// constructed with.
func (s Shared[T]) Get() (*T, error) {
	if s.ctl == nil || s.ptr == nil {
		return nil, errors.NilDeref("Shared")
	}
	return s.ptr, nil
}

// Valid reports whether the handle owns a resource.
func (s Shared[T]) Valid() bool {
	return s.ctl != nil
}

// UseCount returns a snapshot of the strong count. Advisory only: under
// concurrent mutation the value may be stale by the time the caller
// inspects it, so it must not be used to establish exclusivity.
func (s Shared[T]) UseCount() int64 {
	if s.ctl == nil {
		return 0
	}
	return s.ctl.strong.Load()
}

// IsUnique reports whether the receiver was the only owner at the time
// of the snapshot. Same advisory caveat as UseCount.
func (s Shared[T]) IsUnique() bool {
	return s.UseCount() == 1
}

// Downgrade returns a weak handle observing the same control block
// without extending the resource's lifetime.
func (s Shared[T]) Downgrade() Weak[T] {
	if s.ctl == nil {
		return Weak[T]{}
	}
	s.ctl.incWeak()
	return Weak[T]{ctl: s.ctl, ptr: s.ptr}
}

// Drop releases the receiver's share of ownership; the last drop runs
// the deleter. The handle is empty afterwards, so dropping it again is
// a no-op.
func (s *Shared[T]) Drop() {
	if s.ctl == nil {
		return
	}
	c := s.ctl
	s.ctl, s.ptr = nil, nil
	c.decStrong()
}

// Alias returns a handle that shares h's control block but dereferences
// to sub, keeping the whole resource alive while exposing a sub-object
// view. sub remains valid exactly as long as h's resource does.
func Alias[T, U any](h Shared[T], sub *U) Shared[U] {
	if h.ctl == nil {
		return Shared[U]{}
	}
	h.ctl.incStrong(EventAliased)
	return Shared[U]{ctl: h.ctl, ptr: sub}
}
