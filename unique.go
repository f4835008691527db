package arc

import "github.com/arqlabs/arc/errors"

// Unique is a sole-owner handle. It carries no control block: at most
// one Unique references a given resource at a time, and ownership moves
// rather than copies. The zero value is an empty handle.
//
// Unique embeds a vet-visible copy guard; transfer ownership with Move
// or MoveFrom, never by assignment.
type Unique[T any] struct {
	ptr *T
	del Deleter[T]
	_   noCopy
}

// NewUnique takes ownership of ptr. The pointer is not validated; a nil
// deleter means destruction releases the reference without further
// cleanup.
func NewUnique[T any](ptr *T, del Deleter[T]) *Unique[T] {
	return &Unique[T]{ptr: ptr, del: del}
}

// Move transfers ownership to the returned handle and empties the
// receiver.
func (u *Unique[T]) Move() *Unique[T] {
	m := &Unique[T]{ptr: u.ptr, del: u.del}
	u.ptr, u.del = nil, nil
	return m
}

// MoveFrom destroys the receiver's current resource, then takes over
// src's resource and deleter. src is empty afterwards. MoveFrom from a
// handle to itself is a no-op.
func (u *Unique[T]) MoveFrom(src *Unique[T]) {
	if u == src {
		return
	}
	u.Drop()
	u.ptr, u.del = src.ptr, src.del
	src.ptr, src.del = nil, nil
}

// Reset destroys the held resource, if any, then stores ptr. Reset(nil)
// leaves the handle empty.
func (u *Unique[T]) Reset(ptr *T) {
	if u.ptr != nil && u.del != nil {
		u.del(u.ptr)
	}
	u.ptr = ptr
}

// Release abandons ownership: the held pointer is returned without
// running the deleter and the handle becomes empty. The caller is
// responsible for the resource's destruction from then on.
func (u *Unique[T]) Release() *T {
	p := u.ptr
	u.ptr = nil
	return p
}

// Get returns the held pointer, or a nil_pointer error when the handle
// is empty.
func (u *Unique[T]) Get() (*T, error) {
	if u.ptr == nil {
		return nil, errors.NilDeref("Unique")
	}
	return u.ptr, nil
}

// Valid reports whether the handle holds a resource.
func (u *Unique[T]) Valid() bool {
	return u.ptr != nil
}

// Drop destroys the held resource. Dropping an empty handle is a no-op,
// which makes Drop safe to defer alongside Release and Move.
func (u *Unique[T]) Drop() {
	if u.ptr == nil {
		return
	}
	if u.del != nil {
		u.del(u.ptr)
	}
	u.ptr, u.del = nil, nil
}

// ToShared converts sole ownership into shared ownership. The
// conversion is one-directional: a fresh control block starts at strong
// count 1 and the receiver is empty afterwards. Converting an empty
// handle yields an empty Shared.
func (u *Unique[T]) ToShared(opts ...Option) Shared[T] {
	ptr, del := u.ptr, u.del
	u.ptr, u.del = nil, nil
	if ptr == nil {
		return Shared[T]{}
	}
	return newShared(ptr, del, opts...)
}
