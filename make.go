package arc

// slot co-allocates a resource with its control block so MakeShared
// costs a single allocation and keeps the two adjacent in memory.
type slot[T any] struct {
	ctl   control
	value T
}

// MakeShared allocates v together with its control block and returns an
// owning handle with strong count 1. If the resource implements
// Dropper, its Drop method runs as the deleter when the last owner goes
// away; the combined storage stays reachable until the weak count also
// reaches zero.
func MakeShared[T any](v T, opts ...Option) Shared[T] {
	return MakeSharedWith[T](v, nil, opts...)
}

// MakeSharedWith is MakeShared with an explicit deleter. A nil deleter
// falls back to the Dropper dispatch.
func MakeSharedWith[T any](v T, del Deleter[T], opts ...Option) Shared[T] {
	s := &slot[T]{value: v}
	ptr := &s.value
	destroy := func() {
		if del != nil {
			del(ptr)
			return
		}
		if d, ok := any(ptr).(Dropper); ok {
			d.Drop()
		}
	}
	s.ctl.init(destroy, opts...)
	return Shared[T]{ctl: &s.ctl, ptr: ptr}
}
