package arc

// Weak observes a shared resource's control block without contributing
// to strong ownership. It never dereferences the resource itself; the
// only way to reach the value is a successful Lock. The zero value is
// an empty handle.
type Weak[T any] struct {
	ctl *control
	ptr *T
}

// Clone returns a new weak handle against the same control block.
func (w Weak[T]) Clone() Weak[T] {
	if w.ctl == nil {
		return Weak[T]{}
	}
	w.ctl.incWeak()
	return Weak[T]{ctl: w.ctl, ptr: w.ptr}
}

// Move transfers the handle without touching the count. The receiver is
// empty afterwards.
func (w *Weak[T]) Move() Weak[T] {
	m := Weak[T]{ctl: w.ctl, ptr: w.ptr}
	w.ctl, w.ptr = nil, nil
	return m
}

// Expired reports whether the resource has been destroyed. A false
// result may be stale immediately under concurrency; use Lock to act on
// liveness.
func (w Weak[T]) Expired() bool {
	return w.ctl == nil || w.ctl.strong.Load() == 0
}

// Lock attempts to promote the observer into an owner. On success the
// returned handle has already contributed to the strong count. ok is
// false once all strong owners are gone; that is ordinary control flow,
// not an error. Lock never blocks, and once it has returned false for a
// destroyed resource it never again returns true.
func (w Weak[T]) Lock() (Shared[T], bool) {
	if w.ctl == nil {
		return Shared[T]{}, false
	}
	if !w.ctl.tryPromote() {
		w.ctl.notify(EventPromoteFailed)
		return Shared[T]{}, false
	}
	return Shared[T]{ctl: w.ctl, ptr: w.ptr}, true
}

// Drop releases the observer. The handle is empty afterwards, so
// dropping it again is a no-op.
func (w *Weak[T]) Drop() {
	if w.ctl == nil {
		return
	}
	c := w.ctl
	w.ctl, w.ptr = nil, nil
	c.decWeak()
}
