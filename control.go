package arc

import "sync/atomic"

var controlIDs atomic.Uint64

// control is the single source of truth for one resource's liveness.
// Counters are independent lock-free atomics; there is no global lock.
//
// The strong owners collectively hold one weak reference: weak starts
// at 1 and decStrong's zero path releases it only after the deleter has
// finished. Release therefore cannot race ahead of destruction, and
// exactly one decWeak observes zero and frees the block.
type control struct {
	destroy  func()
	obs      Observer
	label    string
	id       uint64
	strong   atomic.Int64
	weak     atomic.Int64
	detached atomic.Bool // owners' collective weak reference released
	freed    atomic.Bool
}

func newControl(destroy func(), opts ...Option) *control {
	c := &control{}
	c.init(destroy, opts...)
	return c
}

// init is split from newControl so a co-allocated slot can initialize
// its embedded control block in place.
func (c *control) init(destroy func(), opts ...Option) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	c.destroy = destroy
	c.obs = o.obs
	c.label = o.label
	c.id = controlIDs.Add(1)
	c.strong.Store(1)
	c.weak.Store(1)
	c.notify(EventCreated)
}

func (c *control) notify(t EventType) {
	if c.obs == nil {
		return
	}
	c.obs.OnHandleEvent(Event{
		Type:   t,
		ID:     c.id,
		Label:  c.label,
		Strong: c.strong.Load(),
		Weak:   c.weakSnapshot(),
	})
}

// weakSnapshot reports the observer count, hiding the collective
// reference the strong owners hold until destruction.
func (c *control) weakSnapshot() int64 {
	w := c.weak.Load()
	if !c.detached.Load() && w > 0 {
		w--
	}
	return w
}

// incStrong adds one owner. Only reachable through a live handle, so a
// count below 2 afterwards means the caller used a destroyed handle.
func (c *control) incStrong(t EventType) {
	if n := c.strong.Add(1); n < 2 {
		panic("arc: clone of a destroyed resource")
	}
	c.notify(t)
}

// decStrong releases one share of ownership. Exactly one call observes
// the 1->0 transition; it runs the deleter, then hands the owners'
// collective weak reference to decWeak.
func (c *control) decStrong() {
	n := c.strong.Add(-1)
	switch {
	case n == 0:
		if c.destroy != nil {
			c.destroy()
		}
		c.notify(EventDestroyed)
		c.detached.Store(true)
		c.decWeak()
	case n < 0:
		panic("arc: strong count underflow")
	}
}

func (c *control) incWeak() {
	c.weak.Add(1)
	c.notify(EventWeakAdded)
}

func (c *control) decWeak() {
	n := c.weak.Add(-1)
	switch {
	case n == 0:
		c.release()
	case n < 0:
		panic("arc: weak count underflow")
	}
}

// release frees the control block. Only one decWeak can observe zero,
// so no further coordination is needed.
func (c *control) release() {
	c.freed.Store(true)
	c.notify(EventFreed)
}

// tryPromote increments the strong count only while it is observed
// positive, as a single atomic conditional step. A load followed by an
// unconditional add would race with the final decStrong and resurrect a
// destroyed resource.
func (c *control) tryPromote() bool {
	for {
		n := c.strong.Load()
		if n <= 0 {
			return false
		}
		if c.strong.CompareAndSwap(n, n+1) {
			c.notify(EventPromoted)
			return true
		}
	}
}
