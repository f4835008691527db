package registry

import (
	"sort"
	"sync"
	"time"

	"github.com/arqlabs/arc"
	"github.com/arqlabs/arc/errors"
)

// Entry is a snapshot of one tracked control block.
type Entry struct {
	CreatedAt time.Time
	Label     string
	ID        uint64
	Strong    int64
	Weak      int64
	Destroyed bool // deleter has fired
}

// Registry tracks control blocks it observes and fans lifecycle events
// out to subscribers. It implements arc.Observer and is safe for
// concurrent use.
type Registry struct {
	entries   map[uint64]*Entry
	mu        sync.RWMutex
	observers []arc.Observer
	obsMu     sync.RWMutex
	closed    bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		entries: make(map[uint64]*Entry),
	}
}

// OnHandleEvent updates the tracked state and notifies subscribers.
func (r *Registry) OnHandleEvent(e arc.Event) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	switch e.Type {
	case arc.EventCreated:
		r.entries[e.ID] = &Entry{
			ID:        e.ID,
			Label:     e.Label,
			Strong:    e.Strong,
			Weak:      e.Weak,
			CreatedAt: time.Now(),
		}
	case arc.EventFreed:
		delete(r.entries, e.ID)
	default:
		if ent, ok := r.entries[e.ID]; ok {
			ent.Strong = e.Strong
			ent.Weak = e.Weak
			if e.Type == arc.EventDestroyed {
				ent.Destroyed = true
			}
		}
	}
	r.mu.Unlock()

	r.notify(e)
}

// Subscribe adds an observer for the raw event stream.
func (r *Registry) Subscribe(o arc.Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry) Unsubscribe(o arc.Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

// Len returns the number of control blocks not yet freed.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Each iterates over tracked entries in unspecified order. Returning
// false from fn stops the iteration.
func (r *Registry) Each(fn func(Entry) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ent := range r.entries {
		if !fn(*ent) {
			break
		}
	}
}

// Find returns the tracked entry for a control block ID.
func (r *Registry) Find(id uint64) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return Entry{}, errors.Closed("registry closed")
	}
	ent, ok := r.entries[id]
	if !ok {
		return Entry{}, errors.New(errors.PhaseTrack, errors.KindInvalidHandle).
			Detail("no tracked control block %d", id).
			Build()
	}
	return *ent, nil
}

// Live returns a snapshot of all tracked entries sorted by ID.
func (r *Registry) Live() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0, len(r.entries))
	for _, ent := range r.entries {
		out = append(out, *ent)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Leaks returns entries whose deleter has not fired, sorted by ID. Once
// a workload has dropped every handle it created, a non-empty result
// means strong references survive somewhere, typically in a cycle.
func (r *Registry) Leaks() []Entry {
	r.mu.RLock()
	out := make([]Entry, 0)
	for _, ent := range r.entries {
		if !ent.Destroyed {
			out = append(out, *ent)
		}
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Close stops tracking and drops all entries. Events observed after
// Close are ignored.
func (r *Registry) Close() error {
	r.mu.Lock()
	r.closed = true
	r.entries = nil
	r.mu.Unlock()
	return nil
}

func (r *Registry) notify(e arc.Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnHandleEvent(e)
	}
}
