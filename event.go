package arc

// EventType identifies a handle lifecycle transition.
type EventType uint8

const (
	EventCreated       EventType = iota // control block created, strong count 1
	EventCloned                         // strong count incremented by a copy
	EventAliased                        // strong count incremented by an aliasing handle
	EventWeakAdded                      // weak count incremented
	EventPromoted                       // weak handle promoted to an owner
	EventPromoteFailed                  // promotion attempted after destruction
	EventDestroyed                      // deleter fired, resource gone
	EventFreed                          // control block released
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventCloned:
		return "cloned"
	case EventAliased:
		return "aliased"
	case EventWeakAdded:
		return "weak_added"
	case EventPromoted:
		return "promoted"
	case EventPromoteFailed:
		return "promote_failed"
	case EventDestroyed:
		return "destroyed"
	case EventFreed:
		return "freed"
	default:
		return "unknown"
	}
}

// Event describes one lifecycle transition of a tracked resource.
// Strong and Weak are snapshots taken after the transition and are
// advisory under concurrent mutation.
type Event struct {
	Label  string
	ID     uint64
	Strong int64
	Weak   int64
	Type   EventType
}

// Observer receives notifications about handle lifecycle events.
// Implementations must be safe for concurrent use and must not block:
// events are delivered synchronously from the mutating goroutine.
type Observer interface {
	OnHandleEvent(Event)
}

// Observers fans events out to several observers in order.
func Observers(obs ...Observer) Observer {
	return observerList(obs)
}

type observerList []Observer

func (l observerList) OnHandleEvent(e Event) {
	for _, o := range l {
		o.OnHandleEvent(e)
	}
}
