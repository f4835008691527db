package arc

// Deleter destroys a resource. It is invoked at most once per resource
// and must complete: a deleter that panics voids the library's lifetime
// guarantees, mirroring a no-throw destructor contract.
type Deleter[T any] func(*T)

// Dropper is optionally implemented by resource values that need
// cleanup. MakeShared uses it as the default deleter.
type Dropper interface {
	Drop()
}

// Option configures a freshly created control block.
type Option func(*options)

type options struct {
	label string
	obs   Observer
}

// WithLabel attaches a human-readable label to the resource. The label
// appears in lifecycle events and error messages.
func WithLabel(label string) Option {
	return func(o *options) { o.label = label }
}

// WithObserver attaches an observer receiving every lifecycle event of
// the resource's control block. Observers are injected explicitly so
// tests and callers can isolate instances; there is no package-global
// observer.
func WithObserver(obs Observer) Option {
	return func(o *options) { o.obs = obs }
}

// noCopy triggers go vet's copylocks check when embedded in a type that
// must not be copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
