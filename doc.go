// Package arc provides generic ownership handles for heap-resident
// resources with deterministic, at-most-once destruction.
//
// Three handle kinds manage a resource's lifetime:
//
//	Unique[T]  - sole ownership, move-only, no reference counting
//	Shared[T]  - reference-counted joint ownership
//	Weak[T]    - non-owning observer of a shared resource
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	arc/             Root package: handles, control block, MakeShared
//	├── errors/      Structured error types for debugging
//	├── registry/    Live-handle tracking, leak reports, zap logging
//	├── metrics/     Prometheus observer for lifecycle events
//	└── cmd/arcmon/  Interactive lifecycle monitor
//
// # Quick Start
//
// Manage a resource with shared ownership:
//
//	h := arc.MakeShared(Conn{Addr: "db:5432"})
//	defer h.Drop()
//
//	c := h.Clone() // second owner
//	defer c.Drop()
//
//	conn, err := h.Get()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(conn.Addr)
//
// The resource's deleter runs exactly once, when the last owning handle
// is dropped. If the resource type implements Dropper, its Drop method
// is the default deleter; a custom deleter can be supplied with
// NewShared or MakeSharedWith.
//
// Weak handles observe liveness without extending it:
//
//	w := h.Downgrade()
//	if s, ok := w.Lock(); ok {
//	    // s is a full owner until dropped
//	    s.Drop()
//	}
//
// # Thread Safety
//
// Control block counters are lock-free atomics; handles sharing one
// resource may be cloned, dropped, and promoted from any number of
// goroutines. A single handle value is NOT safe for concurrent use by
// multiple goroutines: give each goroutine its own Clone. The pointed-to
// value itself is never synchronized by this library.
//
// # Cycles
//
// Two resources holding Shared handles to each other are never
// destroyed; the library does not detect or break cycles. Represent
// back-references and parent links as Weak handles so the strong
// ownership graph stays acyclic.
package arc
