// Package registry tracks live arc control blocks for diagnostics.
//
// A Registry implements arc.Observer; attach it when creating handles
// and every lifecycle transition updates its view of the resource:
//
//	reg := registry.New()
//	h := arc.MakeShared(conn, arc.WithObserver(reg), arc.WithLabel("db"))
//
//	reg.Len()   // control blocks not yet freed
//	reg.Live()  // sorted snapshot of tracked entries
//	reg.Leaks() // entries whose deleter has not fired
//
// Subscribers receive the raw event stream:
//
//	reg.Subscribe(registry.LogObserver{})
//
// # Leak Detection
//
// Resources are destroyed only by their last strong owner; a cycle of
// shared-owned values is never destroyed. After a workload has dropped
// everything it created, a non-empty Leaks() result is the cycle-leak
// signature. The registry reports it; it does not break cycles.
//
// # Logging
//
// The package carries a zap logger, no-op by default. Call SetLogger
// before use to enable it; LogObserver writes one debug line per event.
package registry
