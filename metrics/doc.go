// Package metrics exports arc handle lifecycle events as Prometheus
// metrics.
//
// The Observer implements arc.Observer; attach it to handles directly
// or subscribe it to a registry.Registry:
//
//	obs := metrics.NewObserver("myapp")
//	if err := obs.Register(prometheus.DefaultRegisterer); err != nil {
//	    log.Fatal(err)
//	}
//	h := arc.MakeShared(conn, arc.WithObserver(obs))
//
// Exported series:
//
//	<ns>_arc_live_resources            gauge   resources not yet destroyed
//	<ns>_arc_resources_created_total   counter control blocks created
//	<ns>_arc_clones_total              counter strong count increments by copy/alias
//	<ns>_arc_resources_destroyed_total counter deleter invocations
//	<ns>_arc_promotions_total{result}  counter weak promotions, result ok|expired
package metrics
