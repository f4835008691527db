package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/arqlabs/arc"
)

// Observer counts handle lifecycle events in Prometheus collectors. It
// implements arc.Observer; all methods are safe for concurrent use.
type Observer struct {
	live       prometheus.Gauge
	created    prometheus.Counter
	clones     prometheus.Counter
	destroyed  prometheus.Counter
	promotions *prometheus.CounterVec
}

// NewObserver creates an observer whose series live under the given
// namespace.
func NewObserver(namespace string) *Observer {
	return &Observer{
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "arc",
			Name:      "live_resources",
			Help:      "Resources whose deleter has not fired.",
		}),
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "arc",
			Name:      "resources_created_total",
			Help:      "Control blocks created.",
		}),
		clones: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "arc",
			Name:      "clones_total",
			Help:      "Strong count increments from copies and aliasing handles.",
		}),
		destroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "arc",
			Name:      "resources_destroyed_total",
			Help:      "Deleter invocations.",
		}),
		promotions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "arc",
			Name:      "promotions_total",
			Help:      "Weak handle promotion attempts by result.",
		}, []string{"result"}),
	}
}

// Register registers all collectors with reg.
func (o *Observer) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{o.live, o.created, o.clones, o.destroyed, o.promotions} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// OnHandleEvent implements arc.Observer.
func (o *Observer) OnHandleEvent(e arc.Event) {
	switch e.Type {
	case arc.EventCreated:
		o.created.Inc()
		o.live.Inc()
	case arc.EventCloned, arc.EventAliased:
		o.clones.Inc()
	case arc.EventDestroyed:
		o.destroyed.Inc()
		o.live.Dec()
	case arc.EventPromoted:
		o.promotions.WithLabelValues("ok").Inc()
	case arc.EventPromoteFailed:
		o.promotions.WithLabelValues("expired").Inc()
	}
}
