package documents

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JaimeStill/file-flow/pkg/metrics"
)

type collectors struct {
	created   prometheus.Counter
	completed prometheus.Counter
	flows     *prometheus.CounterVec
}

func newCollectors(m *metrics.System) *collectors {
	namespace := ""
	if m != nil {
		namespace = m.Namespace()
	}

	c := &collectors{
		created: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "created_total",
			Help:      "Documents registered.",
		}),
		completed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "completed_total",
			Help:      "Documents archived.",
		}),
		flows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "documents",
			Name:      "flow_actions_total",
			Help:      "Flow records appended, by action.",
		}, []string{"action"}),
	}

	if m != nil {
		m.Registerer().MustRegister(c.created, c.completed, c.flows)
	}
	return c
}
