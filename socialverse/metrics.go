package socialverse

import "github.com/prometheus/client_golang/prometheus"

// Structure label values.
const (
	structureGraph        = "graph"
	structureFeed         = "feed"
	structureActivity     = "activity"
	structureNotification = "notification"
)

// Metrics holds the Prometheus collectors a Session updates.
type Metrics struct {
	// VersionsCreated counts published versions. Labels: structure.
	VersionsCreated *prometheus.CounterVec

	// EmptyOperations counts pops, dequeues, undos and redos that found nothing.
	// Labels: structure, op.
	EmptyOperations *prometheus.CounterVec

	// ContractViolations counts operations rejected with an error. Labels: op.
	ContractViolations *prometheus.CounterVec

	// Users tracks the user count of the current graph snapshot.
	Users prometheus.Gauge
}

// NewMetrics builds the collectors under namespace and registers them on reg.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		VersionsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "versions_created_total",
				Help:      "Versions published, by structure.",
			},
			[]string{"structure"},
		),
		EmptyOperations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "empty_operations_total",
				Help:      "Operations that found an empty structure or empty history.",
			},
			[]string{"structure", "op"},
		),
		ContractViolations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "contract_violations_total",
				Help:      "Operations rejected with an error, by operation.",
			},
			[]string{"op"},
		),
		Users: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "users",
			Help:      "Users in the current graph snapshot.",
		}),
	}

	for _, c := range []prometheus.Collector{m.VersionsCreated, m.EmptyOperations, m.ContractViolations, m.Users} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}
