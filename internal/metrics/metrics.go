package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	builderOperations *prometheus.CounterVec
	builderRejections *prometheus.CounterVec
)

func initMetrics() {
	once.Do(func() {
		builderOperations = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pagecraft",
			Subsystem: "builder",
			Name:      "operations_total",
			Help:      "Total builder mutations applied, by operation",
		}, []string{"operation"})

		builderRejections = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "pagecraft",
			Subsystem: "builder",
			Name:      "rejected_operations_total",
			Help:      "Builder mutations refused as no-ops (unknown target, full repeater)",
		}, []string{"operation"})
	})
}

// ObserveOperation records one applied builder mutation.
func ObserveOperation(operation string) {
	initMetrics()
	builderOperations.WithLabelValues(operation).Inc()
}

// ObserveRejection records a mutation that resolved to a no-op.
func ObserveRejection(operation string) {
	initMetrics()
	builderRejections.WithLabelValues(operation).Inc()
}
