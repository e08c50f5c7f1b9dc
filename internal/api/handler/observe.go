package handler

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pragma/auth-service/internal/api/metrics"
	"github.com/pragma/auth-service/internal/core/domain"
)

// observe records the outcome and latency of an orchestrator call.
func observe(counter *prometheus.CounterVec, operation string, started time.Time, err error) {
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = domain.Code(err)
	}
	counter.WithLabelValues(outcome).Inc()
	metrics.OperationDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}
