package bridge

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Delivery outcomes recorded by the deliveries counter.
const (
	resultSent     = "sent"
	resultFailed   = "failed"
	resultRejected = "rejected"
)

// Metrics counts send requests by outcome.
type Metrics struct {
	deliveries *prometheus.CounterVec
}

// NewMetrics registers the bridge collectors with reg. A nil reg yields
// collectors that are counted but never exported.
func NewMetrics(reg prometheus.Registerer, namespace string) (*Metrics, error) {
	deliveries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "email_deliveries_total",
		Help:      "Send requests by outcome: sent, failed (relay error) or rejected (validation).",
	}, []string{"result"})

	for _, result := range []string{resultSent, resultFailed, resultRejected} {
		deliveries.WithLabelValues(result)
	}

	if reg != nil {
		if err := reg.Register(deliveries); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				return nil, err
			}
			existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				return nil, err
			}
			deliveries = existing
		}
	}

	return &Metrics{deliveries: deliveries}, nil
}

func (m *Metrics) observe(result string) {
	if m == nil {
		return
	}
	m.deliveries.WithLabelValues(result).Inc()
}
