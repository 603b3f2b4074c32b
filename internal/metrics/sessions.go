package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SessionCounter reports how many console sessions hold a query cache.
type SessionCounter interface {
	Len() int
}

// NewSessionCollector exposes the open session count as a gauge.
func NewSessionCollector(sessions SessionCounter) prometheus.Collector {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "console_sessions_open",
		Help: "Number of signed-in sessions with a live query cache",
	}, func() float64 {
		return float64(sessions.Len())
	})
}

// RegisterSessionMetrics registers the session gauge with the default registry.
func RegisterSessionMetrics(sessions SessionCounter) {
	prometheus.MustRegister(NewSessionCollector(sessions))
}
