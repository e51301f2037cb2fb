package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics — счётчики исходящих запросов шлюза.
type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Количество исходящих запросов к бэкенду по операциям и результату",
		}, []string{"op", "outcome"}),
		duration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Длительность исходящих запросов к бэкенду",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

// observe фиксирует результат одного запроса.
func (m *metrics) observe(op, outcome string, seconds float64) {
	m.requests.WithLabelValues(op, outcome).Inc()
	m.duration.WithLabelValues(op).Observe(seconds)
}
