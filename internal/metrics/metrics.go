package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "infopanel"

// Lookups records public IP lookups. It satisfies network.Observer.
type Lookups struct {
	total    *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewLookups creates the lookup collectors and registers them with reg.
func NewLookups(reg prometheus.Registerer) *Lookups {
	l := &Lookups{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Help:      "Number of public IP lookups by outcome",
				Name:      "public_ip_lookups_total",
				Namespace: namespace,
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Help:      "Public IP lookup round trip time",
				Name:      "public_ip_lookup_duration_seconds",
				Namespace: namespace,
			},
		),
	}
	reg.MustRegister(l.total, l.duration)
	return l
}

// ObserveLookup counts one finished lookup.
func (l *Lookups) ObserveLookup(outcome string, elapsed time.Duration) {
	l.total.WithLabelValues(outcome).Inc()
	l.duration.Observe(elapsed.Seconds())
}
