package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// QuoteCounter reports how many quotes are stored.
type QuoteCounter interface {
	Len() int
}

// NewRegistry returns a Prometheus registry holding the Go runtime and
// process collectors plus the quotes_stored gauge.
func NewRegistry(store QuoteCounter) *prometheus.Registry {
	reg := prometheus.NewRegistry()

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "quotes_stored",
			Help: "Number of quotes currently held in memory.",
		}, func() float64 {
			return float64(store.Len())
		}),
	)

	return reg
}
