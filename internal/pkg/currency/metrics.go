package currency

import "github.com/prometheus/client_golang/prometheus"

var (
	fetchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currency_rate_fetch_total",
			Help: "Upstream currency rate fetches by result",
		},
		[]string{"result"},
	)
	lookupTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "currency_rate_lookup_total",
			Help: "Currency rate lookups by source (cache, upstream, stale, none)",
		},
		[]string{"source"},
	)
)

func init() {
	prometheus.MustRegister(fetchTotal)
	prometheus.MustRegister(lookupTotal)
}
