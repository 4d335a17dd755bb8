package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initCodecMetrics() {
	r.ConfigurationParsesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "enigma_configuration_parses_total",
			Help: "Total number of configuration strings parsed",
		},
		[]string{"status"},
	)

	r.ConfigurationErrorsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "enigma_configuration_errors_total",
			Help: "Rejected configurations by error kind",
		},
		[]string{"kind"},
	)

	r.CodecCacheHitsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "enigma_codec_cache_hits_total",
			Help: "Configuration strings served from the decoded cache",
		},
	)

	r.CodecCacheMissesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "enigma_codec_cache_misses_total",
			Help: "Configuration strings that had to be validated and decoded",
		},
	)
}
