package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application.
// A nil *Registry is valid and records nothing.
type Registry struct {
	// Machine Metrics
	CharactersEncodedTotal    prometheus.Counter
	EncodeCallsTotal          *prometheus.CounterVec
	EncodeDuration            *prometheus.HistogramVec
	RotorStepsTotal           *prometheus.CounterVec
	ConfigurationChangesTotal *prometheus.CounterVec
	RotorsInChain             prometheus.Gauge
	PlugboardPairs            prometheus.Gauge

	// Codec Metrics
	ConfigurationParsesTotal *prometheus.CounterVec
	ConfigurationErrorsTotal *prometheus.CounterVec
	CodecCacheHitsTotal      prometheus.Counter
	CodecCacheMissesTotal    prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initMachineMetrics()
	r.initCodecMetrics()

	return r
}
