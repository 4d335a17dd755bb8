package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initMachineMetrics() {
	r.CharactersEncodedTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "enigma_characters_encoded_total",
			Help: "Total number of letters passed through a machine",
		},
	)

	r.EncodeCallsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "enigma_encode_calls_total",
			Help: "Total number of text encode calls",
		},
		[]string{"mode"},
	)

	r.EncodeDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "enigma_encode_duration_seconds",
			Help:    "Duration of text encode calls in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"mode"},
	)

	r.RotorStepsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "enigma_rotor_steps_total",
			Help: "Rotor steps by chain slot, slot 0 being the fast rotor",
		},
		[]string{"slot"},
	)

	r.ConfigurationChangesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "enigma_configuration_changes_total",
			Help: "Total number of configuration replacements",
		},
		[]string{"source"},
	)

	r.RotorsInChain = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "enigma_rotors_in_chain",
			Help: "Number of rotors in the most recently configured chain",
		},
	)

	r.PlugboardPairs = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "enigma_plugboard_pairs",
			Help: "Number of plugboard pairs in the most recent configuration",
		},
	)
}
