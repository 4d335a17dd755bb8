package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RecordEncode records one text encode call
func (r *Registry) RecordEncode(mode string, letters int, duration time.Duration) {
	if r == nil {
		return
	}
	r.EncodeCallsTotal.WithLabelValues(mode).Inc()
	r.EncodeDuration.WithLabelValues(mode).Observe(duration.Seconds())
	r.CharactersEncodedTotal.Add(float64(letters))
}

// RecordCharacter records a single letter encoded outside a text call
func (r *Registry) RecordCharacter() {
	if r == nil {
		return
	}
	r.CharactersEncodedTotal.Inc()
}

// RecordRotorSteps records that the first moved rotors of a chain stepped
func (r *Registry) RecordRotorSteps(moved int) {
	if r == nil {
		return
	}
	for slot := 0; slot < moved; slot++ {
		r.RotorStepsTotal.WithLabelValues(strconv.Itoa(slot)).Inc()
	}
}

// RecordConfigurationChange records a successful configuration replacement
func (r *Registry) RecordConfigurationChange(source string, rotors, plugPairs int) {
	if r == nil {
		return
	}
	r.ConfigurationChangesTotal.WithLabelValues(source).Inc()
	r.RotorsInChain.Set(float64(rotors))
	r.PlugboardPairs.Set(float64(plugPairs))
}

// RecordParse records a configuration parse outcome.
// kind is the error kind for failures and ignored on success.
func (r *Registry) RecordParse(err error, kind string) {
	if r == nil {
		return
	}
	if err == nil {
		r.ConfigurationParsesTotal.WithLabelValues("ok").Inc()
		return
	}
	r.ConfigurationParsesTotal.WithLabelValues("error").Inc()
	r.ConfigurationErrorsTotal.WithLabelValues(kind).Inc()
}

// RecordCacheLookup records a decoded-configuration cache lookup
func (r *Registry) RecordCacheLookup(hit bool) {
	if r == nil {
		return
	}
	if hit {
		r.CodecCacheHitsTotal.Inc()
	} else {
		r.CodecCacheMissesTotal.Inc()
	}
}

// WriteTextfile writes every metric in the Prometheus text format to path,
// for pickup by the node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
