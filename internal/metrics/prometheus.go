// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "grandpa_verifier"

var _ Recorder = (*Prometheus)(nil)

// Prometheus records verification events as prometheus counters
// on its own registry.
type Prometheus struct {
	registry       *prometheus.Registry
	justifications *prometheus.CounterVec
	precommits     *prometheus.CounterVec
}

// NewPrometheus creates the verification counters and registers them
// on a new registry.
func NewPrometheus() (metrics *Prometheus, err error) {
	metrics = &Prometheus{
		registry: prometheus.NewRegistry(),
	}
	collectorsToRegister := make(map[string]prometheus.Collector)

	metrics.justifications = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "justifications_total",
		Help:      "justifications verified, by result",
	}, []string{"result"})
	collectorsToRegister["justifications counter"] = metrics.justifications

	metrics.precommits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "precommits_total",
		Help:      "precommits checked within justifications, by outcome",
	}, []string{"outcome"})
	collectorsToRegister["precommits counter"] = metrics.precommits

	for collectorName, collectorToRegister := range collectorsToRegister {
		err = metrics.registry.Register(collectorToRegister)
		if err != nil && !errors.As(err, &prometheus.AlreadyRegisteredError{}) {
			return nil, fmt.Errorf("cannot register %s: %w", collectorName, err)
		}
	}

	return metrics, nil
}

// JustificationVerified increments the justification counter for the result.
func (m *Prometheus) JustificationVerified(result string) {
	m.justifications.WithLabelValues(result).Inc()
}

// PrecommitChecked increments the precommit counter for the outcome.
func (m *Prometheus) PrecommitChecked(outcome string) {
	m.precommits.WithLabelValues(outcome).Inc()
}

// Registry returns the registry holding the verification counters.
func (m *Prometheus) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the registry to path in the text exposition
// format, for the node exporter textfile collector.
func (m *Prometheus) WriteTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, m.registry)
	if err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
