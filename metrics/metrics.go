// Package metrics counts search work with Prometheus collectors.
//
// A Recorder owns its own registry so that independent solves never share
// counters. All methods are nil-safe: a nil *Recorder records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcome label values.
const (
	ResultFound       = "found"
	ResultUnreachable = "unreachable"
)

// Recorder holds the counters updated by the search packages.
type Recorder struct {
	registry *prometheus.Registry

	// Searches counts finished single-source searches, labelled by result.
	Searches *prometheus.CounterVec
	// Expanded counts nodes popped from a frontier and relaxed.
	Expanded prometheus.Counter
	// Pushes counts frontier insertions.
	Pushes prometheus.Counter
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		Searches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hillpath_searches_total",
				Help: "Total number of single-source searches, by result",
			},
			[]string{"result"},
		),
		Expanded: factory.NewCounter(prometheus.CounterOpts{
			Name: "hillpath_nodes_expanded_total",
			Help: "Total number of nodes expanded by searches",
		}),
		Pushes: factory.NewCounter(prometheus.CounterOpts{
			Name: "hillpath_frontier_pushes_total",
			Help: "Total number of frontier insertions",
		}),
	}
}

// Registry returns the registry holding the Recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}

	return r.registry
}

// ObserveSearch records one finished search.
func (r *Recorder) ObserveSearch(found bool) {
	if r == nil {
		return
	}
	result := ResultUnreachable
	if found {
		result = ResultFound
	}
	r.Searches.WithLabelValues(result).Inc()
}

// AddExpanded adds n expanded nodes.
func (r *Recorder) AddExpanded(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.Expanded.Add(float64(n))
}

// AddPushes adds n frontier insertions.
func (r *Recorder) AddPushes(n int) {
	if r == nil || n <= 0 {
		return
	}
	r.Pushes.Add(float64(n))
}

// WriteTextfile writes the current counter values to path in the
// Prometheus text exposition format, suitable for a node_exporter
// textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, r.registry)
}
