// Package metrics records launch and category selection counters with
// Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Launch results.
const (
	ResultDispatched = "dispatched"
	ResultUnknown    = "unknown_tool"
	ResultRejected   = "not_available"
)

// Recorder is the set of observations the dashboard components report.
type Recorder interface {
	ObserveLaunch(toolID, result string)
	ObserveSelection(category string, accepted bool)
}

// Prometheus implements Recorder with counter vectors.
type Prometheus struct {
	launches   *prometheus.CounterVec
	selections *prometheus.CounterVec
}

// NewPrometheus registers the counters with registerer, or the default
// registerer when nil.
func NewPrometheus(registerer prometheus.Registerer) *Prometheus {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Prometheus{
		launches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studioutils_launches_total",
				Help: "Total number of tool launch attempts",
			},
			[]string{"tool_id", "result"},
		),
		selections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "studioutils_category_selections_total",
				Help: "Total number of category selection attempts",
			},
			[]string{"category", "result"},
		),
	}
}

func (p *Prometheus) ObserveLaunch(toolID, result string) {
	if result == ResultUnknown {
		// Unknown ids come from callers; collapse them into one series.
		toolID = "unknown"
	}
	p.launches.WithLabelValues(toolID, result).Inc()
}

func (p *Prometheus) ObserveSelection(category string, accepted bool) {
	result := "accepted"
	if !accepted {
		result = "rejected"
		// Unknown ids are unbounded; collapse them into one series.
		category = "unknown"
	}
	p.selections.WithLabelValues(category, result).Inc()
}

// Nop discards all observations.
type Nop struct{}

func (Nop) ObserveLaunch(string, string)  {}
func (Nop) ObserveSelection(string, bool) {}

var (
	_ Recorder = (*Prometheus)(nil)
	_ Recorder = Nop{}
)
