// Package metrics exposes dialog bridge and navigation counters through Prometheus.
package metrics

import (
	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dumbshell"

// Recorder implements port.MetricsRecorder with Prometheus counters.
type Recorder struct {
	received   *prometheus.CounterVec
	resolved   *prometheus.CounterVec
	superseded *prometheus.CounterVec
	navigation *prometheus.CounterVec
}

var _ port.MetricsRecorder = (*Recorder)(nil)

// NewRecorder creates the counters and registers them on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		received: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "interactions_received_total",
				Help:      "Script dialogs received from the engine.",
			},
			[]string{"kind"},
		),
		resolved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "interactions_resolved_total",
				Help:      "Script dialogs answered, by effective resolution.",
			},
			[]string{"kind", "resolution"},
		),
		superseded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "interactions_superseded_total",
				Help:      "Script dialogs replaced before the user answered them.",
			},
			[]string{"kind"},
		),
		navigation: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "navigations_total",
				Help:      "Navigations requested from the address bar.",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(r.received, r.resolved, r.superseded, r.navigation)
	return r
}

func (r *Recorder) InteractionReceived(kind string) {
	r.received.WithLabelValues(kind).Inc()
}

func (r *Recorder) InteractionResolved(kind, resolution string) {
	r.resolved.WithLabelValues(kind, resolution).Inc()
}

func (r *Recorder) InteractionSuperseded(kind string) {
	r.superseded.WithLabelValues(kind).Inc()
}

func (r *Recorder) NavigationRequested(outcome string) {
	r.navigation.WithLabelValues(outcome).Inc()
}
