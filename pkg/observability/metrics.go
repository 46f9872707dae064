package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Failure reasons recorded by PluginFailed.
const (
	ReasonRead    = "read"
	ReasonScript  = "script"
	ReasonBudget  = "budget"
	ReasonTimeout = "timeout"
	ReasonRecord  = "record"
	ReasonEmpty   = "empty"
	ReasonDup     = "duplicate"
)

// Metrics groups the game's counters.
type Metrics struct {
	registry        *prometheus.Registry
	pluginsLoaded   prometheus.Counter
	pluginFailures  *prometheus.CounterVec
	datesCompleted  prometheus.Counter
	choicesSelected prometheus.Counter
}

// NewMetrics creates the counters and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		pluginsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fishdating_plugins_loaded_total",
			Help: "Total number of plugin characters registered",
		}),
		pluginFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fishdating_plugin_failures_total",
				Help: "Total number of plugin load problems by reason",
			},
			[]string{"reason"},
		),
		datesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fishdating_dates_completed_total",
			Help: "Total number of dates committed to player state",
		}),
		choicesSelected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fishdating_choices_selected_total",
			Help: "Total number of dialogue choices selected",
		}),
	}
	m.registry.MustRegister(m.pluginsLoaded, m.pluginFailures, m.datesCompleted, m.choicesSelected)
	return m
}

// Registry exposes the underlying registry, e.g. for tests using prometheus/testutil.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the metrics in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) PluginLoaded() {
	if m == nil {
		return
	}
	m.pluginsLoaded.Inc()
}

func (m *Metrics) PluginFailed(reason string) {
	if m == nil {
		return
	}
	m.pluginFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) DateCompleted() {
	if m == nil {
		return
	}
	m.datesCompleted.Inc()
}

func (m *Metrics) ChoiceSelected() {
	if m == nil {
		return
	}
	m.choicesSelected.Inc()
}
