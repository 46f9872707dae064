package observability_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/quinnjr/fish-dating-simulator/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Exposition(t *testing.T) {
	m := observability.NewMetrics()
	m.PluginLoaded()
	m.PluginLoaded()
	m.PluginFailed(observability.ReasonBudget)
	m.DateCompleted()
	m.ChoiceSelected()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "fishdating_plugins_loaded_total 2")
	assert.Contains(t, body, `fishdating_plugin_failures_total{reason="budget"} 1`)
	assert.Contains(t, body, "fishdating_dates_completed_total 1")
	assert.True(t, strings.Contains(body, "fishdating_choices_selected_total 1"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() {
		m.PluginLoaded()
		m.PluginFailed(observability.ReasonScript)
		m.DateCompleted()
		m.ChoiceSelected()
	})
}
