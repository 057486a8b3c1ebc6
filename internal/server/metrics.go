package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the per-tool invocation counters on a private registry so
// multiple Server instances (tests) never collide on registration.
type metrics struct {
	registry   *prometheus.Registry
	toolCalls  *prometheus.CounterVec
	toolErrors *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		toolCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskpilot_tool_calls_total",
			Help: "Total number of tool invocations, by tool name.",
		}, []string{"tool"}),
		toolErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "taskpilot_tool_errors_total",
			Help: "Total number of failed tool invocations, by tool name.",
		}, []string{"tool"}),
	}
	m.registry.MustRegister(m.toolCalls, m.toolErrors)
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
