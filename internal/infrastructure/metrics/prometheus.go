// Package metrics backs ports.MetricsCollector with Prometheus collectors
// registered on a private registry.
package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

// Collector implements ports.MetricsCollector.
type Collector struct {
	registry *prometheus.Registry

	imports       *prometheus.CounterVec
	stylesCreated prometheus.Counter
	styleFailures prometheus.Counter
	fetchDuration *prometheus.HistogramVec
}

// NewCollector registers swatchbook's collectors on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		imports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: ports.MetricImportsTotal,
			Help: "Palette imports by outcome",
		}, []string{"outcome"}),
		stylesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: ports.MetricStylesCreatedTotal,
			Help: "Styles written to the host document",
		}),
		styleFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: ports.MetricStyleFailuresTotal,
			Help: "Style materializations aborted by a bad color or document error",
		}),
		fetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    ports.MetricFetchDuration,
			Help:    "Palette fetch latency",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"outcome"}),
	}
}

// IncCounter implements ports.MetricsCollector.
func (c *Collector) IncCounter(ctx context.Context, name string, labels map[string]string) {
	c.AddCounter(ctx, name, 1, labels)
}

// AddCounter implements ports.MetricsCollector. Unknown names are ignored.
func (c *Collector) AddCounter(_ context.Context, name string, value float64, labels map[string]string) {
	if c == nil {
		return
	}
	switch name {
	case ports.MetricImportsTotal:
		c.imports.With(prometheus.Labels{"outcome": labels["outcome"]}).Add(value)
	case ports.MetricStylesCreatedTotal:
		c.stylesCreated.Add(value)
	case ports.MetricStyleFailuresTotal:
		c.styleFailures.Add(value)
	}
}

// ObserveHistogram implements ports.MetricsCollector.
func (c *Collector) ObserveHistogram(_ context.Context, name string, value float64, labels map[string]string) {
	if c == nil {
		return
	}
	if name == ports.MetricFetchDuration {
		c.fetchDuration.With(prometheus.Labels{"outcome": labels["outcome"]}).Observe(value)
	}
}

// WriteTextfile dumps the current metric values in the Prometheus text
// format, for node_exporter's textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

var _ ports.MetricsCollector = (*Collector)(nil)
