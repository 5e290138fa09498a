package ports

import "context"

// MetricsCollector records quantitative observability signals. Standard
// metric names:
//   - Counters:
//     swatchbook_imports_total{outcome="success|not_found|http|network|invalid_url"}
//     swatchbook_styles_created_total
//     swatchbook_style_failures_total
//   - Histograms:
//     swatchbook_fetch_duration_seconds{outcome="..."}
type MetricsCollector interface {
	IncCounter(ctx context.Context, name string, labels map[string]string)
	AddCounter(ctx context.Context, name string, value float64, labels map[string]string)
	ObserveHistogram(ctx context.Context, name string, value float64, labels map[string]string)
}

const (
	MetricImportsTotal       = "swatchbook_imports_total"
	MetricStylesCreatedTotal = "swatchbook_styles_created_total"
	MetricStyleFailuresTotal = "swatchbook_style_failures_total"
	MetricFetchDuration      = "swatchbook_fetch_duration_seconds"
)

// NoopMetrics discards every signal.
type NoopMetrics struct{}

func (NoopMetrics) IncCounter(context.Context, string, map[string]string)                {}
func (NoopMetrics) AddCounter(context.Context, string, float64, map[string]string)       {}
func (NoopMetrics) ObserveHistogram(context.Context, string, float64, map[string]string) {}
