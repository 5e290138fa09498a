// Package importer sequences palette URL resolution, fetching and style
// materialization, and owns the interactive import state machine.
package importer

import (
	"context"
	"errors"
	"time"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/lospec"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

// Materializer is the style-creation capability the pipeline drives.
type Materializer interface {
	Materialize(ctx context.Context, p palette.Palette) (int, error)
}

// Outcome is the result of a completed non-interactive import.
type Outcome struct {
	Source  palette.SourceID
	Palette palette.Palette
	Created int
}

// Pipeline runs the import stages. It holds no per-import state and is
// safe for concurrent use.
type Pipeline struct {
	fetcher      lospec.Fetcher
	materializer Materializer
	publisher    ports.EventPublisher
	logger       ports.Logger
	metrics      ports.MetricsCollector
}

// PipelineOptions configures a Pipeline.
type PipelineOptions struct {
	Fetcher      lospec.Fetcher
	Materializer Materializer
	Publisher    ports.EventPublisher
	Logger       ports.Logger
	Metrics      ports.MetricsCollector
}

// NewPipeline validates opts and returns a Pipeline.
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	if opts.Fetcher == nil {
		return nil, errors.New("fetcher is required")
	}
	if opts.Materializer == nil {
		return nil, errors.New("materializer is required")
	}
	p := &Pipeline{
		fetcher:      opts.Fetcher,
		materializer: opts.Materializer,
		publisher:    opts.Publisher,
		logger:       opts.Logger,
		metrics:      opts.Metrics,
	}
	if p.logger == nil {
		p.logger = logging.NewNoOpLogger()
	}
	p.logger = p.logger.With("layer", "application", "component", "importer")
	if p.metrics == nil {
		p.metrics = ports.NoopMetrics{}
	}
	return p, nil
}

// Resolve validates raw. Failures are counted and published.
func (p *Pipeline) Resolve(ctx context.Context, raw string) (palette.SourceID, error) {
	id, err := palette.Resolve(raw)
	if err != nil {
		p.recordFailure(ctx, "", err)
		return palette.SourceID{}, err
	}
	return id, nil
}

// Fetch retrieves the palette for a resolved id.
func (p *Pipeline) Fetch(ctx context.Context, id palette.SourceID) (palette.Palette, error) {
	p.publish(ctx, ports.EventImportStarted, map[string]interface{}{"slug": id.Slug})

	started := time.Now()
	pal, err := p.fetcher.Fetch(ctx, id)
	if err != nil {
		p.recordFailure(ctx, id.Slug, err)
		return palette.Palette{}, err
	}

	p.metrics.IncCounter(ctx, ports.MetricImportsTotal, map[string]string{"outcome": "success"})
	p.publish(ctx, ports.EventImportSucceeded, map[string]interface{}{
		"slug":        id.Slug,
		"palette":     pal.Name,
		"colors":      pal.Len(),
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return pal, nil
}

// Materialize hands a fetched palette to the style materializer.
func (p *Pipeline) Materialize(ctx context.Context, pal palette.Palette) (int, error) {
	return p.materializer.Materialize(ctx, pal)
}

// Import resolves, fetches and materializes raw in one call. A
// materialization failure still returns the Outcome with the number of
// styles that were created before the abort.
func (p *Pipeline) Import(ctx context.Context, raw string) (Outcome, error) {
	id, err := p.Resolve(ctx, raw)
	if err != nil {
		return Outcome{}, err
	}
	pal, err := p.Fetch(ctx, id)
	if err != nil {
		return Outcome{Source: id}, err
	}
	created, err := p.Materialize(ctx, pal)
	return Outcome{Source: id, Palette: pal, Created: created}, err
}

func (p *Pipeline) recordFailure(ctx context.Context, slug string, err error) {
	outcome := OutcomeLabel(err)
	p.metrics.IncCounter(ctx, ports.MetricImportsTotal, map[string]string{"outcome": outcome})
	p.publish(ctx, ports.EventImportFailed, map[string]interface{}{
		"slug":    slug,
		"outcome": outcome,
		"error":   err.Error(),
	})
}

func (p *Pipeline) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, ports.NewEvent(eventType, data)); err != nil {
		p.logger.Warn(ctx, "publish event failed", "event_type", eventType, "error", err)
	}
}

// UserMessage maps a resolve or fetch error to its banner text.
func UserMessage(err error) string {
	var resErr *palette.ResolutionError
	if errors.As(err, &resErr) {
		return resErr.UserMessage()
	}
	var fetchErr *lospec.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.UserMessage()
	}
	return lospec.MessageNetwork
}

// OutcomeLabel is the metrics label for err; nil is "success".
func OutcomeLabel(err error) string {
	if err == nil {
		return "success"
	}
	var resErr *palette.ResolutionError
	if errors.As(err, &resErr) {
		return "invalid_url"
	}
	var fetchErr *lospec.FetchError
	if errors.As(err, &fetchErr) {
		return string(fetchErr.Kind)
	}
	return string(lospec.KindNetwork)
}
