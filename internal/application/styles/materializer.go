// Package styles turns decoded palettes into named solid styles in the
// host document.
package styles

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

// Notification texts.
const (
	MessageFailed  = "Failed to create color styles."
	MessageCreated = "Color styles created successfully!"
)

// MaterializationError identifies the palette entry that aborted style
// creation. Styles for earlier entries have already been created and are
// not rolled back.
type MaterializationError struct {
	Color string
	Index int
	Err   error
}

func (e *MaterializationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("materialize color %d (%q): %v", e.Index, e.Color, e.Err)
}

// Unwrap exposes the conversion or document error.
func (e *MaterializationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SuccessHook runs after every color of a palette became a style.
type SuccessHook func(ctx context.Context, p palette.Palette, created int)

// Options configures a Materializer.
type Options struct {
	Document  ports.StyleDocument
	Notifier  ports.Notifier
	Publisher ports.EventPublisher
	Logger    ports.Logger
	Metrics   ports.MetricsCollector
	// OnSuccess defaults to a no-op; the stock flow stays silent on success.
	OnSuccess SuccessHook
}

// Materializer creates one style per palette color.
type Materializer struct {
	doc       ports.StyleDocument
	notifier  ports.Notifier
	publisher ports.EventPublisher
	logger    ports.Logger
	metrics   ports.MetricsCollector
	onSuccess SuccessHook
}

// NewMaterializer validates opts and returns a Materializer.
func NewMaterializer(opts Options) (*Materializer, error) {
	if opts.Document == nil {
		return nil, errors.New("style document is required")
	}
	m := &Materializer{
		doc:       opts.Document,
		notifier:  opts.Notifier,
		publisher: opts.Publisher,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		onSuccess: opts.OnSuccess,
	}
	if m.notifier == nil {
		m.notifier = ports.NotifierFunc(nil)
	}
	if m.logger == nil {
		m.logger = logging.NewNoOpLogger()
	}
	m.logger = m.logger.With("layer", "application", "component", "materializer")
	if m.metrics == nil {
		m.metrics = ports.NoopMetrics{}
	}
	if m.onSuccess == nil {
		m.onSuccess = func(context.Context, palette.Palette, int) {}
	}
	return m, nil
}

// NotifyOnSuccess returns a hook that sends MessageCreated through n.
func NotifyOnSuccess(n ports.Notifier) SuccessHook {
	return func(ctx context.Context, _ palette.Palette, _ int) {
		n.Notify(ctx, MessageCreated)
	}
}

// CreateColorStyles handles the create-color-styles command.
func (m *Materializer) CreateColorStyles(ctx context.Context, name string, colors []string) (int, error) {
	return m.Materialize(ctx, palette.Palette{Name: name, Colors: append([]string(nil), colors...)})
}

// Materialize creates "<name>/<n>" styles in palette order and returns how
// many were created. The first bad color or document failure aborts the
// remaining colors; the user gets one generic notification and the
// returned *MaterializationError carries the detail.
func (m *Materializer) Materialize(ctx context.Context, p palette.Palette) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	log := m.logger.With("palette", p.Name)

	created := 0
	for i, hex := range p.Colors {
		rgb, err := color.Convert(hex)
		if err == nil {
			_, err = m.doc.CreateSolidStyle(ctx, p.StyleName(i), rgb)
		}
		if err != nil {
			matErr := &MaterializationError{Color: hex, Index: i, Err: err}
			log.Error(ctx, "error creating color styles", "index", i, "color", hex, "created", created, "error", err)
			m.metrics.AddCounter(ctx, ports.MetricStylesCreatedTotal, float64(created), nil)
			m.metrics.IncCounter(ctx, ports.MetricStyleFailuresTotal, nil)
			m.publish(ctx, ports.EventStylesFailed, map[string]interface{}{
				"palette": p.Name,
				"index":   i,
				"created": created,
			})
			m.notifier.Notify(ctx, MessageFailed)
			return created, matErr
		}
		created++
	}

	m.metrics.AddCounter(ctx, ports.MetricStylesCreatedTotal, float64(created), nil)
	log.Debug(ctx, "color styles created", "count", created)
	m.publish(ctx, ports.EventStylesCreated, map[string]interface{}{
		"palette": p.Name,
		"count":   created,
	})
	m.onSuccess(ctx, p, created)
	return created, nil
}

func (m *Materializer) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(ctx, ports.NewEvent(eventType, data)); err != nil {
		m.logger.Warn(ctx, "publish event failed", "event_type", eventType, "error", err)
	}
}
