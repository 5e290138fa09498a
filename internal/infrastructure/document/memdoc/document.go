// Package memdoc is an in-memory style document. The CLI uses it for
// --dry-run, where styles are logged instead of written.
package memdoc

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
	"github.com/alexisbeaulieu97/swatchbook/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

// ErrClosed is returned after Close.
var ErrClosed = errors.New("document closed")

// Document records created styles in order.
type Document struct {
	mu     sync.Mutex
	styles []ports.StyleRecord
	closed bool
	logger ports.Logger
}

// New returns an empty document that logs each created style at info
// level on logger.
func New(logger ports.Logger) *Document {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Document{logger: logger.With("component", "memdoc")}
}

// CreateSolidStyle implements ports.StyleDocument.
func (d *Document) CreateSolidStyle(ctx context.Context, name string, rgb color.RGB) (ports.StyleHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ports.StyleHandle{}, ErrClosed
	}

	rec := ports.StyleRecord{ID: uuid.NewString(), Name: name, Color: rgb, CreatedAt: time.Now().UTC()}
	d.styles = append(d.styles, rec)
	d.logger.Info(ctx, "style created", "style", name, "hex", rgb.Hex())
	return ports.StyleHandle{ID: rec.ID, Name: name}, nil
}

// ListStyles implements ports.StyleLister.
func (d *Document) ListStyles(context.Context) ([]ports.StyleRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]ports.StyleRecord(nil), d.styles...), nil
}

// Names returns created style names in order.
func (d *Document) Names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	names := make([]string, 0, len(d.styles))
	for _, s := range d.styles {
		names = append(names, s.Name)
	}
	return names
}

// Close implements ports.StyleDocument.
func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	return nil
}

var (
	_ ports.StyleDocument = (*Document)(nil)
	_ ports.StyleLister   = (*Document)(nil)
)
