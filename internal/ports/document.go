package ports

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
)

// StyleHandle identifies a style created in the host document.
type StyleHandle struct {
	ID   string
	Name string
}

// StyleDocument is the host document capability used by the materializer.
// Styles are write-only from the importer's point of view: it never reads
// them back.
type StyleDocument interface {
	CreateSolidStyle(ctx context.Context, name string, rgb color.RGB) (StyleHandle, error)
	// Close releases the document. The import flow itself never closes
	// the host; only the process shutting down does.
	Close() error
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, message string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(ctx context.Context, message string) {
	if f != nil {
		f(ctx, message)
	}
}

// StyleRecord is a stored style as reported by StyleLister.
type StyleRecord struct {
	ID        string
	Name      string
	Color     color.RGB
	CreatedAt time.Time
}

// StyleLister is implemented by documents that can enumerate their styles.
// Only the CLI uses it.
type StyleLister interface {
	ListStyles(ctx context.Context) ([]StyleRecord, error)
}
