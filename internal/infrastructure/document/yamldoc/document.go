// Package yamldoc stores color styles in a YAML document on disk.
package yamldoc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

const fileVersion = "1.0"

// File is the on-disk layout.
type File struct {
	Version string  `yaml:"version"`
	Styles  []Style `yaml:"styles"`
}

// Style is one solid color style.
type Style struct {
	ID        string    `yaml:"id"`
	Name      string    `yaml:"name"`
	Hex       string    `yaml:"hex"`
	Color     color.RGB `yaml:"color"`
	CreatedAt time.Time `yaml:"created_at"`
}

// Document appends styles to a YAML file, rewriting it atomically after
// every creation so a crash mid-palette keeps the styles created so far.
type Document struct {
	path string
	mu   sync.Mutex
	file File
	now  func() time.Time
}

// Open loads path, creating the parent directory and an empty document
// when the file does not exist yet.
func Open(path string) (*Document, error) {
	if path == "" {
		return nil, errors.New("document path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create document directory: %w", err)
	}

	d := &Document{path: path, file: File{Version: fileVersion}, now: time.Now}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return d, nil
	case err != nil:
		return nil, fmt.Errorf("read document: %w", err)
	}

	if err := yaml.Unmarshal(data, &d.file); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	if d.file.Version == "" {
		d.file.Version = fileVersion
	}
	return d, nil
}

// CreateSolidStyle implements ports.StyleDocument.
func (d *Document) CreateSolidStyle(ctx context.Context, name string, rgb color.RGB) (ports.StyleHandle, error) {
	if err := ctx.Err(); err != nil {
		return ports.StyleHandle{}, err
	}
	if name == "" {
		return ports.StyleHandle{}, errors.New("style name is required")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	style := Style{
		ID:        uuid.NewString(),
		Name:      name,
		Hex:       rgb.Hex(),
		Color:     rgb,
		CreatedAt: d.now().UTC(),
	}
	d.file.Styles = append(d.file.Styles, style)
	if err := d.save(); err != nil {
		d.file.Styles = d.file.Styles[:len(d.file.Styles)-1]
		return ports.StyleHandle{}, err
	}

	return ports.StyleHandle{ID: style.ID, Name: style.Name}, nil
}

// ListStyles implements ports.StyleLister.
func (d *Document) ListStyles(ctx context.Context) ([]ports.StyleRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	records := make([]ports.StyleRecord, 0, len(d.file.Styles))
	for _, s := range d.file.Styles {
		records = append(records, ports.StyleRecord{ID: s.ID, Name: s.Name, Color: s.Color, CreatedAt: s.CreatedAt})
	}
	return records, nil
}

// Close implements ports.StyleDocument. Writes are flushed eagerly so
// there is nothing left to release.
func (d *Document) Close() error {
	return nil
}

// save writes to a temporary file first, then renames it into place.
func (d *Document) save() error {
	data, err := yaml.Marshal(d.file)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	tmpPath := d.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, d.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}
	return nil
}

var (
	_ ports.StyleDocument = (*Document)(nil)
	_ ports.StyleLister   = (*Document)(nil)
)
