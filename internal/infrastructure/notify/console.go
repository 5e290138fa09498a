// Package notify renders user notifications and palette summaries on a
// plain console.
package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	fatih "github.com/fatih/color"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
)

// Console writes notifications and summaries to a writer. It is safe for
// concurrent use.
type Console struct {
	mu  sync.Mutex
	out io.Writer

	dim     *fatih.Color
	bold    *fatih.Color
	success *fatih.Color
	failure *fatih.Color
	badge   *fatih.Color
	noColor bool
}

// Options configures a Console.
type Options struct {
	Out io.Writer
	// NoColor disables escape sequences regardless of the terminal.
	NoColor bool
}

// NewConsole builds a Console. Color is off when NoColor is set or when
// fatih/color detects NO_COLOR or a non-terminal stdout.
func NewConsole(opts Options) *Console {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	c := &Console{
		out:     out,
		dim:     fatih.New(fatih.FgHiBlack),
		bold:    fatih.New(fatih.FgWhite, fatih.Bold),
		success: fatih.New(fatih.FgGreen),
		failure: fatih.New(fatih.FgRed),
		badge:   fatih.New(fatih.BgMagenta, fatih.FgWhite, fatih.Bold),
		noColor: opts.NoColor || fatih.NoColor,
	}
	if c.noColor {
		for _, col := range []*fatih.Color{c.dim, c.bold, c.success, c.failure, c.badge} {
			col.DisableColor()
		}
	}
	return c
}

// Notify implements ports.Notifier.
func (c *Console) Notify(_ context.Context, message string) {
	c.println(c.badge.Sprint(" swatchbook ") + " " + message)
}

// Success prints a green confirmation line.
func (c *Console) Success(format string, a ...interface{}) {
	c.println(c.success.Sprint("✓ ") + fmt.Sprintf(format, a...))
}

// Failure prints a red error line.
func (c *Console) Failure(format string, a ...interface{}) {
	c.println(c.failure.Sprint("✗ ") + fmt.Sprintf(format, a...))
}

// Summary prints the palette name, color count and a swatch strip.
func (c *Console) Summary(p palette.Palette) {
	var b strings.Builder
	b.WriteString(c.bold.Sprint(p.Name))
	if p.Author != "" {
		b.WriteString(c.dim.Sprintf(" by %s", p.Author))
	}
	b.WriteString("\n")
	b.WriteString(c.dim.Sprintf("%d colors added", p.Len()))
	if strip := c.Swatch(p.Colors); strip != "" {
		b.WriteString("\n")
		b.WriteString(strip)
	}
	c.println(b.String())
}

// Swatch renders one block per color. Entries that are not valid hex are
// skipped. Without color the hex codes are listed instead.
func (c *Console) Swatch(hexes []string) string {
	parts := make([]string, 0, len(hexes))
	for _, hex := range hexes {
		rgb, err := color.Convert(hex)
		if err != nil {
			continue
		}
		if c.noColor {
			parts = append(parts, "#"+rgb.Hex())
			continue
		}
		r, g, bl := rgb.Bytes()
		parts = append(parts, fatih.BgRGB(int(r), int(g), int(bl)).Sprint("  "))
	}
	sep := ""
	if c.noColor {
		sep = " "
	}
	return strings.Join(parts, sep)
}

func (c *Console) println(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}
