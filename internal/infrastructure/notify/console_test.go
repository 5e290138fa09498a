package notify

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
)

func newTestConsole() (*Console, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewConsole(Options{Out: buf, NoColor: true}), buf
}

func TestConsoleNotify(t *testing.T) {
	t.Parallel()

	c, buf := newTestConsole()
	c.Notify(context.Background(), "Failed to create color styles.")
	require.Equal(t, " swatchbook  Failed to create color styles.\n", buf.String())
}

func TestConsoleSummaryListsColors(t *testing.T) {
	t.Parallel()

	c, buf := newTestConsole()
	c.Summary(palette.Palette{Name: "Demo", Author: "ann", Colors: []string{"ff0000", "#00ff00", "bad"}})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, []string{"Demo by ann", "3 colors added", "#FF0000 #00FF00"}, lines)
}

func TestConsoleSummaryWithoutColors(t *testing.T) {
	t.Parallel()

	c, buf := newTestConsole()
	c.Summary(palette.Palette{Name: "Empty", Colors: []string{}})
	require.Equal(t, "Empty\n0 colors added\n", buf.String())
}

func TestConsoleStatusLines(t *testing.T) {
	t.Parallel()

	c, buf := newTestConsole()
	c.Success("%d styles created", 2)
	c.Failure("Palette not found. Please check the URL and try again.")
	require.Equal(t, "✓ 2 styles created\n✗ Palette not found. Please check the URL and try again.\n", buf.String())
}

func TestConsoleSwatchUsesTrueColor(t *testing.T) {
	t.Parallel()

	c := NewConsole(Options{Out: &bytes.Buffer{}})
	c.noColor = false
	strip := c.Swatch([]string{"FF0000"})
	require.Contains(t, strip, "  ")
}

func TestConsoleIsConcurrencySafe(t *testing.T) {
	t.Parallel()

	c, buf := newTestConsole()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Notify(context.Background(), "hi")
		}()
	}
	wg.Wait()
	require.Equal(t, 20, strings.Count(buf.String(), "\n"))
}
