package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
)

// SwatchesPerRow bounds the swatch strip width in the summary.
const SwatchesPerRow = 16

var (
	nameStyle   = lipgloss.NewStyle().Bold(true)
	authorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	countStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Summary renders the imported palette: name, author, color count and the
// swatch strip.
type Summary struct {
	palette palette.Palette
}

// NewSummary creates a new Summary component.
func NewSummary(p palette.Palette) Summary {
	return Summary{palette: p}
}

// CountLine is the "<n> colors added" line.
func (s Summary) CountLine() string {
	return fmt.Sprintf("%d colors added", s.palette.Len())
}

// View renders the summary.
func (s Summary) View() string {
	header := nameStyle.Render(s.palette.Name)
	if strings.TrimSpace(s.palette.Author) != "" {
		header += authorStyle.Render(" by " + s.palette.Author)
	}

	lines := []string{header, countStyle.Render(s.CountLine())}
	if strip := NewSwatch(s.palette.Colors).View(SwatchesPerRow); strip != "" {
		lines = append(lines, strip)
	}
	return strings.Join(lines, "\n")
}
