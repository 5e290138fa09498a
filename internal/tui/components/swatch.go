// Package components holds the small lipgloss renderers the import panel
// is built from.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/color"
)

// Swatch renders a row of colored cells.
type Swatch struct {
	colors []string
	width  int
}

// NewSwatch creates a swatch strip for hex colors. Invalid entries render
// as an empty cell.
func NewSwatch(colors []string) Swatch {
	return Swatch{colors: colors, width: 2}
}

// WithCellWidth sets the width of each cell in columns.
func (s Swatch) WithCellWidth(w int) Swatch {
	if w > 0 {
		s.width = w
	}
	return s
}

// View renders the strip, wrapping after perRow cells when perRow > 0.
func (s Swatch) View(perRow int) string {
	if len(s.colors) == 0 {
		return ""
	}
	cell := strings.Repeat(" ", s.width)
	var rows []string
	var row strings.Builder
	for i, hex := range s.colors {
		if perRow > 0 && i > 0 && i%perRow == 0 {
			rows = append(rows, row.String())
			row.Reset()
		}
		row.WriteString(cellStyle(hex).Render(cell))
	}
	rows = append(rows, row.String())
	return strings.Join(rows, "\n")
}

func cellStyle(hex string) lipgloss.Style {
	rgb, err := color.Convert(hex)
	if err != nil {
		return emptyCell
	}
	return lipgloss.NewStyle().Background(lipgloss.Color("#" + rgb.Hex()))
}

var emptyCell = lipgloss.NewStyle().Background(lipgloss.Color("236"))
