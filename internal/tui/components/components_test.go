package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/swatchbook/internal/domain/palette"
)

func TestSwatchWrapsRows(t *testing.T) {
	t.Parallel()

	colors := make([]string, 5)
	for i := range colors {
		colors[i] = "FF0000"
	}
	view := NewSwatch(colors).View(2)
	require.Len(t, strings.Split(view, "\n"), 3)
}

func TestSwatchEmpty(t *testing.T) {
	t.Parallel()

	require.Empty(t, NewSwatch(nil).View(4))
}

func TestSwatchToleratesBadHex(t *testing.T) {
	t.Parallel()

	view := NewSwatch([]string{"zz", "00FF00"}).WithCellWidth(3).View(0)
	require.Equal(t, 6, strings.Count(view, " "))
}

func TestBannerText(t *testing.T) {
	t.Parallel()

	require.Equal(t, "✗ Palette not found.", NewBanner(BannerError, "Palette not found.").Text())
	require.Equal(t, "✓ done", NewBanner(BannerSuccess, "done").Text())
	require.Empty(t, NewBanner(BannerNotice, "").View())
	require.Contains(t, NewBanner(BannerNotice, "hello").View(), "hello")
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	s := NewSummary(palette.Palette{Name: "Demo", Author: "ann", Colors: []string{"FF0000", "00FF00"}})
	require.Equal(t, "2 colors added", s.CountLine())

	view := s.View()
	require.Contains(t, view, "Demo")
	require.Contains(t, view, "by ann")
	require.Contains(t, view, "2 colors added")
}

func TestSummaryWithoutAuthor(t *testing.T) {
	t.Parallel()

	view := NewSummary(palette.Palette{Name: "Mono", Colors: []string{}}).View()
	require.NotContains(t, view, " by ")
	require.Contains(t, view, "0 colors added")
}
