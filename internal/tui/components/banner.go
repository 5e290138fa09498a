package components

import "github.com/charmbracelet/lipgloss"

// BannerKind selects the banner's palette.
type BannerKind int

const (
	BannerError BannerKind = iota
	BannerSuccess
	BannerNotice
)

var bannerStyles = map[BannerKind]lipgloss.Style{
	BannerError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("160")).
		Padding(0, 1),
	BannerSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("42")).
		Padding(0, 1),
	BannerNotice: lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("61")).
		Padding(0, 1),
}

var bannerIcons = map[BannerKind]string{
	BannerError:   "✗",
	BannerSuccess: "✓",
	BannerNotice:  "•",
}

// Banner is a single-line status message.
type Banner struct {
	kind    BannerKind
	message string
}

// NewBanner creates a banner.
func NewBanner(kind BannerKind, message string) Banner {
	return Banner{kind: kind, message: message}
}

// Text returns the banner content without styling.
func (b Banner) Text() string {
	if b.message == "" {
		return ""
	}
	return bannerIcons[b.kind] + " " + b.message
}

// View renders the banner. An empty message renders nothing.
func (b Banner) View() string {
	text := b.Text()
	if text == "" {
		return ""
	}
	return bannerStyles[b.kind].Render(text)
}
