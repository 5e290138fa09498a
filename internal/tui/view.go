package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/swatchbook/internal/application/importer"
	"github.com/alexisbeaulieu97/swatchbook/internal/tui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		titleStyle.Render("Swatchbook • Import a Lospec palette"),
		m.input.View(),
	}

	if panel := m.panel(); panel != "" {
		sections = append(sections, panelStyle.Render(panel))
	}
	if m.notice != "" {
		sections = append(sections, components.NewBanner(components.BannerNotice, m.notice).View())
	}
	if m.failure != "" {
		sections = append(sections, pendingStyle.Render(m.failure))
	}

	sections = append(sections, helpStyle.Render("enter import • esc quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) panel() string {
	switch m.state.Phase {
	case importer.PhaseFetching:
		return fmt.Sprintf("%s %s", m.spinner.View(), pendingStyle.Render("Fetching "+m.state.Slug+"…"))
	case importer.PhaseError:
		return components.NewBanner(components.BannerError, m.state.Message).View()
	case importer.PhaseSuccess:
		if m.state.Palette == nil {
			return ""
		}
		return components.NewSummary(*m.state.Palette).View()
	default:
		return ""
	}
}
