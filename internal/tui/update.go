package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatchbook/internal/application/importer"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 8 {
			m.input.Width = msg.Width - 8
		}
		return m, nil

	case StateMsg:
		return m.applyState(msg.State)

	case NoticeMsg:
		m.notice = msg.Text
		return m, nil

	case StyleFailureMsg:
		m.failure = msg.Detail()
		return m, nil

	case spinner.TickMsg:
		if m.state.Phase != importer.PhaseFetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter:
		if m.importer == nil || m.state.Busy() {
			return m, nil
		}
		m.notice = ""
		m.failure = ""
		ctx, imp, raw := m.ctx, m.importer, m.input.Value()
		m.calls.push(func() { _ = imp.Submit(ctx, raw) })
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before && m.importer != nil {
		imp := m.importer
		m.calls.push(func() { imp.Edit(after) })
	}
	return m, cmd
}

// applyState mirrors a snapshot. Snapshots from different goroutines can
// arrive out of order; older versions are dropped.
func (m Model) applyState(s importer.State) (tea.Model, tea.Cmd) {
	if s.Version < m.state.Version {
		return m, nil
	}
	prev := m.state.Phase
	m.state = s

	var cmd tea.Cmd
	switch s.Phase {
	case importer.PhaseFetching:
		if prev != importer.PhaseFetching {
			cmd = m.spinner.Tick
		}
	case importer.PhaseSuccess:
		m.input.SetValue("")
	case importer.PhaseIdle:
		if prev == importer.PhaseSuccess {
			m.notice = ""
			m.failure = ""
		}
	}
	return m, cmd
}
