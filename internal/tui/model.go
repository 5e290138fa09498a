// Package tui is the interactive import panel.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatchbook/internal/application/importer"
)

// Importer is the orchestrator surface the panel drives.
type Importer interface {
	Submit(ctx context.Context, raw string) error
	Edit(text string)
	State() importer.State
}

// StateMsg carries an orchestrator snapshot.
type StateMsg struct {
	State importer.State
}

// NoticeMsg carries a host notification, e.g. a failed style write.
type NoticeMsg struct {
	Text string
}

// StyleFailureMsg reports where style creation stopped for a palette.
type StyleFailureMsg struct {
	Palette string
	Index   int
	Created int
}

// Detail renders the failure position for the notice banner.
func (m StyleFailureMsg) Detail() string {
	return fmt.Sprintf("%s: stopped at color %d, %d of its styles were created", m.Palette, m.Index+1, m.Created)
}

// Model contains the Bubbletea state for the import panel. The
// orchestrator owns the import state; the model mirrors its latest
// snapshot.
type Model struct {
	ctx      context.Context
	importer Importer
	calls    *callQueue

	input   textinput.Model
	spinner spinner.Model

	state    importer.State
	notice   string
	failure  string
	width    int
	quitting bool
}

// NewModel builds the panel around imp.
func NewModel(ctx context.Context, imp Importer) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	ti := textinput.New()
	ti.Placeholder = "https://lospec.com/palette-list/..."
	ti.Prompt = promptStyle.Render("› ")
	ti.CharLimit = 512
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	m := Model{ctx: ctx, importer: imp, calls: &callQueue{}, input: ti, spinner: s}
	if imp != nil {
		m.state = imp.State()
	}
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// State returns the mirrored orchestrator snapshot.
func (m Model) State() importer.State {
	return m.state
}

// Input returns the current text field value.
func (m Model) Input() string {
	return m.input.Value()
}

// Notice returns the pending host notification, if any.
func (m Model) Notice() string {
	return m.notice
}

// Failure returns where the last style creation stopped, if it did.
func (m Model) Failure() string {
	return m.failure
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}
