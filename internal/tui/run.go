package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the panel on the alt screen and blocks until the user quits.
// The bridge is attached for the program's lifetime.
func Run(ctx context.Context, imp Importer, bridge *Bridge, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}

	p := tea.NewProgram(NewModel(ctx, imp), opts...)
	if bridge != nil {
		bridge.Attach(p)
		defer bridge.Attach(nil)
	}
	_, err := p.Run()
	return err
}
