package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/swatchbook/internal/application/importer"
	"github.com/alexisbeaulieu97/swatchbook/internal/ports"
)

// Bridge forwards orchestrator snapshots and notifications into a running
// program. It exists before the program does, so the orchestrator and
// materializer can be built first and the program attached afterwards.
type Bridge struct {
	mu      sync.RWMutex
	program *tea.Program
}

// Attach sets the receiving program.
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

// Observe implements importer.Observer.
func (b *Bridge) Observe(s importer.State) {
	b.send(StateMsg{State: s})
}

// Notify implements ports.Notifier.
func (b *Bridge) Notify(_ context.Context, message string) {
	b.send(NoticeMsg{Text: message})
}

// Subscribe registers the bridge for styles.failed so the panel can say
// where style creation stopped. Fetch failures already reach the panel
// through the orchestrator state.
func (b *Bridge) Subscribe(pub ports.EventPublisher) (ports.Subscription, error) {
	return pub.Subscribe(ports.EventStylesFailed, b.HandleEvent)
}

// HandleEvent implements ports.EventHandler.
func (b *Bridge) HandleEvent(_ context.Context, e ports.DomainEvent) error {
	if e == nil || e.EventType() != ports.EventStylesFailed {
		return nil
	}
	data, _ := e.Payload().(map[string]interface{})
	palette, _ := data["palette"].(string)
	b.send(StyleFailureMsg{
		Palette: palette,
		Index:   intField(data, "index"),
		Created: intField(data, "created"),
	})
	return nil
}

func intField(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

func (b *Bridge) send(msg tea.Msg) {
	b.mu.RLock()
	p := b.program
	b.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}
