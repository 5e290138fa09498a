package ports

import "context"

const (
	// EventImportStarted is emitted when a resolved palette fetch begins.
	EventImportStarted = "import.started"
	// EventImportSucceeded is emitted after a palette was fetched and decoded.
	EventImportSucceeded = "import.succeeded"
	// EventImportFailed is emitted when resolution or fetching fails.
	EventImportFailed = "import.failed"
	// EventStylesCreated is emitted once every palette color became a style.
	EventStylesCreated = "styles.created"
	// EventStylesFailed is emitted when style creation aborted part way.
	EventStylesFailed = "styles.failed"
)

// DomainEvent represents a significant occurrence within the domain or
// application layer.
type DomainEvent interface {
	EventType() string
	Payload() interface{}
}

// EventPublisher distributes events to interested subscribers. Dispatch is
// synchronous: Publish blocks until all handlers run. Implementations must
// be thread-safe.
type EventPublisher interface {
	Publish(ctx context.Context, event DomainEvent) error
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
}

// EventHandler processes an event of a specific type. Failures should be
// returned, not panicked, so publishers can log them and keep delivering.
type EventHandler func(context.Context, DomainEvent) error

// Subscription represents a registered handler.
type Subscription interface {
	Unsubscribe()
}

// Event is the stock DomainEvent implementation.
type Event struct {
	Type string
	Data map[string]interface{}
}

// NewEvent builds an Event with the given payload fields.
func NewEvent(eventType string, data map[string]interface{}) Event {
	return Event{Type: eventType, Data: data}
}

// EventType implements DomainEvent.
func (e Event) EventType() string { return e.Type }

// Payload implements DomainEvent.
func (e Event) Payload() interface{} { return e.Data }
