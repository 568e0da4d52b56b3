// Package events is the in-process event bus modules use to react to each
// other's state changes without importing one another.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event is a domain fact. EventName doubles as the subscription key.
type Event interface {
	EventName() string
	EventID() uuid.UUID
	OccurredAt() time.Time
}

// BaseEvent carries the identity and timestamp shared by all domain events.
// Embed it and set it with NewBaseEvent.
type BaseEvent struct {
	ID        uuid.UUID `json:"eventId"`
	Timestamp time.Time `json:"timestamp"`
}

func (e BaseEvent) EventID() uuid.UUID    { return e.ID }
func (e BaseEvent) OccurredAt() time.Time { return e.Timestamp }

// NewBaseEvent stamps a fresh event ID and the current UTC time.
func NewBaseEvent() BaseEvent {
	return BaseEvent{ID: uuid.New(), Timestamp: time.Now().UTC()}
}

// Handler reacts to one event. Returned errors are logged by Publish and
// joined by PublishSync.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// Bus delivers events to the handlers subscribed to their name.
type Bus interface {
	// Publish hands the event to every handler in the background.
	Publish(ctx context.Context, event Event)
	// PublishSync runs the handlers inline and returns their joined errors.
	PublishSync(ctx context.Context, event Event) error
	Subscribe(eventName string, handler Handler)
}
