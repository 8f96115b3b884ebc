package providers

import (
	"context"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to ailment
// change events. Delivery is at-least-once; consumers must tolerate duplicate
// CREATE/UPDATE delivery.
type EventBus interface {
	// Publish publishes an event to all subscribers of a channel
	Publish(ctx context.Context, channel string, event *entities.AilmentEvent) error

	// Subscribe subscribes to events on a channel. The subscription is
	// released when ctx is cancelled.
	Subscribe(ctx context.Context, channel string) (<-chan *entities.AilmentEvent, error)

	// Unsubscribe tears down a whole channel and all its subscribers
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// Event channels, one per aggregate lifecycle transition
const (
	// EventChannelAilmentCreated carries CREATE events with the full aggregate
	EventChannelAilmentCreated = "ailments:created"

	// EventChannelAilmentUpdated carries UPDATE events with the full aggregate
	EventChannelAilmentUpdated = "ailments:updated"

	// EventChannelAilmentDeleted carries DELETE events with id and outcome only
	EventChannelAilmentDeleted = "ailments:deleted"
)

// EventChannelFor returns the channel name for an event type
func EventChannelFor(eventType entities.AilmentEventType) string {
	switch eventType {
	case entities.AilmentEventTypeCreated:
		return EventChannelAilmentCreated
	case entities.AilmentEventTypeUpdated:
		return EventChannelAilmentUpdated
	case entities.AilmentEventTypeDeleted:
		return EventChannelAilmentDeleted
	default:
		return ""
	}
}
