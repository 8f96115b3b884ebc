package events

import (
	"context"
	"sync"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/providers"
)

// MemoryEventBus implements the EventBus interface in process memory. It is
// used for single-node runs and in tests; semantics match the Redis bus,
// including dropped delivery to full subscriber channels.
type MemoryEventBus struct {
	subscribers map[string]map[chan *entities.AilmentEvent]struct{}
	mu          sync.RWMutex
	closed      bool
}

// NewMemoryEventBus creates a new in-process event bus
func NewMemoryEventBus() providers.EventBus {
	return &MemoryEventBus{
		subscribers: make(map[string]map[chan *entities.AilmentEvent]struct{}),
	}
}

// Publish delivers an event to all subscribers of a channel
func (b *MemoryEventBus) Publish(ctx context.Context, channel string, event *entities.AilmentEvent) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil
	}

	for subscriber := range b.subscribers[channel] {
		select {
		case subscriber <- event:
		default:
			// Subscriber channel full, skip event
		}
	}
	return nil
}

// Subscribe subscribes to events on a channel
func (b *MemoryEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.AilmentEvent, error) {
	b.mu.Lock()
	if b.subscribers[channel] == nil {
		b.subscribers[channel] = make(map[chan *entities.AilmentEvent]struct{})
	}
	eventChan := make(chan *entities.AilmentEvent, 100)
	b.subscribers[channel][eventChan] = struct{}{}
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.removeSubscriber(channel, eventChan)
	}()

	return eventChan, nil
}

func (b *MemoryEventBus) removeSubscriber(channel string, eventChan chan *entities.AilmentEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if subscribers, ok := b.subscribers[channel]; ok {
		if _, present := subscribers[eventChan]; present {
			delete(subscribers, eventChan)
			close(eventChan)
		}
		if len(subscribers) == 0 {
			delete(b.subscribers, channel)
		}
	}
}

// Unsubscribe tears down a whole channel and all its subscribers
func (b *MemoryEventBus) Unsubscribe(ctx context.Context, channel string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for subscriber := range b.subscribers[channel] {
		close(subscriber)
	}
	delete(b.subscribers, channel)
	return nil
}

// Close closes the event bus and all subscriptions
func (b *MemoryEventBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for _, subscribers := range b.subscribers {
		for subscriber := range subscribers {
			close(subscriber)
		}
	}
	b.subscribers = make(map[string]map[chan *entities.AilmentEvent]struct{})
	return nil
}
