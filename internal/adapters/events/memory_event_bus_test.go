package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makjesusfreak-ai/ReactWebApp99/internal/adapters/events"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/entities"
	"github.com/makjesusfreak-ai/ReactWebApp99/internal/domain/providers"
)

func TestMemoryEventBus_PublishReachesAllSubscribers(t *testing.T) {
	ctx := context.Background()
	bus := events.NewMemoryEventBus()
	defer bus.Close()

	first, err := bus.Subscribe(ctx, providers.EventChannelAilmentCreated)
	require.NoError(t, err)
	second, err := bus.Subscribe(ctx, providers.EventChannelAilmentCreated)
	require.NoError(t, err)

	event := entities.NewAilmentCreatedEvent(entities.Ailment{ID: "a1"})
	require.NoError(t, bus.Publish(ctx, providers.EventChannelAilmentCreated, event))

	for _, ch := range []<-chan *entities.AilmentEvent{first, second} {
		select {
		case got := <-ch:
			assert.Equal(t, "a1", got.AilmentID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestMemoryEventBus_ChannelsAreIsolated(t *testing.T) {
	ctx := context.Background()
	bus := events.NewMemoryEventBus()
	defer bus.Close()

	updated, err := bus.Subscribe(ctx, providers.EventChannelAilmentUpdated)
	require.NoError(t, err)

	event := entities.NewAilmentCreatedEvent(entities.Ailment{ID: "a1"})
	require.NoError(t, bus.Publish(ctx, providers.EventChannelAilmentCreated, event))

	select {
	case got := <-updated:
		t.Fatalf("unexpected event on updated channel: %+v", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMemoryEventBus_ContextCancelReleasesSubscription(t *testing.T) {
	bus := events.NewMemoryEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := bus.Subscribe(ctx, providers.EventChannelAilmentCreated)
	require.NoError(t, err)

	cancel()

	// The channel is closed once the cancellation is observed.
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-ch:
			return !ok
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}

func TestMemoryEventBus_CloseClosesSubscriberChannels(t *testing.T) {
	ctx := context.Background()
	bus := events.NewMemoryEventBus()

	ch, err := bus.Subscribe(ctx, providers.EventChannelAilmentDeleted)
	require.NoError(t, err)

	require.NoError(t, bus.Close())

	_, ok := <-ch
	assert.False(t, ok)

	// Publishing after close is a no-op, not a panic.
	assert.NoError(t, bus.Publish(ctx, providers.EventChannelAilmentDeleted, entities.NewAilmentDeletedEvent(entities.DeleteResponse{ID: "a1", Success: true})))
}
