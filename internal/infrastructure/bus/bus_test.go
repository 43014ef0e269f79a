package bus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domevent "github.com/minicart/storefront/internal/domain/event"
	domorder "github.com/minicart/storefront/internal/domain/order"
	"github.com/minicart/storefront/internal/observability"
)

func TestBusDeliversToSubscriber(t *testing.T) {
	b := New(observability.NopLogger())
	received := make(chan domevent.Event, 1)

	b.Subscribe(domorder.OrderPlacedEvent{}.EventName(), func(_ context.Context, e domevent.Event) error {
		received <- e
		return nil
	})

	b.Start(context.Background())
	defer b.Stop(context.Background())

	evt := domorder.OrderPlacedEvent{ReceiptID: "r1", LineCount: 2, Total: 100}
	require.NoError(t, b.Publish(context.Background(), evt))

	select {
	case e := <-received:
		placed, ok := e.(domorder.OrderPlacedEvent)
		require.True(t, ok)
		assert.Equal(t, "r1", placed.ReceiptID)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestBusFansOutToAllSubscribers(t *testing.T) {
	b := New(observability.NopLogger())
	first := make(chan struct{}, 1)
	second := make(chan struct{}, 1)

	name := domorder.OrderPlacedEvent{}.EventName()
	b.Subscribe(name, func(context.Context, domevent.Event) error {
		first <- struct{}{}
		return nil
	})
	b.Subscribe(name, func(context.Context, domevent.Event) error {
		second <- struct{}{}
		return errors.New("handler failure is logged, not fatal")
	})

	b.Start(context.Background())
	defer b.Stop(context.Background())

	require.NoError(t, b.Publish(context.Background(), domorder.OrderPlacedEvent{ReceiptID: "r1"}))

	for _, ch := range []chan struct{}{first, second} {
		select {
		case <-ch:
		case <-time.After(2 * time.Second):
			t.Fatal("a subscriber did not receive the event")
		}
	}
}

func TestBusIgnoresNilEvent(t *testing.T) {
	b := New(observability.NopLogger())
	b.Start(context.Background())
	defer b.Stop(context.Background())

	assert.NoError(t, b.Publish(context.Background(), nil))
}
