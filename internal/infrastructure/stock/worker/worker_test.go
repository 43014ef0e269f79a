package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domevent "github.com/minicart/storefront/internal/domain/event"
	domorder "github.com/minicart/storefront/internal/domain/order"
	"github.com/minicart/storefront/internal/observability"
)

type fakeSubscriber struct {
	handlers map[string]domevent.Handler
}

func (s *fakeSubscriber) Subscribe(eventName string, h domevent.Handler) {
	if s.handlers == nil {
		s.handlers = make(map[string]domevent.Handler)
	}
	s.handlers[eventName] = h
}

func TestWorkerSubscribesToOrderPlaced(t *testing.T) {
	sub := &fakeSubscriber{}
	w := New(sub, observability.Nop())
	w.Start()

	handler, ok := sub.handlers[domorder.OrderPlacedEvent{}.EventName()]
	require.True(t, ok)

	err := handler(context.Background(), domorder.OrderPlacedEvent{
		ReceiptID: "r1",
		SoldOut:   []string{"Pixel"},
	})
	assert.NoError(t, err)
}

func TestWorkerIgnoresForeignEvents(t *testing.T) {
	sub := &fakeSubscriber{}
	w := New(sub, observability.Nop())
	w.Start()

	handler := sub.handlers[domorder.OrderPlacedEvent{}.EventName()]
	assert.NoError(t, handler(context.Background(), fakeEvent{}))
}

type fakeEvent struct{}

func (fakeEvent) EventName() string { return "other.event" }
