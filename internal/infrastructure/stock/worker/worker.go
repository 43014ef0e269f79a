package worker

import (
	"context"

	domevent "github.com/minicart/storefront/internal/domain/event"
	domorder "github.com/minicart/storefront/internal/domain/order"
	"github.com/minicart/storefront/internal/observability"
	"github.com/minicart/storefront/internal/observability/logctx"
)

// Worker watches placed orders and raises sell-out alerts for products
// whose stock was exhausted by the order.
type Worker struct {
	subscriber domevent.Subscriber
	log        observability.Logger
	soldOut    observability.Counter
}

func New(subscriber domevent.Subscriber, tel observability.Observability) *Worker {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Worker{
		subscriber: subscriber,
		log:        tel.Logger().With(observability.F("component", "stock_worker")),
		soldOut:    tel.Metrics().Counter(observability.MProductsSoldOut),
	}
}

func (w *Worker) Start() {
	w.subscriber.Subscribe(domorder.OrderPlacedEvent{}.EventName(), w.handleOrderPlaced)
}

func (w *Worker) handleOrderPlaced(ctx context.Context, e domevent.Event) error {
	evt, ok := e.(domorder.OrderPlacedEvent)
	if !ok {
		return nil
	}

	logger := logctx.FromOr(ctx, w.log)
	for _, name := range evt.SoldOut {
		w.soldOut.Add(1, observability.L("product", name))
		logger.Warn("product_sold_out",
			observability.F("receipt_id", evt.ReceiptID),
			observability.F("product", name),
		)
	}
	return nil
}
