package order

import "time"

// OrderPlacedEvent is emitted after an order has been fulfilled and its
// receipt persisted.
type OrderPlacedEvent struct {
	ReceiptID string
	LineCount int
	Total     float64
	// SoldOut names the products whose stock hit zero while this order
	// was fulfilled.
	SoldOut    []string
	OccurredAt time.Time
}

func (OrderPlacedEvent) EventName() string { return "order.placed" }

func NewOrderPlacedEvent(receipt *Receipt, soldOut []string) OrderPlacedEvent {
	return OrderPlacedEvent{
		ReceiptID:  receipt.ID,
		LineCount:  len(receipt.Lines),
		Total:      receipt.Total,
		SoldOut:    append([]string(nil), soldOut...),
		OccurredAt: time.Now().UTC(),
	}
}
