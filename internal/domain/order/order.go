package order

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("order: not found")
	ErrInvalidID    = errors.New("order: id is required")
	ErrEmptyOrder   = errors.New("order: at least one line is required")
	ErrInvalidTotal = errors.New("order: total must be zero or greater")
)

// ReceiptLine records one fulfilled purchase within an order.
type ReceiptLine struct {
	ProductName string
	Quantity    int
}

// Receipt is the immutable record of a fulfilled order.
type Receipt struct {
	ID       string
	Lines    []ReceiptLine
	Total    float64
	PlacedAt time.Time
}

func NewReceipt(id string, lines []ReceiptLine, total float64) (*Receipt, error) {
	if id == "" {
		return nil, ErrInvalidID
	}
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	if total < 0 {
		return nil, ErrInvalidTotal
	}
	return &Receipt{
		ID:       id,
		Lines:    append([]ReceiptLine(nil), lines...),
		Total:    total,
		PlacedAt: time.Now().UTC(),
	}, nil
}

func (r *Receipt) Clone() *Receipt {
	if r == nil {
		return nil
	}
	clone := *r
	clone.Lines = append([]ReceiptLine(nil), r.Lines...)
	return &clone
}
