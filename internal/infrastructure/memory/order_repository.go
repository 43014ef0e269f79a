package memory

import (
	"context"
	"sync"

	domain "github.com/minicart/storefront/internal/domain/order"
)

// OrderRepository keeps fulfilled-order receipts in process memory.
// Receipts are cloned on the way in and out so callers cannot mutate
// stored state.
type OrderRepository struct {
	mu       sync.RWMutex
	receipts map[string]*domain.Receipt
	ids      []string
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		receipts: make(map[string]*domain.Receipt),
	}
}

func (r *OrderRepository) Insert(ctx context.Context, receipt *domain.Receipt) error {
	_ = ctx
	if receipt == nil || receipt.ID == "" {
		return domain.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.receipts[receipt.ID]; !exists {
		r.ids = append(r.ids, receipt.ID)
	}
	r.receipts[receipt.ID] = receipt.Clone()
	return nil
}

func (r *OrderRepository) Get(ctx context.Context, id string) (*domain.Receipt, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	receipt, ok := r.receipts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return receipt.Clone(), nil
}

// List returns all receipts in insertion order.
func (r *OrderRepository) List(ctx context.Context) ([]*domain.Receipt, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Receipt, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.receipts[id].Clone())
	}
	return out, nil
}
