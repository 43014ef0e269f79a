package store

import (
	"fmt"

	"github.com/minicart/storefront/internal/domain/catalog"
)

// Store aggregates an ordered collection of products. Insertion order is
// preserved for listing and order indexing; duplicate references are kept.
type Store struct {
	products []catalog.Product
}

func New(products ...catalog.Product) *Store {
	s := &Store{}
	s.products = append(s.products, products...)
	return s
}

func (s *Store) AddProduct(p catalog.Product) {
	if p == nil {
		return
	}
	s.products = append(s.products, p)
}

// RemoveProduct drops the first occurrence of the given product reference.
// Absent products are a no-op.
func (s *Store) RemoveProduct(p catalog.Product) {
	for i, held := range s.products {
		if held == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// TotalQuantity sums stock over every held product, inactive ones included.
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// ActiveProducts returns the active products in insertion order.
func (s *Store) ActiveProducts() []catalog.Product {
	active := make([]catalog.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// Products returns a snapshot of the full collection in insertion order.
func (s *Store) Products() []catalog.Product {
	return append([]catalog.Product(nil), s.products...)
}

// Line is one (product, quantity) purchase request within an order.
type Line struct {
	Product  catalog.Product
	Quantity int
}

// Order fulfills each line in sequence and returns the summed total price.
// It is not transactional: each successful line mutates its product's stock
// immediately, and a failing line aborts the remainder without rolling back
// earlier lines. The returned error identifies the failing line and wraps
// the underlying catalog error.
func (s *Store) Order(lines []Line) (float64, error) {
	total := 0.0
	for i, line := range lines {
		if line.Product == nil {
			return total, fmt.Errorf("order line %d: %w: product is required", i+1, catalog.ErrInvalidArgument)
		}
		price, err := line.Product.Buy(line.Quantity)
		if err != nil {
			return total, fmt.Errorf("order line %d (%s): %w", i+1, line.Product.Name(), err)
		}
		total += price
	}
	return total, nil
}
