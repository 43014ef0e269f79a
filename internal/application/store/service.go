package store

import (
	"context"
	"errors"

	"github.com/minicart/storefront/internal/domain/catalog"
	domorder "github.com/minicart/storefront/internal/domain/order"
	domstore "github.com/minicart/storefront/internal/domain/store"
	"github.com/minicart/storefront/internal/observability"
	"github.com/minicart/storefront/internal/observability/logctx"
)

// Service is the catalog-facing facade consumed by the presentation layer.
// It never bypasses product or store invariants.
type Service struct {
	store    *domstore.Store
	receipts domorder.Repository
	log      observability.Logger
}

func NewService(st *domstore.Store, receipts domorder.Repository, tel observability.Observability) *Service {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Service{
		store:    st,
		receipts: receipts,
		log:      tel.Logger().With(observability.F("component", "store_service")),
	}
}

func (s *Service) ActiveProducts(ctx context.Context) []catalog.Product {
	_ = ctx
	return s.store.ActiveProducts()
}

func (s *Service) TotalQuantity(ctx context.Context) int {
	_ = ctx
	return s.store.TotalQuantity()
}

func (s *Service) AddProduct(ctx context.Context, p catalog.Product) error {
	if p == nil {
		return errors.New("store: product is required")
	}
	s.store.AddProduct(p)
	logctx.FromOr(ctx, s.log).Info("product_added",
		observability.F("product", p.Name()),
	)
	return nil
}

func (s *Service) RemoveProduct(ctx context.Context, p catalog.Product) error {
	if p == nil {
		return errors.New("store: product is required")
	}
	s.store.RemoveProduct(p)
	logctx.FromOr(ctx, s.log).Info("product_removed",
		observability.F("product", p.Name()),
	)
	return nil
}

// AttachPromotion sets the product's promotion; the previous promotion, if
// any, is replaced.
func (s *Service) AttachPromotion(ctx context.Context, p catalog.Product, promo catalog.Promotion) error {
	if p == nil {
		return errors.New("store: product is required")
	}
	p.SetPromotion(promo)
	fields := []observability.Field{observability.F("product", p.Name())}
	if promo != nil {
		fields = append(fields, observability.F("promotion", promo.Name()))
	}
	logctx.FromOr(ctx, s.log).Info("promotion_attached", fields...)
	return nil
}

func (s *Service) Receipt(ctx context.Context, id string) (*domorder.Receipt, error) {
	if id == "" {
		return nil, domorder.ErrInvalidID
	}
	return s.receipts.Get(ctx, id)
}

func (s *Service) Receipts(ctx context.Context) ([]*domorder.Receipt, error) {
	return s.receipts.List(ctx)
}
