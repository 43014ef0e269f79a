package catalog

import (
	"fmt"
)

// Product is the capability set shared by all sellable item variants:
// pricing a purchase, reporting availability, and mutating stock.
type Product interface {
	Name() string
	Price() float64
	Quantity() int
	IsActive() bool
	Activate()
	Deactivate()
	SetQuantity(quantity int) error
	Promotion() Promotion
	SetPromotion(p Promotion)
	Buy(quantity int) (float64, error)
	Describe() string
}

// StandardProduct is an ordinary stocked item. Reaching zero stock
// deactivates it; reactivation is an explicit call, never automatic.
type StandardProduct struct {
	name      string
	price     float64
	quantity  int
	active    bool
	promotion Promotion
}

func NewProduct(name string, price float64, quantity int) (*StandardProduct, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidArgument)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: price cannot be negative", ErrInvalidArgument)
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidArgument)
	}
	return &StandardProduct{
		name:     name,
		price:    price,
		quantity: quantity,
		active:   true,
	}, nil
}

func (p *StandardProduct) Name() string { return p.name }

func (p *StandardProduct) Price() float64 { return p.price }

func (p *StandardProduct) Quantity() int { return p.quantity }

func (p *StandardProduct) IsActive() bool { return p.active }

func (p *StandardProduct) Activate() { p.active = true }

func (p *StandardProduct) Deactivate() { p.active = false }

// SetQuantity replaces the current stock level. Setting it to exactly zero
// deactivates the product; setting a positive value leaves the active flag
// as it was.
func (p *StandardProduct) SetQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidArgument)
	}
	p.quantity = quantity
	if p.quantity == 0 {
		p.Deactivate()
	}
	return nil
}

func (p *StandardProduct) Promotion() Promotion { return p.promotion }

func (p *StandardProduct) SetPromotion(promo Promotion) { p.promotion = promo }

// Buy purchases the given quantity, returning the total price. Stock is
// reduced through SetQuantity so that selling out deactivates the product.
func (p *StandardProduct) Buy(quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity to buy must be greater than zero", ErrInvalidArgument)
	}
	if quantity > p.quantity {
		return 0, fmt.Errorf("%w: requested %d of %q but only %d available",
			ErrOutOfStock, quantity, p.name, p.quantity)
	}

	total := p.total(quantity)
	if err := p.SetQuantity(p.quantity - quantity); err != nil {
		return 0, err
	}
	return total, nil
}

func (p *StandardProduct) Describe() string {
	s := fmt.Sprintf("%s, Price: %g, Quantity: %d", p.name, p.price, p.quantity)
	if p.promotion != nil {
		s += fmt.Sprintf(", Promotion: %s", p.promotion.Name())
	}
	return s
}

func (p *StandardProduct) total(quantity int) float64 {
	if p.promotion != nil {
		return p.promotion.Apply(p.price, quantity)
	}
	return p.price * float64(quantity)
}

// NonStockedProduct has no finite inventory (a license key, a download).
// It reports zero quantity, is always active, and rejects direct stock
// mutation.
type NonStockedProduct struct {
	StandardProduct
}

func NewNonStockedProduct(name string, price float64) (*NonStockedProduct, error) {
	base, err := NewProduct(name, price, 0)
	if err != nil {
		return nil, err
	}
	return &NonStockedProduct{StandardProduct: *base}, nil
}

func (p *NonStockedProduct) IsActive() bool { return true }

func (p *NonStockedProduct) SetQuantity(quantity int) error {
	return fmt.Errorf("%w: quantity of non-stocked product %q cannot be set",
		ErrUnsupportedOperation, p.name)
}

// Buy fulfills any positive quantity without touching stock. An attached
// promotion is honored the same way as for stocked products.
func (p *NonStockedProduct) Buy(quantity int) (float64, error) {
	if quantity <= 0 {
		return 0, fmt.Errorf("%w: quantity to buy must be greater than zero", ErrInvalidArgument)
	}
	return p.total(quantity), nil
}

func (p *NonStockedProduct) Describe() string {
	s := fmt.Sprintf("%s, Price: %g, Quantity: non-stocked", p.name, p.price)
	if p.promotion != nil {
		s += fmt.Sprintf(", Promotion: %s", p.promotion.Name())
	}
	return s
}

// LimitedProduct behaves like a standard product but caps how many units a
// single order line may take.
type LimitedProduct struct {
	StandardProduct
	maximum int
}

func NewLimitedProduct(name string, price float64, quantity, maximum int) (*LimitedProduct, error) {
	if maximum <= 0 {
		return nil, fmt.Errorf("%w: per-order maximum must be greater than zero", ErrInvalidArgument)
	}
	base, err := NewProduct(name, price, quantity)
	if err != nil {
		return nil, err
	}
	return &LimitedProduct{StandardProduct: *base, maximum: maximum}, nil
}

func (p *LimitedProduct) Maximum() int { return p.maximum }

func (p *LimitedProduct) Buy(quantity int) (float64, error) {
	if quantity > p.maximum {
		return 0, fmt.Errorf("%w: cannot buy more than %d of %q in one order",
			ErrInvalidArgument, p.maximum, p.name)
	}
	return p.StandardProduct.Buy(quantity)
}

func (p *LimitedProduct) Describe() string {
	s := fmt.Sprintf("%s, Price: %g, Quantity: %d, Limited to %d per order",
		p.name, p.price, p.quantity, p.maximum)
	if p.promotion != nil {
		s += fmt.Sprintf(", Promotion: %s", p.promotion.Name())
	}
	return s
}

var (
	_ Product = (*StandardProduct)(nil)
	_ Product = (*NonStockedProduct)(nil)
	_ Product = (*LimitedProduct)(nil)
)
