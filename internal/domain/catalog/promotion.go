package catalog

// Promotion is a named pricing strategy. Implementations are stateless and
// may be attached to any number of products at once; Apply never mutates
// the product or the promotion.
type Promotion interface {
	Name() string
	// Apply computes the total price for the given unit price and quantity.
	// Quantity validation is the product's responsibility, not the promotion's.
	Apply(unitPrice float64, quantity int) float64
}

// PercentDiscount takes a flat percentage off the linear total. The percent
// is not range-checked; values outside [0,100] under/over-discount
// proportionally.
type PercentDiscount struct {
	name    string
	percent float64
}

func NewPercentDiscount(name string, percent float64) *PercentDiscount {
	return &PercentDiscount{name: name, percent: percent}
}

func (p *PercentDiscount) Name() string { return p.name }

func (p *PercentDiscount) Apply(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity) * (1 - p.percent/100)
}

// SecondHalfPrice charges the first unit in full and every further unit at
// half price. Below two units there is nothing to discount.
type SecondHalfPrice struct {
	name string
}

func NewSecondHalfPrice(name string) *SecondHalfPrice {
	return &SecondHalfPrice{name: name}
}

func (p *SecondHalfPrice) Name() string { return p.name }

func (p *SecondHalfPrice) Apply(unitPrice float64, quantity int) float64 {
	if quantity < 2 {
		return unitPrice * float64(quantity)
	}
	return unitPrice + unitPrice*float64(quantity-1)/2
}

// ThirdOneFree grants one free unit per complete group of three; leftover
// units are charged normally.
type ThirdOneFree struct {
	name string
}

func NewThirdOneFree(name string) *ThirdOneFree {
	return &ThirdOneFree{name: name}
}

func (p *ThirdOneFree) Name() string { return p.name }

func (p *ThirdOneFree) Apply(unitPrice float64, quantity int) float64 {
	free := quantity / 3
	return float64(quantity-free) * unitPrice
}
