package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	p, err := NewProduct("Laptop", 1000, 10)
	require.NoError(t, err)

	assert.Equal(t, "Laptop", p.Name())
	assert.Equal(t, 1000.0, p.Price())
	assert.Equal(t, 10, p.Quantity())
	assert.True(t, p.IsActive())
}

func TestNewProductInvalidDetails(t *testing.T) {
	tests := []struct {
		name     string
		prodName string
		price    float64
		quantity int
	}{
		{"empty name", "", 1450, 100},
		{"negative price", "MacBook Air M2", -10, 100},
		{"negative quantity", "MacBook Air M2", 10, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(tt.prodName, tt.price, tt.quantity)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestProductBecomesInactiveAtZero(t *testing.T) {
	p, err := NewProduct("Smartphone", 500, 1)
	require.NoError(t, err)

	_, err = p.Buy(1)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Quantity())
	assert.False(t, p.IsActive())
}

func TestBuyModifiesQuantityAndReturnsTotal(t *testing.T) {
	p, err := NewProduct("Tablet", 300, 5)
	require.NoError(t, err)

	total, err := p.Buy(2)
	require.NoError(t, err)

	assert.InDelta(t, 600, total, 1e-9)
	assert.Equal(t, 3, p.Quantity())
}

func TestBuyTooMuch(t *testing.T) {
	p, err := NewProduct("Headphones", 50, 2)
	require.NoError(t, err)

	_, err = p.Buy(3)
	assert.ErrorIs(t, err, ErrOutOfStock)
	// Failed purchase leaves stock untouched.
	assert.Equal(t, 2, p.Quantity())
	assert.True(t, p.IsActive())
}

func TestBuyNonPositiveQuantity(t *testing.T) {
	p, err := NewProduct("Monitor", 200, 5)
	require.NoError(t, err)

	for _, quantity := range []int{0, -1} {
		_, err := p.Buy(quantity)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
	assert.Equal(t, 5, p.Quantity())
}

func TestBuyAppliesPromotion(t *testing.T) {
	p, err := NewProduct("Earbuds", 125, 10)
	require.NoError(t, err)
	p.SetPromotion(NewPercentDiscount("30% off!", 30))

	total, err := p.Buy(2)
	require.NoError(t, err)

	assert.InDelta(t, 175, total, 1e-9)
	assert.Equal(t, 8, p.Quantity())
}

func TestSetQuantity(t *testing.T) {
	p, err := NewProduct("Keyboard", 80, 3)
	require.NoError(t, err)

	require.NoError(t, p.SetQuantity(0))
	assert.False(t, p.IsActive())

	// A positive set does not reactivate; that is an explicit call.
	require.NoError(t, p.SetQuantity(5))
	assert.Equal(t, 5, p.Quantity())
	assert.False(t, p.IsActive())

	p.Activate()
	assert.True(t, p.IsActive())

	assert.ErrorIs(t, p.SetQuantity(-1), ErrInvalidArgument)
}

func TestNonStockedProduct(t *testing.T) {
	p, err := NewNonStockedProduct("Windows License", 125)
	require.NoError(t, err)

	assert.Equal(t, 0, p.Quantity())
	assert.True(t, p.IsActive())

	total, err := p.Buy(5)
	require.NoError(t, err)
	assert.InDelta(t, 625, total, 1e-9)
	assert.Equal(t, 0, p.Quantity())

	assert.ErrorIs(t, p.SetQuantity(10), ErrUnsupportedOperation)

	_, err = p.Buy(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestNonStockedProductHonorsPromotion(t *testing.T) {
	p, err := NewNonStockedProduct("Windows License", 125)
	require.NoError(t, err)
	p.SetPromotion(NewPercentDiscount("30% off!", 30))

	total, err := p.Buy(2)
	require.NoError(t, err)
	assert.InDelta(t, 175, total, 1e-9)
}

func TestLimitedProduct(t *testing.T) {
	p, err := NewLimitedProduct("Shipping", 10, 250, 1)
	require.NoError(t, err)

	_, err = p.Buy(2)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 250, p.Quantity())

	total, err := p.Buy(1)
	require.NoError(t, err)
	assert.InDelta(t, 10, total, 1e-9)
	assert.Equal(t, 249, p.Quantity())
}

func TestLimitedProductInvalidMaximum(t *testing.T) {
	_, err := NewLimitedProduct("Shipping", 10, 250, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDescribeReflectsCurrentState(t *testing.T) {
	p, err := NewProduct("Pixel", 500, 3)
	require.NoError(t, err)

	assert.Equal(t, "Pixel, Price: 500, Quantity: 3", p.Describe())

	_, err = p.Buy(2)
	require.NoError(t, err)
	assert.Equal(t, "Pixel, Price: 500, Quantity: 1", p.Describe())

	p.SetPromotion(NewThirdOneFree("Third One Free!"))
	assert.Equal(t, "Pixel, Price: 500, Quantity: 1, Promotion: Third One Free!", p.Describe())
}

func TestDescribeVariants(t *testing.T) {
	nonStocked, err := NewNonStockedProduct("License", 125)
	require.NoError(t, err)
	assert.Equal(t, "License, Price: 125, Quantity: non-stocked", nonStocked.Describe())

	limited, err := NewLimitedProduct("Shipping", 10, 250, 1)
	require.NoError(t, err)
	assert.Equal(t, "Shipping, Price: 10, Quantity: 250, Limited to 1 per order", limited.Describe())
}
