package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentDiscount(t *testing.T) {
	tests := []struct {
		name      string
		percent   float64
		unitPrice float64
		quantity  int
		expected  float64
	}{
		{"thirty percent off two units", 30, 125, 2, 175},
		{"zero percent is linear", 0, 100, 3, 300},
		{"full discount", 100, 50, 4, 0},
		{"single unit", 30, 125, 1, 87.5},
		{"zero quantity", 30, 125, 0, 0},
		// Out-of-range percents are accepted, not validated.
		{"over one hundred percent", 150, 100, 1, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := NewPercentDiscount("discount", tt.percent)
			assert.InDelta(t, tt.expected, promo.Apply(tt.unitPrice, tt.quantity), 1e-9)
		})
	}
}

func TestSecondHalfPrice(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		expected  float64
	}{
		{"three units", 250, 3, 500},
		{"two units", 250, 2, 375},
		{"one unit gets no discount", 250, 1, 250},
		{"zero quantity", 250, 0, 0},
		{"five units", 100, 5, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := NewSecondHalfPrice("second half price")
			assert.InDelta(t, tt.expected, promo.Apply(tt.unitPrice, tt.quantity), 1e-9)
		})
	}
}

func TestThirdOneFree(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		expected  float64
	}{
		{"exactly one group", 500, 3, 1000},
		{"one group plus remainder", 500, 5, 2000},
		{"two groups", 500, 6, 2000},
		{"below a group", 500, 2, 1000},
		{"single unit", 500, 1, 500},
		{"zero quantity", 500, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := NewThirdOneFree("third one free")
			assert.InDelta(t, tt.expected, promo.Apply(tt.unitPrice, tt.quantity), 1e-9)
		})
	}
}

func TestPromotionIsSharedNotOwned(t *testing.T) {
	promo := NewPercentDiscount("10% off", 10)

	first, err := NewProduct("first", 100, 5)
	assert.NoError(t, err)
	second, err := NewProduct("second", 200, 5)
	assert.NoError(t, err)

	first.SetPromotion(promo)
	second.SetPromotion(promo)

	total1, err := first.Buy(1)
	assert.NoError(t, err)
	total2, err := second.Buy(1)
	assert.NoError(t, err)

	assert.InDelta(t, 90, total1, 1e-9)
	assert.InDelta(t, 180, total2, 1e-9)
}
