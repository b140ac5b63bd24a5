package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/pricing"
)

func snapshotWithSubtotal(unitPrice float64, quantity int) models.CartSnapshot {
	return models.CartSnapshot{
		Lines: []models.CartLine{
			{ProductID: 1, ProductName: "Arctic Explorer Tumbler", Variant: "Ocean Blue", UnitPrice: unitPrice, Quantity: quantity},
		},
		TotalItems: quantity,
		Subtotal:   unitPrice * float64(quantity),
	}
}

func TestQuoteStandardShipping(t *testing.T) {
	cfg := pricing.DefaultConfig()

	tests := []struct {
		name         string
		subtotal     float64
		wantShipping float64
	}{
		{name: "below threshold pays standard fee", subtotal: 1400, wantShipping: 99},
		{name: "exactly at threshold pays standard fee", subtotal: 1800, wantShipping: 99},
		{name: "above threshold ships free", subtotal: 1801, wantShipping: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := cfg.Quote(snapshotWithSubtotal(tt.subtotal, 1), models.ShippingStandard)
			assert.Equal(t, tt.subtotal, quote.Subtotal)
			assert.Equal(t, tt.wantShipping, quote.Shipping)
		})
	}
}

func TestQuoteExpressShippingNeverFree(t *testing.T) {
	cfg := pricing.DefaultConfig()

	quote := cfg.Quote(snapshotWithSubtotal(5000, 1), models.ShippingExpress)
	assert.Equal(t, 150.0, quote.Shipping)
}

func TestQuoteTaxAppliesToSubtotalOnly(t *testing.T) {
	cfg := pricing.DefaultConfig()

	// Subtotal 1400, standard shipping 99: tax must come out of 1400 alone.
	quote := cfg.Quote(snapshotWithSubtotal(1400, 1), models.ShippingStandard)
	assert.InDelta(t, 1400*0.18, quote.Tax, 1e-9)
	assert.InDelta(t, 1400+99+1400*0.18, quote.Total, 1e-9)
}

func TestQuoteRecomputesSubtotalFromLines(t *testing.T) {
	cfg := pricing.DefaultConfig()

	// A stale snapshot subtotal must not leak into the quote.
	snap := snapshotWithSubtotal(999, 2)
	snap.Subtotal = 1

	quote := cfg.Quote(snap, models.ShippingStandard)
	assert.Equal(t, 1998.0, quote.Subtotal)
}

func TestQuoteEmptyCart(t *testing.T) {
	cfg := pricing.DefaultConfig()

	quote := cfg.Quote(models.CartSnapshot{}, models.ShippingStandard)
	assert.Equal(t, 0.0, quote.Subtotal)
	assert.Equal(t, cfg.StandardShippingFee, quote.Shipping)
	assert.Equal(t, 0.0, quote.Tax)
}

func TestRounded(t *testing.T) {
	b := models.PriceBreakdown{Subtotal: 1399.999, Shipping: 99, Tax: 251.9998, Total: 1750.9988}
	r := pricing.Rounded(b)

	assert.Equal(t, 1400.0, r.Subtotal)
	assert.Equal(t, 99.0, r.Shipping)
	assert.Equal(t, 252.0, r.Tax)
	assert.Equal(t, 1751.0, r.Total)

	// The source breakdown stays unrounded.
	assert.Equal(t, 1399.999, b.Subtotal)
}
