// Package pricing turns a cart snapshot and a shipping-method selection into
// a price breakdown. Pure and deterministic: no I/O, no clock, no state.
package pricing

import (
	"math"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// Config is the store's pricing policy. Monetary values are rupees in major
// units; TaxRate is a fraction of the subtotal (shipping is not taxed).
type Config struct {
	FreeShippingThreshold float64
	StandardShippingFee   float64
	ExpressShippingFee    float64
	TaxRate               float64
	DeliveryLeadDays      int
}

// DefaultConfig mirrors the storefront's checkout policy: free standard
// shipping above ₹1800, ₹99 standard fee, ₹150 express fee, 18% GST,
// delivery five days out.
func DefaultConfig() Config {
	return Config{
		FreeShippingThreshold: 1800,
		StandardShippingFee:   99,
		ExpressShippingFee:    150,
		TaxRate:               0.18,
		DeliveryLeadDays:      5,
	}
}

// Quote prices a cart snapshot under the selected shipping method. Values
// stay unrounded; round only when presenting.
func (c Config) Quote(snapshot models.CartSnapshot, method models.ShippingMethod) models.PriceBreakdown {
	subtotal := 0.0
	for _, line := range snapshot.Lines {
		subtotal += line.LineTotal()
	}

	shipping := c.StandardShippingFee
	switch method {
	case models.ShippingExpress:
		shipping = c.ExpressShippingFee
	default:
		if subtotal > c.FreeShippingThreshold {
			shipping = 0
		}
	}

	tax := subtotal * c.TaxRate

	return models.PriceBreakdown{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// Round2 rounds to two decimals for presentation.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Rounded returns a presentation copy of the breakdown with every field
// rounded to two decimals.
func Rounded(b models.PriceBreakdown) models.PriceBreakdown {
	return models.PriceBreakdown{
		Subtotal: Round2(b.Subtotal),
		Shipping: Round2(b.Shipping),
		Tax:      Round2(b.Tax),
		Total:    Round2(b.Total),
	}
}
