package checkout

import (
	"context"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// PaymentGateway is the single external call a submission makes. There is no
// real gateway behind this storefront; services.SimulatedGateway stands in.
type PaymentGateway interface {
	Charge(ctx context.Context, amount float64, method models.PaymentMethod) error
}
