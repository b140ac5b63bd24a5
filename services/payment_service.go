package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// SimulatedGateway stands in for a payment provider: a single fixed-latency
// call that honors context cancellation. There is no real money movement
// behind this storefront.
type SimulatedGateway struct {
	Latency time.Duration

	// Decline forces every charge to fail; useful for manual testing of the
	// retry path (set PAYMENT_ALWAYS_DECLINE=true).
	Decline bool
}

func NewSimulatedGateway(latency time.Duration, decline bool) *SimulatedGateway {
	return &SimulatedGateway{Latency: latency, Decline: decline}
}

var errDeclined = errors.New("payment declined by gateway")

func (g *SimulatedGateway) Charge(ctx context.Context, amount float64, method models.PaymentMethod) error {
	if amount <= 0 {
		return fmt.Errorf("invalid charge amount %.2f", amount)
	}

	select {
	case <-time.After(g.Latency):
	case <-ctx.Done():
		return ctx.Err()
	}

	if g.Decline {
		return errDeclined
	}

	log.Printf("[payment.charge] method=%s amount=%.2f confirmed", method, amount)
	return nil
}
