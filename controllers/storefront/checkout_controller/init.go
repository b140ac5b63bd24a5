package checkout_controller

import (
	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/checkout"
	"github.com/SaakshamKindra/tumbler-vibe-shop/pricing"
	"github.com/SaakshamKindra/tumbler-vibe-shop/services"
)

var (
	checkoutFlow  *checkout.Flow
	cartManager   *cart.Manager
	pricingConfig pricing.Config
	emailer       *services.ResendClient
)

// Init wires the controller to the checkout flow and its collaborators.
// Called once at startup; emailer may be nil when email is disabled.
func Init(flow *checkout.Flow, manager *cart.Manager, cfg pricing.Config, mail *services.ResendClient) {
	checkoutFlow = flow
	cartManager = manager
	pricingConfig = cfg
	emailer = mail
}
