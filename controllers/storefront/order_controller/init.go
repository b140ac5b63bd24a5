package order_controller

import (
	"github.com/SaakshamKindra/tumbler-vibe-shop/checkout"
)

var orderHistory *checkout.History

// Init wires the controller to the order history. Called once at startup.
func Init(history *checkout.History) {
	orderHistory = history
}
