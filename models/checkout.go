package models

// CheckoutRequest is the shipping/payment form posted at checkout. Fields
// carry no gin "required" bindings on purpose: validation runs through
// checkout.ValidateForm so the client gets a full field→message map instead
// of the first binding failure.
type CheckoutRequest struct {
	FullName string `json:"full_name" example:"Aarav Sharma"`
	Email    string `json:"email" example:"aarav@example.com"`
	Phone    string `json:"phone" example:"9876543210"`
	Address  string `json:"address" example:"221B MG Road"`
	City     string `json:"city" example:"Mumbai"`
	State    string `json:"state" example:"Maharashtra"`
	Pincode  string `json:"pincode" example:"400001"`

	ShippingMethod ShippingMethod `json:"shipping_method" example:"standard"`
	PaymentMethod  PaymentMethod  `json:"payment_method" example:"card"`

	// Card fields, validated only when PaymentMethod is "card". Never stored:
	// the order keeps the payment method label only.
	CardNumber string `json:"card_number,omitempty" example:"4111111111111111"`
	CardExpiry string `json:"card_expiry,omitempty" example:"12/27"`
	CardCVC    string `json:"card_cvc,omitempty" example:"123"`
}

// ToShippingDetails snapshots the address/contact fields for an order.
func (r CheckoutRequest) ToShippingDetails() ShippingDetails {
	return ShippingDetails{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		City:     r.City,
		State:    r.State,
		Pincode:  r.Pincode,
	}
}

// QuoteRequest asks for pricing of the current cart under a shipping method.
type QuoteRequest struct {
	ShippingMethod ShippingMethod `json:"shipping_method" binding:"required,oneof=standard express" example:"standard"`
}
