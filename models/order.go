package models

import "time"

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
)

// PriceBreakdown is the derived pricing for a cart snapshot. Values are kept
// unrounded internally; rounding to two decimals happens only at the
// presentation boundary.
type PriceBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ShippingDetails is the validated address/contact snapshot frozen into an
// order at submission time.
type ShippingDetails struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// Order is created once at checkout and immutable afterwards. Lines and
// pricing are point-in-time copies; later catalog or cart changes never
// affect a placed order.
type Order struct {
	OrderID               string          `json:"order_id"`
	OrderDate             time.Time       `json:"order_date"`
	EstimatedDeliveryDate time.Time       `json:"estimated_delivery_date"`
	Lines                 []CartLine      `json:"lines"`
	ShippingDetails       ShippingDetails `json:"shipping_details"`
	ShippingMethod        ShippingMethod  `json:"shipping_method"`
	PaymentMethod         PaymentMethod   `json:"payment_method"`
	PriceBreakdown
}

// TotalItems sums line quantities.
func (o Order) TotalItems() int {
	total := 0
	for _, l := range o.Lines {
		total += l.Quantity
	}
	return total
}

// OrderHistoryItem is the list-view projection for the order history page.
type OrderHistoryItem struct {
	OrderID               string    `json:"order_id"`
	OrderDate             time.Time `json:"order_date"`
	EstimatedDeliveryDate time.Time `json:"estimated_delivery_date"`
	ItemCount             int       `json:"item_count"`
	Total                 float64   `json:"total"`
}
