package models

// CartLine is one product+variant entry in a cart. The (ProductID, Variant)
// pair is the line's identity; no two lines in a cart share it.
type CartLine struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Variant     string  `json:"variant"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image,omitempty"`
}

// LineTotal is the line's contribution to the cart subtotal.
func (l CartLine) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// CartSnapshot is a frozen, independent copy of a cart taken at a point in
// time. Later mutation of the live cart never alters a snapshot, so pricing
// quotes and placed orders stay stable.
type CartSnapshot struct {
	Lines      []CartLine `json:"lines"`
	TotalItems int        `json:"total_items"`
	Subtotal   float64    `json:"subtotal"`
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type AddCartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required" example:"1"`
	Quantity  int    `json:"quantity" binding:"required" example:"2"`
	Variant   string `json:"variant" binding:"required" example:"Ocean Blue"`
}

// UpdateCartItemRequest sets a line's quantity. Quantity <= 0 removes the
// line, so it carries no "required" binding.
type UpdateCartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required" example:"1"`
	Variant   string `json:"variant" binding:"required" example:"Ocean Blue"`
	Quantity  int    `json:"quantity" example:"3"`
}

type RemoveCartItemRequest struct {
	ProductID int    `json:"product_id" binding:"required" example:"1"`
	Variant   string `json:"variant" binding:"required" example:"Ocean Blue"`
}
