// Package cart owns the per-session shopping cart: line identity, quantity
// bounds, merge-on-add, and synchronous whole-document persistence. Every
// shaping rule for cart state lives here; the HTTP layer only translates.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/SaakshamKindra/tumbler-vibe-shop/catalog"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/storage"
)

// Key returns the blob key for a session's cart document.
func Key(sessionID string) string {
	return "cart:" + sessionID
}

// Store is a single session's cart. It is not safe for concurrent use; the
// Manager serializes access per session so each mutation is atomic with
// respect to its own persistence.
type Store struct {
	sessionID string
	blobs     storage.BlobStore
	catalog   *catalog.Store
	lines     []models.CartLine
}

// NewStore builds an empty, unhydrated store for the session.
func NewStore(blobs storage.BlobStore, cat *catalog.Store, sessionID string) *Store {
	return &Store{sessionID: sessionID, blobs: blobs, catalog: cat}
}

// Hydrate loads the persisted cart document. An absent blob yields an empty
// cart; a corrupt one is discarded with a warning rather than wedging the
// session.
func (s *Store) Hydrate(ctx context.Context) error {
	data, err := s.blobs.Read(ctx, Key(s.sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		s.lines = nil
		return nil
	}
	if err != nil {
		return &models.PersistenceError{Op: "cart hydrate", Err: err}
	}
	var lines []models.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		log.Printf("⚠️ [cart.hydrate] discarding corrupt cart document for session %s: %v", s.sessionID, err)
		s.lines = nil
		return nil
	}
	s.lines = lines
	return nil
}

// AddItem adds quantity of the product's variant, merging into an existing
// line when the (product, variant) key is already present. The resulting
// quantity silently clamps at the product's inventory.
func (s *Store) AddItem(ctx context.Context, product models.Product, quantity int, variant string) error {
	if quantity < 1 {
		return &models.ValidationError{Message: fmt.Sprintf("quantity must be at least 1, got %d", quantity)}
	}
	color, ok := product.Color(variant)
	if !ok {
		return &models.ValidationError{
			Message: fmt.Sprintf("product %q has no %q variant", product.Name, variant),
		}
	}
	if !color.Available {
		return &models.ValidationError{
			Message: fmt.Sprintf("variant %q of %q is currently unavailable", variant, product.Name),
		}
	}
	if product.Inventory < 1 {
		return &models.ValidationError{Message: fmt.Sprintf("%q is out of stock", product.Name)}
	}

	if idx := s.findLine(product.ID, variant); idx >= 0 {
		next := s.lines[idx].Quantity + quantity
		if next > product.Inventory {
			next = product.Inventory
		}
		s.lines[idx].Quantity = next
		return s.persist(ctx, "add item")
	}

	if quantity > product.Inventory {
		quantity = product.Inventory
	}
	image := ""
	if len(product.Images) > 0 {
		image = product.Images[0]
	}
	s.lines = append(s.lines, models.CartLine{
		ProductID:   product.ID,
		ProductName: product.Name,
		Variant:     color.Name,
		UnitPrice:   product.Price,
		Quantity:    quantity,
		Image:       image,
	})
	return s.persist(ctx, "add item")
}

// RemoveItem deletes the matching line. Removing an absent line is a no-op,
// not an error.
func (s *Store) RemoveItem(ctx context.Context, productID int, variant string) error {
	idx := s.findLine(productID, variant)
	if idx < 0 {
		return nil
	}
	s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	return s.persist(ctx, "remove item")
}

// SetQuantity sets a line's quantity directly. Zero or negative removes the
// line; values above the product's inventory clamp to it.
func (s *Store) SetQuantity(ctx context.Context, productID int, variant string, quantity int) error {
	idx := s.findLine(productID, variant)
	if idx < 0 {
		return nil
	}
	if quantity <= 0 {
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
		return s.persist(ctx, "set quantity")
	}
	product, err := s.catalog.ByID(ctx, productID)
	if err != nil {
		return err
	}
	if quantity > product.Inventory {
		quantity = product.Inventory
	}
	s.lines[idx].Quantity = quantity
	return s.persist(ctx, "set quantity")
}

// Clear empties the cart and persists the empty document.
func (s *Store) Clear(ctx context.Context) error {
	s.lines = nil
	return s.persist(ctx, "clear")
}

// Lines returns a copy of the cart's lines in insertion order.
func (s *Store) Lines() []models.CartLine {
	out := make([]models.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// TotalItems is the sum of line quantities, recomputed on every call.
func (s *Store) TotalItems() int {
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// Subtotal is the sum of line totals, recomputed on every call.
func (s *Store) Subtotal() float64 {
	subtotal := 0.0
	for _, l := range s.lines {
		subtotal += l.LineTotal()
	}
	return subtotal
}

// Snapshot returns a deep copy for pricing and checkout use. Mutating the
// live cart afterwards never changes a snapshot already taken.
func (s *Store) Snapshot() models.CartSnapshot {
	return models.CartSnapshot{
		Lines:      s.Lines(),
		TotalItems: s.TotalItems(),
		Subtotal:   s.Subtotal(),
	}
}

func (s *Store) findLine(productID int, variant string) int {
	for i, l := range s.lines {
		if l.ProductID == productID && l.Variant == variant {
			return i
		}
	}
	return -1
}

// persist writes the whole cart document synchronously. On failure the
// in-memory state stands for the session and the error is surfaced, since a
// reload would lose the unpersisted state.
func (s *Store) persist(ctx context.Context, op string) error {
	data, err := json.Marshal(s.lines)
	if err != nil {
		return &models.PersistenceError{Op: op, Err: err}
	}
	if err := s.blobs.Write(ctx, Key(s.sessionID), data); err != nil {
		log.Printf("⚠️ [cart.persist] %s: write failed for session %s: %v", op, s.sessionID, err)
		return &models.PersistenceError{Op: op, Err: err}
	}
	return nil
}
