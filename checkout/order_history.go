package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/storage"
)

// HistoryKey returns the blob key for a session's order history document.
func HistoryKey(sessionID string) string {
	return "orders:" + sessionID
}

// History is the append-only, newest-first order history for each session,
// persisted as a whole JSON document per session.
type History struct {
	blobs storage.BlobStore
}

func NewHistory(blobs storage.BlobStore) *History {
	return &History{blobs: blobs}
}

// Append prepends the order so the history stays newest-first.
func (h *History) Append(ctx context.Context, sessionID string, order models.Order) error {
	existing, err := h.List(ctx, sessionID)
	if err != nil {
		return err
	}
	updated := append([]models.Order{order}, existing...)
	data, err := json.Marshal(updated)
	if err != nil {
		return &models.PersistenceError{Op: "order append", Err: err}
	}
	if err := h.blobs.Write(ctx, HistoryKey(sessionID), data); err != nil {
		return &models.PersistenceError{Op: "order append", Err: err}
	}
	return nil
}

// List returns the session's orders, newest first. No history yet is an
// empty list, not an error.
func (h *History) List(ctx context.Context, sessionID string) ([]models.Order, error) {
	data, err := h.blobs.Read(ctx, HistoryKey(sessionID))
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Order{}, nil
	}
	if err != nil {
		return nil, &models.PersistenceError{Op: "order list", Err: err}
	}
	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		log.Printf("⚠️ [orders.list] discarding corrupt history for session %s: %v", sessionID, err)
		return []models.Order{}, nil
	}
	return orders, nil
}

// Get returns one order or a NotFoundError.
func (h *History) Get(ctx context.Context, sessionID, orderID string) (models.Order, error) {
	orders, err := h.List(ctx, sessionID)
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range orders {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return models.Order{}, &models.NotFoundError{Entity: "order", Key: orderID}
}
