package cart

import (
	"context"
	"sync"

	"github.com/SaakshamKindra/tumbler-vibe-shop/catalog"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/storage"
)

// Manager hands out hydrated per-session Stores under a per-session lock, so
// no two mutations for the same session ever interleave and every observer
// sees a cart that matches what storage would read back.
type Manager struct {
	blobs   storage.BlobStore
	catalog *catalog.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(blobs storage.BlobStore, cat *catalog.Store) *Manager {
	return &Manager{
		blobs:   blobs,
		catalog: cat,
		locks:   make(map[string]*sync.Mutex),
	}
}

// With runs fn against the session's hydrated cart while holding the
// session lock.
func (m *Manager) With(ctx context.Context, sessionID string, fn func(*Store) error) error {
	lock := m.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	store := NewStore(m.blobs, m.catalog, sessionID)
	if err := store.Hydrate(ctx); err != nil {
		return err
	}
	return fn(store)
}

// View returns a snapshot of the session's cart.
func (m *Manager) View(ctx context.Context, sessionID string) (models.CartSnapshot, error) {
	var snap models.CartSnapshot
	err := m.With(ctx, sessionID, func(s *Store) error {
		snap = s.Snapshot()
		return nil
	})
	return snap, err
}

// Catalog exposes the catalog the manager validates products against.
func (m *Manager) Catalog() *catalog.Store {
	return m.catalog
}

func (m *Manager) sessionLock(sessionID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()
	lock, ok := m.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[sessionID] = lock
	}
	return lock
}
