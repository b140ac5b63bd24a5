// Package catalog holds the read-only product catalog. The store is loaded
// once from its backing source and serves derived views; when the source is
// unreachable it falls back to the bundled static snapshot instead of
// surfacing an empty catalog.
package catalog

import (
	"context"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// refreshTTL bounds how stale a source-backed catalog may get before a read
// triggers a refetch.
const refreshTTL = 5 * time.Minute

// Source fetches the full product list from the backing data service.
type Source interface {
	FetchAll(ctx context.Context) ([]models.Product, error)
}

// Store exposes the product list and derived read views. No mutation surface.
type Store struct {
	source Source // nil for a purely static store

	mu        sync.RWMutex
	products  []models.Product
	byID      map[int]models.Product
	fetchedAt time.Time
	degraded  bool
}

// NewStore loads the catalog from source, falling back to the static
// snapshot on failure. The fallback is a deliberate degraded mode, not an
// error callers handle per-request.
func NewStore(ctx context.Context, source Source) *Store {
	s := &Store{source: source}
	products, err := source.FetchAll(ctx)
	if err != nil || len(products) == 0 {
		if err != nil {
			log.Printf("⚠️ catalog source unavailable, serving static snapshot: %v", err)
		} else {
			log.Printf("⚠️ catalog source returned no products, serving static snapshot")
		}
		s.install(StaticProducts(), true)
		return s
	}
	s.install(products, false)
	log.Printf("✅ catalog loaded: %d products", len(products))
	return s
}

// NewStaticStore builds a store over the bundled snapshot only. Used by
// tests and by startup when no database is configured.
func NewStaticStore() *Store {
	s := &Store{}
	s.install(StaticProducts(), false)
	return s
}

func (s *Store) install(products []models.Product, degraded bool) {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	s.mu.Lock()
	s.products = products
	s.byID = byID
	s.fetchedAt = time.Now()
	s.degraded = degraded
	s.mu.Unlock()
}

// maybeRefresh refetches from the source when the snapshot is stale. A failed
// refresh keeps serving the previous snapshot.
func (s *Store) maybeRefresh(ctx context.Context) {
	if s.source == nil {
		return
	}
	s.mu.RLock()
	stale := time.Since(s.fetchedAt) >= refreshTTL
	s.mu.RUnlock()
	if !stale {
		return
	}
	products, err := s.source.FetchAll(ctx)
	if err != nil || len(products) == 0 {
		s.mu.Lock()
		s.fetchedAt = time.Now() // back off, retry after another TTL
		s.mu.Unlock()
		if err != nil {
			log.Printf("⚠️ catalog refresh failed, keeping previous snapshot: %v", err)
		}
		return
	}
	s.install(products, false)
}

// Degraded reports whether the store is serving the static fallback.
func (s *Store) Degraded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.degraded
}

// All returns every product in stable insertion order.
func (s *Store) All(ctx context.Context) []models.Product {
	s.maybeRefresh(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ByID returns the product or a NotFoundError.
func (s *Store) ByID(ctx context.Context, id int) (models.Product, error) {
	s.maybeRefresh(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, &models.NotFoundError{Entity: "product", Key: strconv.Itoa(id)}
	}
	return p, nil
}

// ByCategory matches the category label case-insensitively.
func (s *Store) ByCategory(ctx context.Context, category string) []models.Product {
	return s.filter(ctx, func(p models.Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

// ByTag matches tag membership case-insensitively.
func (s *Store) ByTag(ctx context.Context, tag string) []models.Product {
	return s.filter(ctx, func(p models.Product) bool {
		return p.HasTag(tag)
	})
}

// Featured returns new or best-selling products, capped at four, in stable
// insertion order. No ranking.
func (s *Store) Featured(ctx context.Context) []models.Product {
	featured := s.filter(ctx, func(p models.Product) bool {
		return p.IsNew || p.BestSeller
	})
	if len(featured) > 4 {
		featured = featured[:4]
	}
	return featured
}

func (s *Store) NewArrivals(ctx context.Context) []models.Product {
	return s.filter(ctx, func(p models.Product) bool { return p.IsNew })
}

func (s *Store) BestSellers(ctx context.Context) []models.Product {
	return s.filter(ctx, func(p models.Product) bool { return p.BestSeller })
}

func (s *Store) filter(ctx context.Context, keep func(models.Product) bool) []models.Product {
	s.maybeRefresh(ctx)
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, 0)
	for _, p := range s.products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
