package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaakshamKindra/tumbler-vibe-shop/catalog"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

type fakeSource struct {
	products []models.Product
	err      error
}

func (f *fakeSource) FetchAll(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func TestNewStoreFallsBackToStaticSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("source error", func(t *testing.T) {
		store := catalog.NewStore(ctx, &fakeSource{err: errors.New("connection refused")})
		assert.True(t, store.Degraded())
		assert.NotEmpty(t, store.All(ctx))
	})

	t.Run("empty source", func(t *testing.T) {
		store := catalog.NewStore(ctx, &fakeSource{})
		assert.True(t, store.Degraded())
		assert.NotEmpty(t, store.All(ctx))
	})

	t.Run("healthy source", func(t *testing.T) {
		store := catalog.NewStore(ctx, &fakeSource{products: catalog.StaticProducts()[:2]})
		assert.False(t, store.Degraded())
		assert.Len(t, store.All(ctx), 2)
	})
}

func TestByID(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStaticStore()

	product, err := store.ByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Arctic Explorer Tumbler", product.Name)
	assert.Equal(t, 1400.0, product.Price)

	_, err = store.ByID(ctx, 999)
	var notFound *models.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "product", notFound.Entity)
}

func TestByCategoryIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStaticStore()

	premium := store.ByCategory(ctx, "premium")
	require.Len(t, premium, 2)
	assert.Equal(t, 1, premium[0].ID)
	assert.Equal(t, 5, premium[1].ID)

	assert.Empty(t, store.ByCategory(ctx, "nonexistent"))
}

func TestByTagIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStaticStore()

	insulated := store.ByTag(ctx, "INSULATED")
	require.Len(t, insulated, 3)
	for _, p := range insulated {
		assert.True(t, p.HasTag("insulated"))
	}
}

func TestFeaturedCapsAtFour(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStaticStore()

	// Five static products are new or best-selling; featured keeps the first
	// four in catalog order.
	featured := store.Featured(ctx)
	require.Len(t, featured, 4)
	for i, p := range featured {
		assert.Equal(t, i+1, p.ID)
		assert.True(t, p.IsNew || p.BestSeller)
	}
}

func TestNewArrivalsAndBestSellers(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStaticStore()

	for _, p := range store.NewArrivals(ctx) {
		assert.True(t, p.IsNew)
	}
	for _, p := range store.BestSellers(ctx) {
		assert.True(t, p.BestSeller)
	}
	assert.NotEmpty(t, store.NewArrivals(ctx))
	assert.NotEmpty(t, store.BestSellers(ctx))
}

func TestAllReturnsACopy(t *testing.T) {
	ctx := context.Background()
	store := catalog.NewStaticStore()

	first := store.All(ctx)
	first[0].Name = "mutated"

	again := store.All(ctx)
	assert.Equal(t, "Arctic Explorer Tumbler", again[0].Name)
}
