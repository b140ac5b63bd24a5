package cart_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/catalog"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/storage"
)

type fixedSource struct {
	products []models.Product
}

func (f *fixedSource) FetchAll(ctx context.Context) ([]models.Product, error) {
	return f.products, nil
}

// smallCatalog returns a catalog with a deliberately tiny inventory so clamp
// behavior is easy to hit.
func smallCatalog(t *testing.T) *catalog.Store {
	t.Helper()
	return catalog.NewStore(context.Background(), &fixedSource{products: []models.Product{
		{
			ID:    7,
			Name:  "Limited Run Tumbler",
			Price: 1500,
			Colors: models.ColorList{
				{Name: "Matte Black", Hex: "#111827", Available: true},
				{Name: "Glacier", Hex: "#E0F2FE", Available: false},
			},
			Images:    models.ImageList{"/images/limited-1.jpg"},
			Category:  "Premium",
			Inventory: 4,
		},
		{
			ID:    8,
			Name:  "Sold Out Flask",
			Price: 1200,
			Colors: models.ColorList{
				{Name: "Steel", Hex: "#64748B", Available: true},
			},
			Category:  "Outdoor",
			Inventory: 0,
		},
	}})
}

func newTestStore(t *testing.T, blobs storage.BlobStore, cat *catalog.Store) *cart.Store {
	t.Helper()
	s := cart.NewStore(blobs, cat, "session-1")
	require.NoError(t, s.Hydrate(context.Background()))
	return s
}

func TestAddItemCreatesLine(t *testing.T) {
	ctx := context.Background()
	cat := smallCatalog(t)
	s := newTestStore(t, storage.NewMemoryBlobStore(), cat)

	product, err := cat.ByID(ctx, 7)
	require.NoError(t, err)
	require.NoError(t, s.AddItem(ctx, product, 2, "Matte Black"))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].ProductID)
	assert.Equal(t, "Limited Run Tumbler", lines[0].ProductName)
	assert.Equal(t, "Matte Black", lines[0].Variant)
	assert.Equal(t, 1500.0, lines[0].UnitPrice)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "/images/limited-1.jpg", lines[0].Image)
}

func TestAddItemMergesSameProductAndVariant(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticStore()
	s := newTestStore(t, storage.NewMemoryBlobStore(), cat)

	product, err := cat.ByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.AddItem(ctx, product, 2, "Ocean Blue"))
	require.NoError(t, s.AddItem(ctx, product, 3, "Ocean Blue"))

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestAddItemDifferentVariantsStaySeparate(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticStore()
	s := newTestStore(t, storage.NewMemoryBlobStore(), cat)

	product, err := cat.ByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.AddItem(ctx, product, 1, "Ocean Blue"))
	require.NoError(t, s.AddItem(ctx, product, 1, "Cherry Red"))

	assert.Len(t, s.Lines(), 2)
	assert.Equal(t, 2, s.TotalItems())
}

func TestAddItemClampsAtInventory(t *testing.T) {
	ctx := context.Background()
	cat := smallCatalog(t)
	s := newTestStore(t, storage.NewMemoryBlobStore(), cat)

	product, err := cat.ByID(ctx, 7)
	require.NoError(t, err)

	t.Run("fresh line clamps", func(t *testing.T) {
		require.NoError(t, s.AddItem(ctx, product, 10, "Matte Black"))
		assert.Equal(t, 4, s.Lines()[0].Quantity)
	})

	t.Run("merge clamps silently", func(t *testing.T) {
		// Already at inventory; another add succeeds without growing the line.
		require.NoError(t, s.AddItem(ctx, product, 1, "Matte Black"))
		assert.Equal(t, 4, s.Lines()[0].Quantity)
	})
}

func TestAddItemValidation(t *testing.T) {
	ctx := context.Background()
	cat := smallCatalog(t)
	s := newTestStore(t, storage.NewMemoryBlobStore(), cat)

	limited, err := cat.ByID(ctx, 7)
	require.NoError(t, err)
	soldOut, err := cat.ByID(ctx, 8)
	require.NoError(t, err)

	tests := []struct {
		name     string
		product  models.Product
		quantity int
		variant  string
	}{
		{name: "zero quantity", product: limited, quantity: 0, variant: "Matte Black"},
		{name: "negative quantity", product: limited, quantity: -3, variant: "Matte Black"},
		{name: "unknown variant", product: limited, quantity: 1, variant: "Neon Pink"},
		{name: "unavailable variant", product: limited, quantity: 1, variant: "Glacier"},
		{name: "out of stock", product: soldOut, quantity: 1, variant: "Steel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddItem(ctx, tt.product, tt.quantity, tt.variant)
			var validation *models.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Empty(t, s.Lines())
		})
	}
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticStore()
	s := newTestStore(t, storage.NewMemoryBlobStore(), cat)

	product, err := cat.ByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.AddItem(ctx, product, 2, "Ocean Blue"))

	t.Run("absent line is a no-op", func(t *testing.T) {
		require.NoError(t, s.RemoveItem(ctx, 999, "Ocean Blue"))
		require.NoError(t, s.RemoveItem(ctx, 1, "Cherry Red"))
		assert.Len(t, s.Lines(), 1)
	})

	t.Run("removes the matching line", func(t *testing.T) {
		require.NoError(t, s.RemoveItem(ctx, 1, "Ocean Blue"))
		assert.Empty(t, s.Lines())
	})

	t.Run("removing again stays a no-op", func(t *testing.T) {
		require.NoError(t, s.RemoveItem(ctx, 1, "Ocean Blue"))
		assert.Empty(t, s.Lines())
	})
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()
	cat := smallCatalog(t)
	s := newTestStore(t, storage.NewMemoryBlobStore(), cat)

	product, err := cat.ByID(ctx, 7)
	require.NoError(t, err)
	require.NoError(t, s.AddItem(ctx, product, 2, "Matte Black"))

	t.Run("sets within inventory", func(t *testing.T) {
		require.NoError(t, s.SetQuantity(ctx, 7, "Matte Black", 3))
		assert.Equal(t, 3, s.Lines()[0].Quantity)
	})

	t.Run("clamps above inventory", func(t *testing.T) {
		require.NoError(t, s.SetQuantity(ctx, 7, "Matte Black", 50))
		assert.Equal(t, 4, s.Lines()[0].Quantity)
	})

	t.Run("absent line is a no-op", func(t *testing.T) {
		require.NoError(t, s.SetQuantity(ctx, 999, "Matte Black", 2))
		assert.Len(t, s.Lines(), 1)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		require.NoError(t, s.SetQuantity(ctx, 7, "Matte Black", 0))
		assert.Empty(t, s.Lines())
	})
}

func TestTotalsAreDerivedFromLines(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticStore()
	s := newTestStore(t, storage.NewMemoryBlobStore(), cat)

	tumbler, err := cat.ByID(ctx, 1)
	require.NoError(t, err)
	mug, err := cat.ByID(ctx, 3)
	require.NoError(t, err)

	require.NoError(t, s.AddItem(ctx, tumbler, 2, "Ocean Blue"))
	require.NoError(t, s.AddItem(ctx, mug, 1, "Teal"))

	assert.Equal(t, 3, s.TotalItems())
	assert.InDelta(t, 2*1400+999, s.Subtotal(), 1e-9)
}

func TestSnapshotIsADeepCopy(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticStore()
	s := newTestStore(t, storage.NewMemoryBlobStore(), cat)

	product, err := cat.ByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.AddItem(ctx, product, 2, "Ocean Blue"))

	snap := s.Snapshot()
	require.NoError(t, s.SetQuantity(ctx, 1, "Ocean Blue", 5))
	require.NoError(t, s.AddItem(ctx, product, 1, "Cherry Red"))

	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, 2, snap.TotalItems)
	assert.InDelta(t, 2800, snap.Subtotal, 1e-9)
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticStore()
	blobs := storage.NewMemoryBlobStore()

	s := newTestStore(t, blobs, cat)
	product, err := cat.ByID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, s.AddItem(ctx, product, 2, "Ocean Blue"))

	// A fresh store for the same session reads the persisted document back.
	reloaded := newTestStore(t, blobs, cat)
	require.Len(t, reloaded.Lines(), 1)
	assert.Equal(t, s.Lines(), reloaded.Lines())
}

func TestPersistenceFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticStore()
	blobs := storage.NewMemoryBlobStore()
	blobs.FailWrites = true

	s := newTestStore(t, blobs, cat)
	product, err := cat.ByID(ctx, 1)
	require.NoError(t, err)

	err = s.AddItem(ctx, product, 2, "Ocean Blue")
	var persistence *models.PersistenceError
	require.ErrorAs(t, err, &persistence)

	// The mutation stands for this session even though the write failed.
	require.Len(t, s.Lines(), 1)
	assert.Equal(t, 2, s.Lines()[0].Quantity)
}

func TestHydrateDiscardsCorruptDocument(t *testing.T) {
	ctx := context.Background()
	blobs := storage.NewMemoryBlobStore()
	require.NoError(t, blobs.Write(ctx, cart.Key("session-1"), []byte("{not json")))

	s := cart.NewStore(blobs, catalog.NewStaticStore(), "session-1")
	require.NoError(t, s.Hydrate(ctx))
	assert.Empty(t, s.Lines())
}

func TestManagerSerializesSessionMutations(t *testing.T) {
	ctx := context.Background()
	cat := catalog.NewStaticStore()
	m := cart.NewManager(storage.NewMemoryBlobStore(), cat)

	product, err := cat.ByID(ctx, 1)
	require.NoError(t, err)

	done := make(chan error, 10)
	for i := 0; i < 10; i++ {
		go func() {
			done <- m.With(ctx, "session-1", func(s *cart.Store) error {
				return s.AddItem(ctx, product, 1, "Ocean Blue")
			})
		}()
	}
	for i := 0; i < 10; i++ {
		require.NoError(t, <-done)
	}

	snap, err := m.View(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 10, snap.Lines[0].Quantity)
}
