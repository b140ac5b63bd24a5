package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/catalog"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/pricing"
	"github.com/SaakshamKindra/tumbler-vibe-shop/storage"
)

type stubGateway struct {
	err     error
	block   chan struct{} // when set, Charge waits here or on ctx
	charges int
	amounts []float64
}

func (g *stubGateway) Charge(ctx context.Context, amount float64, method models.PaymentMethod) error {
	g.charges++
	g.amounts = append(g.amounts, amount)
	if g.block != nil {
		select {
		case <-g.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return g.err
}

type flowFixture struct {
	flow    *Flow
	gateway *stubGateway
	history *History
	blobs   *storage.MemoryBlobStore
	cart    *cart.Store
	catalog *catalog.Store
}

func newFlowFixture(t *testing.T) *flowFixture {
	t.Helper()
	blobs := storage.NewMemoryBlobStore()
	cat := catalog.NewStaticStore()
	gateway := &stubGateway{}
	history := NewHistory(blobs)
	flow := NewFlow(gateway, history, pricing.DefaultConfig(), time.Second)
	flow.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }

	cartStore := cart.NewStore(blobs, cat, "session-1")
	require.NoError(t, cartStore.Hydrate(context.Background()))

	return &flowFixture{flow: flow, gateway: gateway, history: history, blobs: blobs, cart: cartStore, catalog: cat}
}

func (f *flowFixture) fillCart(t *testing.T, productID, quantity int, variant string) {
	t.Helper()
	product, err := f.catalog.ByID(context.Background(), productID)
	require.NoError(t, err)
	require.NoError(t, f.cart.AddItem(context.Background(), product, quantity, variant))
}

func TestSubmitSuccess(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t)
	f.fillCart(t, 1, 2, "Ocean Blue")

	order, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.NotEmpty(t, order.OrderID)
	assert.Equal(t, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), order.OrderDate)
	assert.Equal(t, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC), order.EstimatedDeliveryDate)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.Equal(t, models.ShippingStandard, order.ShippingMethod)
	assert.Equal(t, "Aarav Sharma", order.ShippingDetails.FullName)

	// 2800 subtotal clears the free-shipping threshold; 18% tax on subtotal.
	assert.InDelta(t, 2800, order.Subtotal, 1e-9)
	assert.InDelta(t, 0, order.Shipping, 1e-9)
	assert.InDelta(t, 2800*0.18, order.Tax, 1e-9)

	// The gateway was charged the quoted total.
	require.Len(t, f.gateway.amounts, 1)
	assert.InDelta(t, order.Total, f.gateway.amounts[0], 1e-9)

	// Cart cleared, order in history.
	assert.Empty(t, f.cart.Lines())
	orders, err := f.history.List(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.OrderID, orders[0].OrderID)
}

func TestSubmitValidationFailureSkipsCharge(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t)
	f.fillCart(t, 1, 1, "Ocean Blue")

	form := validForm()
	form.Email = "nope"

	order, err := f.flow.Submit(ctx, "session-1", f.cart, form)
	assert.Nil(t, order)

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Fields, "email")

	assert.Zero(t, f.gateway.charges)
	assert.Len(t, f.cart.Lines(), 1)
}

func TestSubmitEmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t)

	order, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
	assert.Nil(t, order)

	var validation *models.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "cart is empty", validation.Message)
	assert.Zero(t, f.gateway.charges)
}

func TestSubmitDeclinedPaymentLeavesCartIntact(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t)
	f.fillCart(t, 1, 2, "Ocean Blue")
	f.gateway.err = errors.New("card declined")

	order, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
	assert.Nil(t, order)

	var submission *models.SubmissionError
	require.ErrorAs(t, err, &submission)
	assert.True(t, submission.Retryable)

	// Nothing committed: cart untouched, no order written.
	assert.Len(t, f.cart.Lines(), 1)
	orders, listErr := f.history.List(ctx, "session-1")
	require.NoError(t, listErr)
	assert.Empty(t, orders)

	// Fixing the decline and retrying the same cart succeeds.
	f.gateway.err = nil
	retried, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
	require.NoError(t, err)
	assert.NotNil(t, retried)
}

func TestSubmitPaymentTimeoutIsRetryable(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t)
	f.flow.paymentTimeout = 10 * time.Millisecond
	f.fillCart(t, 1, 1, "Ocean Blue")
	f.gateway.block = make(chan struct{}) // never released: charge hangs until ctx expires

	order, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
	assert.Nil(t, order)

	var submission *models.SubmissionError
	require.ErrorAs(t, err, &submission)
	assert.True(t, submission.Retryable)
	assert.Equal(t, "payment timed out", submission.Reason)
	assert.Len(t, f.cart.Lines(), 1)
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t)
	f.fillCart(t, 1, 1, "Ocean Blue")
	f.gateway.block = make(chan struct{})

	firstDone := make(chan error, 1)
	go func() {
		_, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
		firstDone <- err
	}()

	// Wait for the first submission to take the in-flight slot.
	require.Eventually(t, func() bool { return f.flow.InFlight("session-1") },
		time.Second, time.Millisecond)

	_, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
	var submission *models.SubmissionError
	require.ErrorAs(t, err, &submission)
	assert.False(t, submission.Retryable)

	close(f.gateway.block)
	require.NoError(t, <-firstDone)
	assert.False(t, f.flow.InFlight("session-1"))
}

func TestSubmitOrdersAreNewestFirst(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t)

	f.fillCart(t, 1, 1, "Ocean Blue")
	first, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
	require.NoError(t, err)

	f.fillCart(t, 3, 1, "Teal")
	second, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
	require.NoError(t, err)

	orders, err := f.history.List(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.OrderID, orders[0].OrderID)
	assert.Equal(t, first.OrderID, orders[1].OrderID)
}

func TestSubmitOrderIsImmutableAfterPlacement(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t)
	f.fillCart(t, 1, 2, "Ocean Blue")

	order, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
	require.NoError(t, err)

	// New cart activity after checkout never reaches the placed order.
	f.fillCart(t, 3, 5, "Teal")
	stored, err := f.history.Get(ctx, "session-1", order.OrderID)
	require.NoError(t, err)
	require.Len(t, stored.Lines, 1)
	assert.Equal(t, 2, stored.Lines[0].Quantity)
	assert.InDelta(t, order.Total, stored.Total, 1e-9)
}

func TestSubmitReturnsOrderAlongsidePersistenceError(t *testing.T) {
	ctx := context.Background()
	f := newFlowFixture(t)
	f.fillCart(t, 1, 2, "Ocean Blue")

	// Storage dies after the cart is populated but before submission: payment
	// still completes, so the order must come back with the error.
	f.blobs.FailWrites = true

	order, err := f.flow.Submit(ctx, "session-1", f.cart, validForm())
	require.NotNil(t, order)

	var persistence *models.PersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.Equal(t, 1, f.gateway.charges)
}

func validForm() models.CheckoutRequest {
	return models.CheckoutRequest{
		FullName:       "Aarav Sharma",
		Email:          "aarav@example.com",
		Phone:          "9876543210",
		Address:        "221B MG Road",
		City:           "Mumbai",
		State:          "Maharashtra",
		Pincode:        "400001",
		ShippingMethod: models.ShippingStandard,
		PaymentMethod:  models.PaymentCard,
		CardNumber:     "4111111111111111",
		CardExpiry:     "12/27",
		CardCVC:        "123",
	}
}
