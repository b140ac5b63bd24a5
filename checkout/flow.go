// Package checkout drives the submission flow: validate the form, price the
// cart snapshot, make the single payment call, and on confirmed success —
// never on attempt — persist the order and clear the cart.
package checkout

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/SaakshamKindra/tumbler-vibe-shop/cart"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
	"github.com/SaakshamKindra/tumbler-vibe-shop/pricing"
)

// State names the stages a submission moves through.
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Flow coordinates checkout submissions. One submission may be in flight per
// session; a second submit while one is pending is rejected, not queued.
type Flow struct {
	gateway        PaymentGateway
	history        *History
	pricing        pricing.Config
	paymentTimeout time.Duration

	now   func() time.Time
	newID func() string

	mu       sync.Mutex
	inflight map[string]bool
}

func NewFlow(gateway PaymentGateway, history *History, cfg pricing.Config, paymentTimeout time.Duration) *Flow {
	return &Flow{
		gateway:        gateway,
		history:        history,
		pricing:        cfg,
		paymentTimeout: paymentTimeout,
		now:            time.Now,
		newID:          func() string { return uuid.Must(uuid.NewV7()).String() },
		inflight:       make(map[string]bool),
	}
}

// Submit runs one submission for the session against its hydrated cart.
//
// On a retryable failure the cart is left untouched and no order is written.
// On success the order is appended to history and the cart cleared; if either
// durable write fails after the payment succeeded, the order is still
// returned alongside a PersistenceError so the caller can surface the
// degraded mode.
func (f *Flow) Submit(ctx context.Context, sessionID string, cartStore *cart.Store, form models.CheckoutRequest) (*models.Order, error) {
	if !f.begin(sessionID) {
		return nil, &models.SubmissionError{Reason: "a submission is already in progress", Retryable: false}
	}
	defer f.end(sessionID)

	log.Printf("[checkout.submit] session=%s state=%s", sessionID, StateValidating)
	if fields := ValidateForm(form); len(fields) > 0 {
		return nil, &models.ValidationError{Message: "checkout form has invalid fields", Fields: fields}
	}

	snapshot := cartStore.Snapshot()
	if snapshot.TotalItems == 0 {
		return nil, &models.ValidationError{Message: "cart is empty"}
	}

	quote := f.pricing.Quote(snapshot, form.ShippingMethod)

	log.Printf("[checkout.submit] session=%s state=%s total=%.2f", sessionID, StateSubmitting, quote.Total)
	chargeCtx, cancel := context.WithTimeout(ctx, f.paymentTimeout)
	defer cancel()
	if err := f.gateway.Charge(chargeCtx, quote.Total, form.PaymentMethod); err != nil {
		log.Printf("[checkout.submit] session=%s state=%s: %v", sessionID, StateFailed, err)
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &models.SubmissionError{Reason: "payment timed out", Retryable: true, Err: err}
		}
		return nil, &models.SubmissionError{Reason: "payment was not confirmed", Retryable: true, Err: err}
	}

	placedAt := f.now()
	order := models.Order{
		OrderID:               f.newID(),
		OrderDate:             placedAt,
		EstimatedDeliveryDate: placedAt.AddDate(0, 0, f.pricing.DeliveryLeadDays),
		Lines:                 snapshot.Lines,
		ShippingDetails:       form.ToShippingDetails(),
		ShippingMethod:        form.ShippingMethod,
		PaymentMethod:         form.PaymentMethod,
		PriceBreakdown:        quote,
	}

	// Payment is confirmed past this point: the order exists even if a
	// durable write fails, so surface write errors without undoing anything.
	var degraded error
	if err := f.history.Append(ctx, sessionID, order); err != nil {
		log.Printf("⚠️ [checkout.submit] session=%s order %s not persisted: %v", sessionID, order.OrderID, err)
		degraded = err
	}
	if err := cartStore.Clear(ctx); err != nil {
		log.Printf("⚠️ [checkout.submit] session=%s cart clear not persisted: %v", sessionID, err)
		if degraded == nil {
			degraded = err
		}
	}

	log.Printf("[checkout.submit] session=%s state=%s order=%s", sessionID, StateSucceeded, order.OrderID)
	return &order, degraded
}

// InFlight reports whether the session already has a pending submission.
// Handlers check this before taking the session's cart lock so a duplicate
// submit is rejected immediately instead of queueing behind the first.
func (f *Flow) InFlight(sessionID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inflight[sessionID]
}

func (f *Flow) begin(sessionID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inflight[sessionID] {
		return false
	}
	f.inflight[sessionID] = true
	return true
}

func (f *Flow) end(sessionID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inflight, sessionID)
}
