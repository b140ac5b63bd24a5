package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaakshamKindra/tumbler-vibe-shop/checkout"
	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

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

func TestValidateFormAcceptsValidForm(t *testing.T) {
	assert.Empty(t, checkout.ValidateForm(validForm()))
}

func TestValidateFormFieldMatrix(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.CheckoutRequest)
		wantField string
	}{
		{name: "missing full name", mutate: func(r *models.CheckoutRequest) { r.FullName = "  " }, wantField: "full_name"},
		{name: "missing email", mutate: func(r *models.CheckoutRequest) { r.Email = "" }, wantField: "email"},
		{name: "malformed email", mutate: func(r *models.CheckoutRequest) { r.Email = "not-an-email" }, wantField: "email"},
		{name: "missing address", mutate: func(r *models.CheckoutRequest) { r.Address = "" }, wantField: "address"},
		{name: "missing city", mutate: func(r *models.CheckoutRequest) { r.City = "" }, wantField: "city"},
		{name: "missing state", mutate: func(r *models.CheckoutRequest) { r.State = "" }, wantField: "state"},
		{name: "unknown state", mutate: func(r *models.CheckoutRequest) { r.State = "Atlantis" }, wantField: "state"},
		{name: "short pincode", mutate: func(r *models.CheckoutRequest) { r.Pincode = "4000" }, wantField: "pincode"},
		{name: "alphabetic pincode", mutate: func(r *models.CheckoutRequest) { r.Pincode = "40000A" }, wantField: "pincode"},
		{name: "short phone", mutate: func(r *models.CheckoutRequest) { r.Phone = "98765" }, wantField: "phone"},
		{name: "invalid shipping method", mutate: func(r *models.CheckoutRequest) { r.ShippingMethod = "overnight" }, wantField: "shipping_method"},
		{name: "invalid payment method", mutate: func(r *models.CheckoutRequest) { r.PaymentMethod = "cheque" }, wantField: "payment_method"},
		{name: "short card number", mutate: func(r *models.CheckoutRequest) { r.CardNumber = "4111" }, wantField: "card_number"},
		{name: "expiry month 13", mutate: func(r *models.CheckoutRequest) { r.CardExpiry = "13/27" }, wantField: "card_expiry"},
		{name: "expiry without slash", mutate: func(r *models.CheckoutRequest) { r.CardExpiry = "1227" }, wantField: "card_expiry"},
		{name: "short cvc", mutate: func(r *models.CheckoutRequest) { r.CardCVC = "12" }, wantField: "card_cvc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)
			fields := checkout.ValidateForm(form)
			require.Len(t, fields, 1)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestValidateFormCollectsEveryInvalidField(t *testing.T) {
	fields := checkout.ValidateForm(models.CheckoutRequest{})

	// Every required field reports at once, not just the first failure.
	for _, want := range []string{
		"full_name", "email", "phone", "address", "city", "state", "pincode",
		"shipping_method", "payment_method",
	} {
		assert.Contains(t, fields, want)
	}
}

func TestValidateFormToleratesFormattedNumbers(t *testing.T) {
	form := validForm()
	form.CardNumber = "4111 1111 1111 1111"
	form.Phone = "98765-43210"
	assert.Empty(t, checkout.ValidateForm(form))
}

func TestValidateFormStateIsCaseInsensitive(t *testing.T) {
	form := validForm()
	form.State = "maharashtra"
	assert.Empty(t, checkout.ValidateForm(form))
}

func TestValidateFormSkipsCardFieldsForUPI(t *testing.T) {
	form := validForm()
	form.PaymentMethod = models.PaymentUPI
	form.CardNumber = ""
	form.CardExpiry = ""
	form.CardCVC = ""
	assert.Empty(t, checkout.ValidateForm(form))
}
