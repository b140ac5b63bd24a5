package checkout

import (
	"regexp"
	"strings"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

var indianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya",
	"Mizoram", "Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim",
	"Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand",
	"West Bengal", "Delhi",
}

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pincodePattern    = regexp.MustCompile(`^\d{6}$`)
	phonePattern      = regexp.MustCompile(`^\d{10}$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVCPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// ValidateForm checks the checkout form and returns a field→message map.
// An empty map means the form is valid. Card fields are checked only when
// the payment method is "card".
func ValidateForm(r models.CheckoutRequest) models.FieldErrors {
	fields := models.FieldErrors{}

	if strings.TrimSpace(r.FullName) == "" {
		fields["full_name"] = "Full name is required"
	}
	switch {
	case strings.TrimSpace(r.Email) == "":
		fields["email"] = "Email is required"
	case !emailPattern.MatchString(r.Email):
		fields["email"] = "Enter a valid email address"
	}
	if strings.TrimSpace(r.Address) == "" {
		fields["address"] = "Address is required"
	}
	if strings.TrimSpace(r.City) == "" {
		fields["city"] = "City is required"
	}
	switch {
	case strings.TrimSpace(r.State) == "":
		fields["state"] = "State is required"
	case !validState(r.State):
		fields["state"] = "Select a valid state"
	}
	if !pincodePattern.MatchString(r.Pincode) {
		fields["pincode"] = "Pincode must be 6 digits"
	}
	if !phonePattern.MatchString(strippedDigits(r.Phone)) {
		fields["phone"] = "Phone number must be 10 digits"
	}

	switch r.ShippingMethod {
	case models.ShippingStandard, models.ShippingExpress:
	default:
		fields["shipping_method"] = "Choose standard or express shipping"
	}

	switch r.PaymentMethod {
	case models.PaymentUPI:
	case models.PaymentCard:
		if !cardNumberPattern.MatchString(strippedDigits(r.CardNumber)) {
			fields["card_number"] = "Card number must be 16 digits"
		}
		if !cardExpiryPattern.MatchString(r.CardExpiry) {
			fields["card_expiry"] = "Expiry must be in MM/YY format"
		}
		if !cardCVCPattern.MatchString(r.CardCVC) {
			fields["card_cvc"] = "CVC must be 3 or 4 digits"
		}
	default:
		fields["payment_method"] = "Choose card or UPI payment"
	}

	return fields
}

func validState(state string) bool {
	for _, s := range indianStates {
		if strings.EqualFold(s, strings.TrimSpace(state)) {
			return true
		}
	}
	return false
}

// strippedDigits drops spaces and dashes so "4111 1111 1111 1111" validates.
func strippedDigits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
