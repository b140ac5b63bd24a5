package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/SaakshamKindra/tumbler-vibe-shop/models"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client. Returns nil when no API key
// is configured; order confirmation emails are then skipped.
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "orders@tumblervibe.shop" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// SendOrderConfirmationEmail sends the post-checkout confirmation via Resend.
// Best effort: a failure is logged, never surfaced to the buyer.
func (r *ResendClient) SendOrderConfirmationEmail(order models.Order) error {
	// Build order items HTML rows
	var itemsRows strings.Builder
	for _, line := range order.Lines {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s (%s)</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">₹%.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">₹%.2f</td>
      </tr>
    `, line.ProductName, line.Variant, line.Quantity, line.UnitPrice, line.LineTotal()))
	}

	shippingLabel := fmt.Sprintf("₹%.2f", order.Shipping)
	if order.Shipping == 0 {
		shippingLabel = "Free"
	}

	var html strings.Builder
	html.WriteString(fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"></head>
<body style="margin:0; padding:24px; background:#faf8f3; font-family:Arial,Helvetica,sans-serif;">
  <div style="max-width:560px; margin:0 auto; background:#ffffff; border-radius:8px; padding:32px;">
    <h1 style="font-size:20px; color:#262622; margin:0 0 4px;">Thanks for your order, %s!</h1>
    <p style="font-size:14px; color:#79776d; margin:0 0 16px;">
      Order #%s · Placed on %s · Estimated delivery %s
    </p>
    <table style="width:100%%; border-collapse:collapse; border-top:1px solid #ece9e1;">
      %s
    </table>
    <table style="width:100%%; border-collapse:collapse; border-top:1px solid #ece9e1; margin-top:8px;">
      <tr>
        <td style="padding:6px 0; font-size:14px; color:#79776d;">Subtotal</td>
        <td style="padding:6px 0; font-size:14px; text-align:right; color:#262622;">₹%.2f</td>
      </tr>
      <tr>
        <td style="padding:6px 0; font-size:14px; color:#79776d;">Shipping (%s)</td>
        <td style="padding:6px 0; font-size:14px; text-align:right; color:#262622;">%s</td>
      </tr>
      <tr>
        <td style="padding:6px 0; font-size:14px; color:#79776d;">Tax (GST)</td>
        <td style="padding:6px 0; font-size:14px; text-align:right; color:#262622;">₹%.2f</td>
      </tr>
      <tr>
        <td style="padding:8px 0; font-size:16px; font-weight:700; color:#262622; border-top:1px solid #ece9e1;">Total</td>
        <td style="padding:8px 0; font-size:16px; font-weight:700; text-align:right; color:#262622; border-top:1px solid #ece9e1;">₹%.2f</td>
      </tr>
    </table>
    <p style="font-size:13px; color:#79776d; margin-top:24px;">
      Shipping to: %s, %s, %s, %s %s
    </p>
  </div>
</body>
</html>`,
		order.ShippingDetails.FullName,
		order.OrderID,
		order.OrderDate.Format("Jan 02, 2006"),
		order.EstimatedDeliveryDate.Format("Jan 02, 2006"),
		itemsRows.String(),
		order.Subtotal,
		order.ShippingMethod,
		shippingLabel,
		order.Tax,
		order.Total,
		order.ShippingDetails.Address,
		order.ShippingDetails.City,
		order.ShippingDetails.State,
		order.ShippingDetails.Pincode,
		order.ShippingDetails.Phone,
	))

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      []string{order.ShippingDetails.Email},
		"subject": fmt.Sprintf("Your VibeTumbler order #%s is confirmed", order.OrderID),
		"html":    html.String(),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API error (%d): %s", resp.StatusCode, string(body))
	}

	log.Printf("✅ Order confirmation email sent for order %s", order.OrderID)
	return nil
}
