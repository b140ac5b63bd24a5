package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/SaakshamKindra/tumbler-vibe-shop/pricing"
)

// LoadPricingConfig reads the pricing policy from the environment, keeping
// the storefront defaults for anything unset. The policy is configuration,
// not law: regional rollouts override it per deployment.
func LoadPricingConfig() pricing.Config {
	cfg := pricing.DefaultConfig()
	cfg.FreeShippingThreshold = getEnvFloat("FREE_SHIPPING_THRESHOLD", cfg.FreeShippingThreshold)
	cfg.StandardShippingFee = getEnvFloat("STANDARD_SHIPPING_FEE", cfg.StandardShippingFee)
	cfg.ExpressShippingFee = getEnvFloat("EXPRESS_SHIPPING_FEE", cfg.ExpressShippingFee)
	cfg.TaxRate = getEnvFloat("TAX_RATE", cfg.TaxRate)
	cfg.DeliveryLeadDays = getEnvInt("DELIVERY_LEAD_DAYS", cfg.DeliveryLeadDays)
	return cfg
}

// PaymentLatency is the simulated gateway's fixed call duration.
func PaymentLatency() time.Duration {
	return time.Duration(getEnvInt("PAYMENT_LATENCY_MS", 1200)) * time.Millisecond
}

// PaymentTimeout bounds a submission's payment call; expiry is treated as a
// retryable failure.
func PaymentTimeout() time.Duration {
	return time.Duration(getEnvInt("PAYMENT_TIMEOUT_MS", 5000)) * time.Millisecond
}

// PaymentAlwaysDecline forces the simulated gateway to decline every charge.
func PaymentAlwaysDecline() bool {
	return os.Getenv("PAYMENT_ALWAYS_DECLINE") == "true"
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using default %v", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ invalid %s=%q, using default %v", key, raw, defaultValue)
		return defaultValue
	}
	return v
}
