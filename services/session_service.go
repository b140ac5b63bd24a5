package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the JWT claims for guest-session tokens. Checkout
// is guest-friendly: a session identifies a cart, not an account.
type SessionClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// SessionService signs and verifies guest-session tokens
type SessionService struct {
	secretKey string
}

var sessionService *SessionService

// InitSessionService initializes the session service with a secret key
func InitSessionService(secretKey string) error {
	if secretKey == "" {
		return errors.New("session secret key cannot be empty")
	}
	sessionService = &SessionService{secretKey: secretKey}
	return nil
}

// GetSessionService returns the initialized session service
func GetSessionService() *SessionService {
	if sessionService == nil {
		// Fallback to environment variable if not initialized
		secretKey := os.Getenv("SESSION_JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		sessionService = &SessionService{secretKey: secretKey}
	}
	return sessionService
}

// GenerateSessionToken creates a new signed token for a session ID.
// Tokens expire in 30 days; the cart blob outlives the token only until the
// next visit mints a fresh session.
func (s *SessionService) GenerateSessionToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("sessionID cannot be empty")
	}

	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(30 * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "tumbler-vibe-shop",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifySessionToken verifies and parses a session token
func (s *SessionService) VerifySessionToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.SessionID == "" {
		return nil, errors.New("token missing session id")
	}

	return claims, nil
}

// Convenience functions that use the global service

// GenerateSessionToken signs a session token using the global service
func GenerateSessionToken(sessionID string) (string, error) {
	return GetSessionService().GenerateSessionToken(sessionID)
}

// VerifySessionToken verifies a session token using the global service
func VerifySessionToken(tokenString string) (*SessionClaims, error) {
	return GetSessionService().VerifySessionToken(tokenString)
}
