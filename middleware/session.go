package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/SaakshamKindra/tumbler-vibe-shop/services"
)

const (
	// SessionCookie carries the signed guest-session token.
	SessionCookie = "tvs_session"

	// sessionCookieMaxAge matches the token's 30-day expiry.
	sessionCookieMaxAge = 30 * 24 * 60 * 60
)

// GuestSession resolves the caller's session ID from the session cookie,
// minting a fresh guest session when the cookie is absent or invalid. Guest
// checkout is first-class: no account is ever required to own a cart.
func GuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
			if claims, err := services.VerifySessionToken(token); err == nil {
				c.Set("sessionID", claims.SessionID)
				c.Next()
				return
			}
			// Fall through and mint a new session for a bad token.
		}

		sessionID := uuid.NewString()
		token, err := services.GenerateSessionToken(sessionID)
		if err != nil {
			log.Printf("❌ [session] failed to sign session token: %v", err)
			// Session still works for this request; only the cookie is lost.
			c.Set("sessionID", sessionID)
			c.Next()
			return
		}

		c.SetCookie(SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)
		c.Set("sessionID", sessionID)
		c.Next()
	}
}

// SessionID pulls the resolved session ID out of the gin context.
func SessionID(c *gin.Context) string {
	if v, ok := c.Get("sessionID"); ok {
		if sid, ok := v.(string); ok {
			return sid
		}
	}
	return ""
}
