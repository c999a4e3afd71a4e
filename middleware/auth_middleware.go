package middleware

import (
	"net/http"

	"storefront/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookie is the name of the HTTP-only cookie carrying the session JWT.
const SessionCookie = "session"

// Context keys set by RequireAuth.
const (
	ContextUserIDKey = "user_id"
	ContextEmailKey  = "user_email"
	ContextRoleKey   = "user_role"
)

// TokenValidator validates a session token string.
type TokenValidator interface {
	ValidateSessionToken(tokenStr string) (*services.SessionClaims, error)
}

// RequireAuth reads and validates the session cookie and stores the caller's
// identity in the request context. Routes registered under this middleware
// cannot be reached without a valid session.
func RequireAuth(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := tokens.ValidateSessionToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextEmailKey, claims.Email)
		c.Set(ContextRoleKey, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route on the role stored by RequireAuth. A mismatch
// terminates the request with a bare 403.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRoleKey) != role {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated caller's id, set by RequireAuth.
func GetUserID(c *gin.Context) uuid.UUID {
	if v, exists := c.Get(ContextUserIDKey); exists {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
