package auth

import (
	"net/http"
	"strings"

	"lab-portal-backend/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserStore is the minimal user lookup the middleware needs to confirm that
// the principal encoded in a token still exists.
type UserStore interface {
	Exists(id uuid.UUID) (bool, error)
}

// Middleware provides JWT authentication middleware
type Middleware struct {
	service *Service
	users   UserStore
}

// NewMiddleware creates a new authentication middleware
func NewMiddleware(service *Service, users UserStore) *Middleware {
	return &Middleware{service: service, users: users}
}

// RequireAuth validates JWT tokens and sets the principal on the context.
// A token that decodes validly but references a deleted user is rejected
// with the same 401 as a forged token so account existence does not leak.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		// Validate token
		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		// The principal must still exist; the role is taken from the token
		// and may be stale until it expires.
		if m.users != nil {
			exists, err := m.users.Exists(claims.UserID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve principal"})
				c.Abort()
				return
			}
			if !exists {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				c.Abort()
				return
			}
		}

		setPrincipalContext(c, claims)
		c.Next()
	}
}

// OptionalAuth validates JWT tokens if present but doesn't require them
func (m *Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.Next()
			return
		}

		claims, err := m.service.ValidateToken(tokenString)
		if err != nil {
			c.Next()
			return
		}

		if m.users != nil {
			if exists, err := m.users.Exists(claims.UserID); err != nil || !exists {
				c.Next()
				return
			}
		}

		setPrincipalContext(c, claims)
		c.Next()
	}
}

func setPrincipalContext(c *gin.Context, claims *Claims) {
	c.Set("user_id", claims.UserID)
	c.Set("email", claims.Email)
	c.Set("role", claims.Role)
	c.Set("auth_claims", claims)
}

// GetClaims is a helper function to extract full auth claims from context
func GetClaims(c *gin.Context) (*Claims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*Claims)
	return authClaims, ok
}

// GetPrincipal builds the authorization principal from the context claims
func GetPrincipal(c *gin.Context) (authz.Principal, bool) {
	claims, ok := GetClaims(c)
	if !ok {
		return authz.Principal{}, false
	}
	return authz.Principal{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}, true
}
