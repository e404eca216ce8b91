package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"LocalLoop-App/internal/infrastructure/auth"
)

// currentUserKey is where the middleware stores the resolved identity.
const currentUserKey = "currentUser"

// AuthMiddleware gates routes behind the hosted auth service.
type AuthMiddleware struct {
	authProvider *auth.SupabaseAuthProvider
}

// NewAuthMiddleware creates a new AuthMiddleware instance.
func NewAuthMiddleware(authProvider *auth.SupabaseAuthProvider) *AuthMiddleware {
	return &AuthMiddleware{authProvider: authProvider}
}

// RequireUser resolves the bearer token and aborts with 401 when it is
// missing or invalid.
func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Bearer token is required",
			})
			return
		}

		user, err := m.authProvider.CurrentUser(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireAdmin additionally checks the admin role.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "forbidden",
				"message": "Admin role is required",
			})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the identity stored by RequireUser, or nil.
func CurrentUser(c *gin.Context) *auth.AuthUser {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*auth.AuthUser)
	if !ok {
		return nil
	}
	return user
}
