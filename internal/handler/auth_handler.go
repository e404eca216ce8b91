package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"LocalLoop-App/internal/infrastructure/auth"
	api "LocalLoop-App/model"
)

// AuthHandler proxies sign-in/sign-out to the hosted auth service.
type AuthHandler struct {
	authProvider *auth.SupabaseAuthProvider
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authProvider *auth.SupabaseAuthProvider) *AuthHandler {
	return &AuthHandler{authProvider: authProvider}
}

// SignIn POST /auth/signin - exchange credentials for a token
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req api.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Invalid JSON format: " + err.Error(),
		})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing_parameter",
			"message": "email and password are required",
		})
		return
	}

	token, err := h.authProvider.SignIn(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthorized",
			"message": "Sign-in failed",
		})
		return
	}

	c.JSON(http.StatusOK, api.SignInResponse{AccessToken: token})
}

// SignOut POST /auth/signout - revoke the current session
func (h *AuthHandler) SignOut(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "unauthorized",
			"message": "Bearer token is required",
		})
		return
	}

	if err := h.authProvider.SignOut(strings.TrimPrefix(header, "Bearer ")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_error",
			"message": "Sign-out failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}
