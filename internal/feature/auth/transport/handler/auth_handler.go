// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"watchlist_backend/internal/api"
)

// AuthUsecase defines the usecase for authentication operations.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type AuthUsecase interface {
	// Login verifies the access key and returns a JWT token on success.
	Login(accessKey string) (string, error)
}

// AuthHandler handles HTTP requests for authentication.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles the access-key login endpoint.
// - Binds the request JSON to LoginRequest
// - Returns 400 on validation errors
// - Returns 401 on a wrong key without revealing details
// - Returns 200 with a JWT token on success
func (h *AuthHandler) Login(c *gin.Context) {
	var req api.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}
	token, err := h.auth.Login(req.AccessKey)
	if err != nil {
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid access key"})
		return
	}
	slog.Info("login successful", "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}
