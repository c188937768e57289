package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hrithikqw/Invoice-Tracker-App/internal/application/port"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/auth"
	"github.com/hrithikqw/Invoice-Tracker-App/internal/domain/entity"
	"github.com/hrithikqw/Invoice-Tracker-App/pkg/utils"
)

// AuthHandler serves registration, login and session introspection
type AuthHandler struct {
	users  port.UserRepository
	tokens *auth.TokenManager
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(users port.UserRepository, tokens *auth.TokenManager, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account and returns a session token
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, validationError("invalid request body"))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := utils.ValidateEmail(req.Email); err != nil {
		respondError(c, h.logger, validationError("%v", err))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		respondError(c, h.logger, validationError("%v", err))
		return
	}

	if _, err := h.users.GetByEmail(c.Request.Context(), req.Email); err == nil {
		respondError(c, h.logger, validationError("email already registered"))
		return
	} else if !errors.Is(err, entity.ErrNotFound) {
		respondError(c, h.logger, err)
		return
	}

	user := &entity.User{Email: req.Email, PasswordHash: hash}
	if err := h.users.Create(c.Request.Context(), user); err != nil {
		respondError(c, h.logger, err)
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("User registered", zap.String("user_id", user.ID))
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// Login verifies credentials and returns a session token
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, validationError("invalid request body"))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil || !auth.CheckPassword(user.PasswordHash, req.Password) {
		// Same response for unknown email and wrong password
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// Me returns the authenticated user
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.GetByID(c.Request.Context(), auth.Principal(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout acknowledges the session being discarded. Tokens are stateless, so
// the client simply drops its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
