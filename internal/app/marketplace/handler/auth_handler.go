package handler

import (
	"context"
	"errors"
	"net/http"

	"lapakpedia/internal/app/marketplace/entity"
	"lapakpedia/internal/app/marketplace/service"
	"lapakpedia/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type AuthServiceInterface interface {
	Login(ctx context.Context, req *entity.LoginRequest) (string, error)
	GetCurrentUser(ctx context.Context, userID string) (*entity.User, error)
}

type AuthHandler struct {
	authService AuthServiceInterface
}

func NewAuthHandler(authService AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login аутентифицирует по username (или email) и паролю.
// Неизвестный пользователь - 404, неверный пароль - 401.
func (h *AuthHandler) Login(c *gin.Context) {
	var req entity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		metrics.AuthLogins.WithLabelValues("failed").Inc()

		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Password did not match"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving user"})
		return
	}

	metrics.AuthLogins.WithLabelValues("success").Inc()

	c.JSON(http.StatusOK, entity.LoginResponse{
		Message: "User successfully authenticated",
		Token:   token,
	})
}

// Me возвращает запись владельца токена
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.authService.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error retrieving user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
