package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/dto"
)

type AuthHandler struct {
	auth   usecase.AuthUseCase
	logger core.Logger
}

func NewAuthHandler(auth usecase.AuthUseCase, logger core.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login verifies an email/password pair and returns the session identity.
// The response body is flat rather than enveloped; the client reads
// user_id and role_id from the top level.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Email and password are required."))
		return
	}

	result, err := h.auth.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if result.MigrationFailed {
		h.logger.Warn("password hash migration failed during login", map[string]any{
			"user_id": result.UserID,
		})
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Status:  dto.StatusSuccess,
		Message: "Login successful.",
		UserID:  result.UserID,
		RoleID:  uint8(result.RoleID),
		Email:   result.Email,
	})
}
