package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/dto"
)

type RegisterHandler struct {
	register usecase.RegisterUseCase
	logger   core.Logger
}

func NewRegisterHandler(register usecase.RegisterUseCase, logger core.Logger) *RegisterHandler {
	return &RegisterHandler{register: register, logger: logger}
}

// Register provisions a customer with their three financial instruments in a
// single call. A duplicate email answers 409; the success payload carries the
// generated card and account numbers so the client can show them immediately.
func (h *RegisterHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid registration payload."))
		return
	}

	result, err := h.register.Register(c.Request.Context(), usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("customer registered", map[string]any{
		"user_id": result.UserID,
		"email":   result.UserEmail,
	})

	c.JSON(http.StatusOK, dto.Success("User registered successfully.", result))
}
