package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazebank/transaction-service/internal/domain/entity"
	errs "github.com/mazebank/transaction-service/internal/domain/error"
	"github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/dto"
)

type UserHandler struct {
	users  usecase.UserUseCase
	logger core.Logger
}

func NewUserHandler(users usecase.UserUseCase, logger core.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// DataUser returns the display profile for the given user id.
func (h *UserHandler) DataUser(c *gin.Context) {
	var req dto.DataUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("A valid user id is required."))
		return
	}

	userID, ok := parseUserID(req.IDUser)
	if !ok {
		respondError(c, errs.ErrInvalidUserID)
		return
	}

	profile, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.Success("User data retrieved.", profile))
}

// LastChargeDate returns the timestamp of the user's most recent charge,
// formatted for direct display.
func (h *UserHandler) LastChargeDate(c *gin.Context) {
	var req dto.LastChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("A valid user id is required."))
		return
	}

	userID, ok := parseUserID(req.IDUser)
	if !ok {
		respondError(c, errs.ErrInvalidUserID)
		return
	}

	latest, err := h.users.LastChargeDate(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LastChargeResponse{
		Status: dto.StatusSuccess,
		Fecha:  latest.Format(entity.TransferTimeLayout),
	})
}

func parseUserID(raw json.Number) (uint64, bool) {
	id, err := raw.Int64()
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint64(id), true
}
