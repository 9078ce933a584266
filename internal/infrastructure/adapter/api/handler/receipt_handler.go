package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/dto"
)

type ReceiptHandler struct {
	receipts usecase.ReceiptUseCase
	logger   core.Logger
}

func NewReceiptHandler(receipts usecase.ReceiptUseCase, logger core.Logger) *ReceiptHandler {
	return &ReceiptHandler{receipts: receipts, logger: logger}
}

// SendReceipt mails a pre-rendered HTML transfer receipt to the address the
// client provides. The body arrives fully formed; the server only dispatches.
func (h *ReceiptHandler) SendReceipt(c *gin.Context) {
	var req dto.ReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid receipt payload."))
		return
	}

	if err := h.receipts.SendReceipt(c.Request.Context(), req.ToEmail, req.Subject, req.HTMLBody); err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("receipt email dispatched", map[string]any{"to": req.ToEmail})

	c.JSON(http.StatusOK, dto.Success("Receipt sent successfully.", nil))
}
