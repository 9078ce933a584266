package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/dto"
)

type TransferHandler struct {
	transfer usecase.TransferUseCase
	logger   core.Logger
}

func NewTransferHandler(transfer usecase.TransferUseCase, logger core.Logger) *TransferHandler {
	return &TransferHandler{transfer: transfer, logger: logger}
}

// Transfer executes a fee-bearing transfer from the origin card. Insufficient
// balance answers 422 and an unknown origin card 404; on success the payload
// echoes the charge record including the debited total and new balance.
func (h *TransferHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error("Invalid transfer payload."))
		return
	}

	record, err := h.transfer.Transfer(c.Request.Context(), usecase.TransferInput{
		OriginCardID:          req.OriginCardID,
		BeneficiaryName:       req.BeneficiaryName,
		BeneficiaryAccountRef: req.BeneficiaryAccountRef,
		BeneficiaryBank:       req.BeneficiaryBank,
		Amount:                req.Amount,
		Concept:               req.Concept,
		TransactionAt:         req.TransactionAt,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.logger.Info("transfer executed", map[string]any{
		"charge_id":     record.ChargeID,
		"origin_card":   req.OriginCardID,
		"debited_total": record.DebitedTotal,
	})

	c.JSON(http.StatusOK, dto.Success("Transfer completed successfully.", record))
}
