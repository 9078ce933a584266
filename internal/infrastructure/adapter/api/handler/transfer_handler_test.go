package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mazebank/transaction-service/internal/domain/entity"
	errs "github.com/mazebank/transaction-service/internal/domain/error"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
)

func transferRouter(transfer usecase.TransferUseCase) *gin.Engine {
	router := gin.New()
	router.POST("/transaction", NewTransferHandler(transfer, nop).Transfer)
	return router
}

func validTransferBody() gin.H {
	return gin.H{
		"origin_card_id":          3,
		"beneficiary_name":        "Luis Paz",
		"beneficiary_account_ref": "012345678901234567",
		"beneficiary_bank":        "MazeBank",
		"amount":                  100.0,
		"concept":                 "Rent",
	}
}

func TestTransfer_Success(t *testing.T) {
	transfer := &stubTransfer{fn: func(_ context.Context, in usecase.TransferInput) (*entity.TransferRecord, error) {
		assert.Equal(t, uint64(3), in.OriginCardID)
		assert.Equal(t, 100.0, in.Amount)
		return &entity.TransferRecord{
			ChargeID:      91,
			Amount:        100,
			Fee:           5,
			DebitedTotal:  105,
			NewBalance:    895,
			TransactionAt: "2026-09-01 10:30:00",
		}, nil
	}}

	w := doJSON(t, transferRouter(transfer), http.MethodPost, "/transaction", validTransferBody())

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]any)
	assert.Equal(t, float64(105), data["debited_total"])
	assert.Equal(t, float64(895), data["new_balance"])
	assert.Equal(t, "2026-09-01 10:30:00", data["transaction_at"])
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	transfer := &stubTransfer{fn: func(context.Context, usecase.TransferInput) (*entity.TransferRecord, error) {
		return nil, errs.ErrInsufficientFunds
	}}

	w := doJSON(t, transferRouter(transfer), http.MethodPost, "/transaction", validTransferBody())

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "error", decodeBody(t, w)["status"])
}

func TestTransfer_UnknownOriginCard(t *testing.T) {
	transfer := &stubTransfer{fn: func(context.Context, usecase.TransferInput) (*entity.TransferRecord, error) {
		return nil, errs.ErrInstrumentNotFound
	}}

	w := doJSON(t, transferRouter(transfer), http.MethodPost, "/transaction", validTransferBody())

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTransfer_NegativeAmount(t *testing.T) {
	transfer := &stubTransfer{fn: func(context.Context, usecase.TransferInput) (*entity.TransferRecord, error) {
		return nil, errs.ErrInvalidAmount
	}}

	body := validTransferBody()
	body["amount"] = -10.0

	w := doJSON(t, transferRouter(transfer), http.MethodPost, "/transaction", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
