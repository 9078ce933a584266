package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	errs "github.com/mazebank/transaction-service/internal/domain/error"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
	"github.com/stretchr/testify/assert"
)

func userRouter(users usecase.UserUseCase) *gin.Engine {
	router := gin.New()
	h := NewUserHandler(users, nop)
	router.POST("/dataUser", h.DataUser)
	router.POST("/fechaCargo", h.LastChargeDate)
	return router
}

func TestDataUser_Success(t *testing.T) {
	users := &stubUsers{profileFn: func(_ context.Context, userID uint64) (*usecase.UserProfile, error) {
		assert.Equal(t, uint64(7), userID)
		return &usecase.UserProfile{UserID: 7, Name: "Ana Lima", Email: "ana@mazebank.com"}, nil
	}}

	w := doJSON(t, userRouter(users), http.MethodPost, "/dataUser", gin.H{"idUser": 7})

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]any)
	assert.Equal(t, "Ana Lima", data["name"])
	assert.Equal(t, "ana@mazebank.com", data["email"])
}

func TestDataUser_NotFound(t *testing.T) {
	users := &stubUsers{profileFn: func(context.Context, uint64) (*usecase.UserProfile, error) {
		return nil, errs.ErrUserNotFound
	}}

	w := doJSON(t, userRouter(users), http.MethodPost, "/dataUser", gin.H{"idUser": 999})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDataUser_InvalidID(t *testing.T) {
	users := &stubUsers{profileFn: func(context.Context, uint64) (*usecase.UserProfile, error) {
		t.Fatal("use case must not be called for a non-positive id")
		return nil, nil
	}}

	for _, id := range []any{0, -3} {
		w := doJSON(t, userRouter(users), http.MethodPost, "/dataUser", gin.H{"idUser": id})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestLastChargeDate_Success(t *testing.T) {
	latest := time.Date(2026, 8, 30, 18, 45, 12, 0, time.UTC)
	users := &stubUsers{lastChargeFn: func(_ context.Context, userID uint64) (time.Time, error) {
		assert.Equal(t, uint64(7), userID)
		return latest, nil
	}}

	w := doJSON(t, userRouter(users), http.MethodPost, "/fechaCargo", gin.H{"idUser": 7})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "2026-08-30 18:45:12", body["fecha"])
}

func TestLastChargeDate_NoHistory(t *testing.T) {
	users := &stubUsers{lastChargeFn: func(context.Context, uint64) (time.Time, error) {
		return time.Time{}, errs.ErrNoChargeHistory
	}}

	w := doJSON(t, userRouter(users), http.MethodPost, "/fechaCargo", gin.H{"idUser": 7})

	assert.Equal(t, http.StatusNotFound, w.Code)
}
