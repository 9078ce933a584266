package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mazebank/transaction-service/internal/domain/entity"
	"github.com/mazebank/transaction-service/internal/domain/port/usecase"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Stub use cases backed by function fields so each test controls exactly
// one behavior.

type stubAuth struct {
	fn func(ctx context.Context, email, password string) (*usecase.AuthResult, error)
}

func (s *stubAuth) Authenticate(ctx context.Context, email, password string) (*usecase.AuthResult, error) {
	return s.fn(ctx, email, password)
}

type stubRegister struct {
	fn func(ctx context.Context, in usecase.RegisterInput) (*usecase.RegistrationResult, error)
}

func (s *stubRegister) Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegistrationResult, error) {
	return s.fn(ctx, in)
}

type stubTransfer struct {
	fn func(ctx context.Context, in usecase.TransferInput) (*entity.TransferRecord, error)
}

func (s *stubTransfer) Transfer(ctx context.Context, in usecase.TransferInput) (*entity.TransferRecord, error) {
	return s.fn(ctx, in)
}

type stubReceipt struct {
	fn func(ctx context.Context, to, subject, htmlBody string) error
}

func (s *stubReceipt) SendReceipt(ctx context.Context, to, subject, htmlBody string) error {
	return s.fn(ctx, to, subject, htmlBody)
}

type stubUsers struct {
	profileFn    func(ctx context.Context, userID uint64) (*usecase.UserProfile, error)
	lastChargeFn func(ctx context.Context, userID uint64) (time.Time, error)
}

func (s *stubUsers) GetProfile(ctx context.Context, userID uint64) (*usecase.UserProfile, error) {
	return s.profileFn(ctx, userID)
}

func (s *stubUsers) LastChargeDate(ctx context.Context, userID uint64) (time.Time, error) {
	return s.lastChargeFn(ctx, userID)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

var nop = logger.NewNoopLogger()
