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

func loginRouter(auth usecase.AuthUseCase) *gin.Engine {
	router := gin.New()
	router.POST("/login", NewAuthHandler(auth, nop).Login)
	return router
}

func TestLogin_Success(t *testing.T) {
	auth := &stubAuth{fn: func(_ context.Context, email, password string) (*usecase.AuthResult, error) {
		assert.Equal(t, "ana@mazebank.com", email)
		assert.Equal(t, "secret123", password)
		return &usecase.AuthResult{UserID: 7, RoleID: entity.RoleCustomer, Email: email}, nil
	}}

	w := doJSON(t, loginRouter(auth), http.MethodPost, "/login", gin.H{
		"email":    "ana@mazebank.com",
		"password": "secret123",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, float64(7), body["user_id"])
	assert.Equal(t, float64(1), body["role_id"])
	assert.Equal(t, "ana@mazebank.com", body["email"])
}

func TestLogin_UnknownUser(t *testing.T) {
	auth := &stubAuth{fn: func(context.Context, string, string) (*usecase.AuthResult, error) {
		return nil, errs.ErrUserNotFound
	}}

	w := doJSON(t, loginRouter(auth), http.MethodPost, "/login", gin.H{
		"email":    "ghost@mazebank.com",
		"password": "whatever",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", decodeBody(t, w)["status"])
}

func TestLogin_BadPassword(t *testing.T) {
	auth := &stubAuth{fn: func(context.Context, string, string) (*usecase.AuthResult, error) {
		return nil, errs.ErrInvalidCredentials
	}}

	w := doJSON(t, loginRouter(auth), http.MethodPost, "/login", gin.H{
		"email":    "ana@mazebank.com",
		"password": "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	auth := &stubAuth{fn: func(context.Context, string, string) (*usecase.AuthResult, error) {
		return nil, errs.ErrMissingFields
	}}

	w := doJSON(t, loginRouter(auth), http.MethodPost, "/login", gin.H{
		"email": "ana@mazebank.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
