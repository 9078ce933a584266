package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler recovers from panics and answers with the standard error
// envelope instead of letting gin print a stack to the client.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetString(RequestIDKey),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.Error("Internal server error."))
			}
		}()

		c.Next()
	}
}
