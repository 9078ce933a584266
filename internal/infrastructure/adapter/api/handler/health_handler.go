package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazebank/transaction-service/internal/domain/port/core"
	"github.com/mazebank/transaction-service/internal/infrastructure/adapter/api/dto"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db     *gorm.DB
	clock  core.TimeProvider
	logger core.Logger
}

func NewHealthHandler(db *gorm.DB, clock core.TimeProvider, logger core.Logger) *HealthHandler {
	return &HealthHandler{db: db, clock: clock, logger: logger}
}

// Health reports service liveness and database reachability.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "up"
	dbStatus := "up"

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		h.logger.Warn("health check database ping failed", map[string]any{"error": err.Error()})
		status = "degraded"
		dbStatus = "down"
	}

	code := http.StatusOK
	if status != "up" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, dto.Success("Health check.", gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": h.clock.Now().UTC().Format("2006-01-02T15:04:05Z07:00"),
	}))
}
