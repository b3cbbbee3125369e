package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/bunk-loyalty/internal/domain/port/core"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/bunk-loyalty/internal/infrastructure/adapter/database"
	"github.com/gin-gonic/gin"
)

// DatabaseProbe is the part of database.Manager the health check needs
type DatabaseProbe interface {
	Ping(ctx context.Context) error
	PoolMetrics() database.ConnectionPoolMetrics
}

// HealthHandler reports liveness
type HealthHandler struct {
	db     DatabaseProbe
	logger coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(db DatabaseProbe, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		db:     db,
		logger: logger,
	}
}

// Health handles GET /healthz
func (h *HealthHandler) Health(c *gin.Context) {
	pool := h.db.PoolMetrics()
	resp := dto.HealthResponse{
		Status:   "ok",
		Database: "up",
		Pool: &dto.PoolStatus{
			OpenConnections: pool.OpenConnections,
			InUse:           pool.InUse,
			Idle:            pool.IdleConnections,
			WaitCount:       pool.WaitCount,
			MaxOpen:         pool.MaxOpenConnections,
		},
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		resp.Status = "degraded"
		resp.Database = "down"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
