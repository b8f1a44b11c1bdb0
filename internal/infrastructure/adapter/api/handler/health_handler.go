package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/amirhossein-jamali/document-lock/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger checks that a backing store answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness of the service and its lock store
type HealthHandler struct {
	store     Pinger
	storeName string
	armed     func() int
	logger    coreport.Logger
}

// NewHealthHandler creates a health handler. store may be nil for in-process stores.
func NewHealthHandler(store Pinger, storeName string, armed func() int, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{store: store, storeName: storeName, armed: armed, logger: logger}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Store: h.storeName}
	if h.armed != nil {
		resp.ArmedAdapters = h.armed()
	}

	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			h.logger.Warn("Health check failed", map[string]any{"error": err.Error()})
			resp.Status = "unavailable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
