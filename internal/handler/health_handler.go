package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HealthHandler serves liveness and metrics endpoints.
type HealthHandler struct {
	gatherer prometheus.Gatherer
}

// NewHealthHandler creates a health handler exposing metrics from gatherer.
func NewHealthHandler(gatherer prometheus.Gatherer) *HealthHandler {
	return &HealthHandler{gatherer: gatherer}
}

// RegisterRoutes registers /health and /metrics.
func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
}

// Health reports that the service is up.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
