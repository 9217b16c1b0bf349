package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/weiawesome/zuid/internal/generator"
	pkglog "github.com/weiawesome/zuid/pkg/log"
)

// NewRouter wires every handler into a gin engine with request logging and
// panic recovery.
func NewRouter(registry *generator.Registry, maxBatch int, gatherer prometheus.Gatherer, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), pkglog.GinMiddleware(logger))

	NewHealthHandler(gatherer).RegisterRoutes(r)
	NewIDHandler(registry, maxBatch).RegisterRoutes(r)

	return r
}
