package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/weiawesome/zuid/internal/generator"
	pkglog "github.com/weiawesome/zuid/pkg/log"
	"github.com/weiawesome/zuid/pkg/response"
)

const (
	defaultPerSecond   = 1000
	defaultProbability = 0.01
)

// IDHandler serves id generation, validation and parsing for every entity.
type IDHandler struct {
	registry *generator.Registry
	maxBatch int
}

// NewIDHandler creates a new ID handler. maxBatch bounds batch requests.
func NewIDHandler(registry *generator.Registry, maxBatch int) *IDHandler {
	return &IDHandler{
		registry: registry,
		maxBatch: maxBatch,
	}
}

// RegisterRoutes registers the id and entity routes.
func (h *IDHandler) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")

	api.GET("/entities", h.ListEntities)
	api.GET("/entities/:entity/collision", h.Collision)

	ids := api.Group("/ids/:entity")
	ids.POST("", h.Generate)
	ids.POST("/batch", h.GenerateBatch)
	ids.GET("/:id", h.Parse)
	ids.GET("/:id/validate", h.Validate)
}

// generator resolves :entity and tags the request logger with it.
func (h *IDHandler) generator(c *gin.Context) (generator.Generator, bool) {
	entity := c.Param("entity")
	g, err := h.registry.Get(entity)
	if err != nil {
		response.NotFound(c, err.Error())
		return nil, false
	}
	ctx, _ := pkglog.WithEntity(c.Request.Context(), entity)
	c.Request = c.Request.WithContext(ctx)
	return g, true
}

// ListEntities returns the description of every configured entity.
func (h *IDHandler) ListEntities(c *gin.Context) {
	names := h.registry.Names()
	infos := make([]generator.Info, 0, len(names))
	for _, name := range names {
		g, err := h.registry.Get(name)
		if err != nil {
			continue
		}
		infos = append(infos, g.Describe())
	}
	response.Success(c, infos)
}

// Generate mints one id.
func (h *IDHandler) Generate(c *gin.Context) {
	g, ok := h.generator(c)
	if !ok {
		return
	}

	id, err := g.Generate()
	if err != nil {
		l := pkglog.Ctx(c.Request.Context())
		l.Error().Err(err).Msg("failed to generate id")
		response.InternalError(c, "failed to generate id")
		return
	}

	response.Created(c, gin.H{"id": id})
}

// GenerateBatch mints ?count= ids.
func (h *IDHandler) GenerateBatch(c *gin.Context) {
	g, ok := h.generator(c)
	if !ok {
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", "1"))
	if err != nil || count < 1 || count > h.maxBatch {
		response.BadRequest(c, fmt.Sprintf("count must be between 1 and %d", h.maxBatch))
		return
	}

	ids, err := g.GenerateBatch(count)
	if err != nil {
		l := pkglog.Ctx(c.Request.Context())
		l.Error().Err(err).Int(pkglog.FieldCount, count).Msg("failed to generate batch")
		response.InternalError(c, "failed to generate ids")
		return
	}

	response.Created(c, gin.H{"ids": ids})
}

// Validate reports whether :id belongs to the entity.
func (h *IDHandler) Validate(c *gin.Context) {
	g, ok := h.generator(c)
	if !ok {
		return
	}

	valid, reason := g.Validate(c.Param("id"))
	response.Success(c, gin.H{
		"valid":  valid,
		"reason": reason,
	})
}

// Parse decodes the segments of :id.
func (h *IDHandler) Parse(c *gin.Context) {
	g, ok := h.generator(c)
	if !ok {
		return
	}

	result, err := g.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// Collision estimates how long the entity can mint ids before reaching a
// collision probability.
func (h *IDHandler) Collision(c *gin.Context) {
	g, ok := h.generator(c)
	if !ok {
		return
	}

	perSecond, err := floatQuery(c, "per_second", defaultPerSecond)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	probability, err := floatQuery(c, "probability", defaultProbability)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	years, msg, err := g.CollisionYears(perSecond, probability)
	if err != nil {
		if generator.IsClientError(err) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, "failed to estimate collisions")
		return
	}

	response.Success(c, gin.H{
		"per_second":  perSecond,
		"probability": probability,
		"years":       years,
		"message":     msg,
	})
}

func floatQuery(c *gin.Context, key string, def float64) (float64, error) {
	raw, ok := c.GetQuery(key)
	if !ok {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	return v, nil
}
