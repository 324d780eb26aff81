package http

import (
	"context"
	"time"

	"style_server/core/port/in"
	"style_server/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// StatsReporter exposes runtime stats of an outbound dependency.
type StatsReporter interface {
	Stats() map[string]any
}

type HealthHandler struct {
	db        *sqlx.DB
	redis     *redis.Client
	catalog   in.RecommendationService
	generator StatsReporter
}

func NewHealthHandler(db *sqlx.DB, redis *redis.Client, catalog in.RecommendationService, generator StatsReporter) *HealthHandler {
	return &HealthHandler{
		db:        db,
		redis:     redis,
		catalog:   catalog,
		generator: generator,
	}
}

func (h *HealthHandler) Register(app fiber.Router) {
	app.Get("/health", h.Health)
	app.Get("/ready", h.Ready)
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	checks := make(map[string]any)
	allHealthy := true

	if h.db != nil {
		pool := metrics.GetDBPoolStats(h.db.DB)
		check := fiber.Map{
			"driver": h.db.DriverName(),
			"pool":   pool.ToMap(),
			"health": metrics.AssessDBPoolHealth(pool),
		}
		if err := h.db.PingContext(ctx); err != nil {
			check["status"] = "unhealthy: " + err.Error()
			allHealthy = false
		} else {
			check["status"] = "healthy"
		}
		checks["database"] = check
	} else {
		checks["database"] = "not configured"
		allHealthy = false
	}

	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = "unhealthy: " + err.Error()
			allHealthy = false
		} else {
			checks["redis"] = "healthy"
		}
	} else {
		checks["redis"] = "not configured"
	}

	if h.catalog != nil {
		loaded, entries := h.catalog.CatalogStatus()
		checks["catalog"] = fiber.Map{"loaded": loaded, "entries": entries}
	}

	if h.generator != nil {
		checks["llm"] = h.generator.Stats()
	}

	status := "ready"
	statusCode := fiber.StatusOK
	if !allHealthy {
		status = "not ready"
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status": status,
		"checks": checks,
	})
}
