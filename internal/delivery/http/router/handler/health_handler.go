package handler

import (
	"net/http"

	"organizer/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// HealthHandler reports liveness of the service and its backing stores.
type HealthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler is the constructor for HealthHandler, injected by Fx.
func NewHealthHandler(db *gorm.DB, redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:    db,
		redis: redisClient,
	}
}

// Root is the unauthenticated landing endpoint.
func (h *HealthHandler) Root(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"message": "Welcome to the contacts organizer API",
	}, "")
}

// Check pings both backing stores; the service is healthy only when both
// respond.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx := c.Request().Context()

	sqlDB, err := h.db.DB()
	if err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is not configured correctly", "")
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", "Database is unreachable", "")
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		return response.Error(c, http.StatusServiceUnavailable, "CACHE_UNAVAILABLE", "Cache is unreachable", "")
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"}, "")
}
