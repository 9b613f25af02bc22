package handler

import (
	"context"
	"time"

	"altoque/internal/domain"
	"altoque/internal/dto"
	"altoque/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

type HealthHandler struct {
	cache domain.Cache
}

func NewHealthHandler(cache domain.Cache) *HealthHandler {
	return &HealthHandler{cache: cache}
}

// Health godoc
// @Summary Liveness check
// @Description Always 200 while the process serves; reports whether Redis answers
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()

	redisStatus := "up"
	if err := h.cache.Ping(ctx); err != nil {
		logger.Get().Warn("Health check: Redis ping failed", zap.Error(err))
		redisStatus = "down"
	}
	return c.JSON(dto.HealthResponse{Status: "ok", Redis: redisStatus})
}
