package handler

import (
	"altoque/internal/dto"
	"altoque/internal/logger"
	"altoque/internal/middleware"
	"altoque/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AdminHandler handles operator requests
type AdminHandler struct {
	questions service.QuestionBankService
	schedule  service.ScheduleService
}

func NewAdminHandler(questions service.QuestionBankService, schedule service.ScheduleService) *AdminHandler {
	return &AdminHandler{questions: questions, schedule: schedule}
}

// RefreshCache godoc
// @Summary Drop the cached sheet rows
// @Description The next question or schedule request reads the sheets again
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.CacheRefreshResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /admin/cache/refresh [post]
func (h *AdminHandler) RefreshCache(c *fiber.Ctx) error {
	ctx := c.UserContext()
	if err := h.questions.Invalidate(ctx); err != nil {
		return err
	}
	if err := h.schedule.Invalidate(ctx); err != nil {
		return err
	}

	logger.Get().Info("Sheet caches refreshed", zap.Any("admin", c.Locals(middleware.AdminSubjectKey)))
	return c.JSON(dto.CacheRefreshResponse{Refreshed: []string{service.QuestionsCacheKey, service.ScheduleCacheKey}})
}
