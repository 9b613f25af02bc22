package handler

import (
	"altoque/internal/dto"
	"altoque/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ScheduleHandler serves the class timetable
type ScheduleHandler struct {
	service service.ScheduleService
}

func NewScheduleHandler(service service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// GetSchedule godoc
// @Summary Get the weekly class schedule
// @Description Enabled slots, flat and grouped Monday to Friday, each with a booking link
// @Tags schedule
// @Produce json
// @Success 200 {object} dto.ScheduleResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /schedule [get]
func (h *ScheduleHandler) GetSchedule(c *fiber.Ctx) error {
	slots, err := h.service.Slots(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewScheduleResponse(slots))
}
