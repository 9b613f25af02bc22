package handler

import (
	"encoding/json"

	"altoque/internal/domain"
	"altoque/internal/dto"
	"altoque/internal/i18n"
	"altoque/internal/middleware"
	"altoque/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegistrationHandler handles sign-up form HTTP requests
type RegistrationHandler struct {
	service service.RegistrationService
}

func NewRegistrationHandler(service service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

// Submit godoc
// @Summary Submit the sign-up form
// @Description Sanitizes and validates the form, then emails the school and appends a row to the registrations sheet
// @Tags inscripcion
// @Accept json
// @Produce json
// @Param lang query string false "Response language (en, es)"
// @Param registration body dto.RegistrationRequest true "Sign-up form"
// @Success 200 {object} dto.RegistrationResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /inscripcion [post]
func (h *RegistrationHandler) Submit(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	locale := middleware.LocaleFrom(c)
	if _, err := h.service.Submit(c.UserContext(), req.ToRecord(), locale); err != nil {
		return err
	}
	return c.JSON(dto.RegistrationResponse{OK: true, Message: i18n.T(locale, "success")})
}

// Validate godoc
// @Summary Validate the sign-up form
// @Description Returns per-field messages without submitting anything
// @Tags inscripcion
// @Accept json
// @Produce json
// @Param lang query string false "Response language (en, es)"
// @Param registration body dto.RegistrationRequest true "Sign-up form"
// @Success 200 {object} dto.ValidateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /inscripcion/validate [post]
func (h *RegistrationHandler) Validate(c *fiber.Ctx) error {
	var req dto.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	errs := h.service.Validate(req.ToRecord(), middleware.LocaleFrom(c))
	return c.JSON(dto.ValidateResponse{Errors: errs, Submittable: len(errs) == 0})
}

// Prefill godoc
// @Summary Sanitize sign-up prefill values
// @Description Cleans the slot and course values a schedule booking link carries
// @Tags inscripcion
// @Produce json
// @Param slot query string false "Schedule slot, e.g. Tuesday 16:30"
// @Param course query string false "Course name"
// @Success 200 {object} dto.PrefillResponse
// @Router /inscripcion/prefill [get]
func (h *RegistrationHandler) Prefill(c *fiber.Ctx) error {
	rec := h.service.Prefill(c.Query("slot"), c.Query("course"))
	return c.JSON(dto.PrefillResponse{Schedule: rec.Schedule, Course: rec.Course})
}

// RelaySheet godoc
// @Summary Append raw rows to the registrations sheet
// @Description Sanitizes every value and forwards the rows, returning the upstream response
// @Tags inscripcion
// @Accept json
// @Produce json
// @Param rows body dto.SheetRelayRequest true "Rows"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /sheetdb [post]
func (h *RegistrationHandler) RelaySheet(c *fiber.Ctx) error {
	var req dto.SheetRelayRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid payload: { data: [...] } required")
	}
	body, err := h.service.RelayRows(c.UserContext(), req.Data)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	if len(body) == 0 {
		return c.JSON(fiber.Map{"ok": true})
	}
	if !json.Valid(body) {
		return c.JSON(fiber.Map{"ok": true, "upstream": string(body)})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(body)
}
