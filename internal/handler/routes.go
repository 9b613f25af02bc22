package handler

import (
	"altoque/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups every HTTP handler the API mounts.
type Handlers struct {
	Health       *HealthHandler
	Registration *RegistrationHandler
	Quiz         *QuizHandler
	Schedule     *ScheduleHandler
	Admin        *AdminHandler
}

// RegisterRoutes mounts the API under router, usually the /api group.
func RegisterRoutes(router fiber.Router, h Handlers, adminSecret string) {
	router.Get("/health", h.Health.Health)

	// Sign-up
	router.Post("/inscripcion", h.Registration.Submit)
	router.Post("/inscripcion/validate", h.Registration.Validate)
	router.Get("/inscripcion/prefill", h.Registration.Prefill)
	router.Post("/sheetdb", h.Registration.RelaySheet)

	// Placement test
	router.Get("/questions", h.Quiz.ListQuestions)
	router.Post("/quiz/grade", h.Quiz.Grade)
	router.Post("/attempts", h.Quiz.StartAttempt)
	router.Get("/attempts/:id", h.Quiz.GetAttempt)
	router.Put("/attempts/:id/answers/:index", h.Quiz.SetAnswer)
	router.Post("/attempts/:id/evaluate", h.Quiz.Evaluate)
	router.Post("/attempts/:id/retry", h.Quiz.Retry)

	router.Get("/schedule", h.Schedule.GetSchedule)

	admin := router.Group("/admin", middleware.AdminOnly(adminSecret))
	admin.Post("/cache/refresh", h.Admin.RefreshCache)
}
