package handler

import (
	"strconv"

	"altoque/internal/domain"
	"altoque/internal/dto"
	"altoque/internal/grader"
	"altoque/internal/i18n"
	"altoque/internal/middleware"
	"altoque/internal/service"
	"altoque/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles placement test HTTP requests
type QuizHandler struct {
	bank      service.QuestionBankService
	placement service.PlacementService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(bank service.QuestionBankService, placement service.PlacementService) *QuizHandler {
	return &QuizHandler{
		bank:      bank,
		placement: placement,
	}
}

// ListQuestions godoc
// @Summary Get a placement test variant
// @Description Returns the requested variant, or a random one, without the answers
// @Tags quiz
// @Produce json
// @Param model query string false "Variant name"
// @Success 200 {object} dto.QuestionsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /questions [get]
func (h *QuizHandler) ListQuestions(c *fiber.Ctx) error {
	set, err := h.bank.ListQuestions(c.UserContext(), c.Query("model"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewQuestionsResponse(*set))
}

// Grade godoc
// @Summary Grade a set of answers
// @Description Grades answers keyed by question position without storing an attempt
// @Tags quiz
// @Accept json
// @Produce json
// @Param lang query string false "Response language (en, es)"
// @Param grade body dto.GradeRequest true "Answers"
// @Success 200 {object} dto.ScoreResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /quiz/grade [post]
func (h *QuizHandler) Grade(c *fiber.Ctx) error {
	var req dto.GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := validation.Struct(req); len(errs) > 0 {
		return errs
	}

	score, err := h.placement.GradeOnce(c.UserContext(), req.Model, domain.AnswerSet(req.Answers))
	if err != nil {
		return err
	}
	return c.JSON(scoreResponse(score, middleware.LocaleFrom(c)))
}

// StartAttempt godoc
// @Summary Start a placement attempt
// @Tags attempts
// @Accept json
// @Produce json
// @Param attempt body dto.StartAttemptRequest false "Variant"
// @Success 201 {object} dto.AttemptResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /attempts [post]
func (h *QuizHandler) StartAttempt(c *fiber.Ctx) error {
	var req dto.StartAttemptRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return domain.NewInvalidInputError("Invalid request body")
		}
	}
	if errs := validation.Struct(req); len(errs) > 0 {
		return errs
	}

	attempt, questions, err := h.placement.StartAttempt(c.UserContext(), req.Model)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(attemptResponse(attempt, questions, middleware.LocaleFrom(c)))
}

// GetAttempt godoc
// @Summary Get a placement attempt
// @Tags attempts
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{id} [get]
func (h *QuizHandler) GetAttempt(c *fiber.Ctx) error {
	attempt, questions, err := h.placement.GetAttempt(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(attemptResponse(attempt, questions, middleware.LocaleFrom(c)))
}

// SetAnswer godoc
// @Summary Set or clear one answer
// @Description A blank value clears the answer
// @Tags attempts
// @Accept json
// @Produce json
// @Param id path string true "Attempt ID"
// @Param index path int true "Question position, starting at 0"
// @Param answer body dto.SetAnswerRequest true "Answer"
// @Success 200 {object} dto.AttemptResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /attempts/{id}/answers/{index} [put]
func (h *QuizHandler) SetAnswer(c *fiber.Ctx) error {
	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return domain.NewInvalidInputError("question index must be an integer")
	}
	var req dto.SetAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	if errs := validation.Struct(req); len(errs) > 0 {
		return errs
	}

	attempt, err := h.placement.SetAnswer(c.UserContext(), c.Params("id"), index, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(attemptResponse(attempt, nil, middleware.LocaleFrom(c)))
}

// Evaluate godoc
// @Summary Grade a placement attempt
// @Tags attempts
// @Produce json
// @Param id path string true "Attempt ID"
// @Param lang query string false "Response language (en, es)"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /attempts/{id}/evaluate [post]
func (h *QuizHandler) Evaluate(c *fiber.Ctx) error {
	attempt, err := h.placement.Evaluate(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(attemptResponse(attempt, nil, middleware.LocaleFrom(c)))
}

// Retry godoc
// @Summary Reset a placement attempt
// @Description Clears every answer and the score
// @Tags attempts
// @Produce json
// @Param id path string true "Attempt ID"
// @Success 200 {object} dto.AttemptResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /attempts/{id}/retry [post]
func (h *QuizHandler) Retry(c *fiber.Ctx) error {
	attempt, err := h.placement.Retry(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(attemptResponse(attempt, nil, middleware.LocaleFrom(c)))
}

func scoreResponse(score domain.ScoreResult, locale string) *dto.ScoreResponse {
	recommendation := ""
	if key := grader.Recommendation(score.Band); key != "" {
		recommendation = i18n.T(locale, key)
	}
	return dto.NewScoreResponse(score, recommendation)
}

func attemptResponse(a *domain.Attempt, questions []domain.QuestionItem, locale string) *dto.AttemptResponse {
	resp := &dto.AttemptResponse{
		ID:        a.ID,
		Model:     a.Model,
		State:     string(a.State),
		Answers:   a.Answers,
		Questions: dto.NewQuestionResponses(questions),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
	if resp.Answers == nil {
		resp.Answers = map[int]string{}
	}
	if a.Score != nil {
		resp.Score = scoreResponse(*a.Score, locale)
	}
	return resp
}
