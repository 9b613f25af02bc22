package service

import (
	"context"
	"errors"
	"time"

	"altoque/internal/cache"
	"altoque/internal/domain"
	"altoque/internal/grader"
	"altoque/internal/logger"
	"altoque/internal/util"
	"altoque/internal/validation"

	"go.uber.org/zap"
)

// PlacementService runs placement attempts: start, answer, evaluate, retry.
// Attempts live in the cache and expire after the configured TTL.
type PlacementService interface {
	StartAttempt(ctx context.Context, model string) (*domain.Attempt, []domain.QuestionItem, error)
	GetAttempt(ctx context.Context, id string) (*domain.Attempt, []domain.QuestionItem, error)
	SetAnswer(ctx context.Context, id string, index int, value string) (*domain.Attempt, error)
	Evaluate(ctx context.Context, id string) (*domain.Attempt, error)
	Retry(ctx context.Context, id string) (*domain.Attempt, error)
	GradeOnce(ctx context.Context, model string, answers domain.AnswerSet) (domain.ScoreResult, error)
}

type placementService struct {
	bank  QuestionBankService
	cache domain.Cache
	ttl   time.Duration
	newID func() string
	now   func() time.Time
}

func NewPlacementService(bank QuestionBankService, c domain.Cache, ttl time.Duration) PlacementService {
	return &placementService{
		bank:  bank,
		cache: c,
		ttl:   ttl,
		newID: util.NewULID,
		now:   time.Now,
	}
}

func attemptKey(id string) string {
	return cache.GenerateCacheKey("placement", "attempt", id)
}

// StartAttempt binds a new attempt to a variant. No attempt is created when
// the bank has nothing to serve.
func (s *placementService) StartAttempt(ctx context.Context, model string) (*domain.Attempt, []domain.QuestionItem, error) {
	set, err := s.bank.ListQuestions(ctx, model)
	if err != nil {
		return nil, nil, err
	}
	if len(set.Questions) == 0 {
		return nil, nil, domain.NewNoQuestionsError()
	}

	attempt := domain.NewAttempt(s.newID(), set.SelectedModel, s.now().UTC())
	if err := s.save(ctx, attempt); err != nil {
		return nil, nil, err
	}
	logger.Get().Info("Placement attempt started",
		zap.String("attemptID", attempt.ID),
		zap.String("model", attempt.Model),
		zap.Int("questions", len(set.Questions)))
	return attempt, set.Questions, nil
}

func (s *placementService) GetAttempt(ctx context.Context, id string) (*domain.Attempt, []domain.QuestionItem, error) {
	attempt, err := s.load(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.bank.QuestionsFor(ctx, attempt.Model)
	if err != nil {
		return nil, nil, err
	}
	return attempt, questions, nil
}

func (s *placementService) SetAnswer(ctx context.Context, id string, index int, value string) (*domain.Attempt, error) {
	attempt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if attempt.State == domain.AttemptGraded {
		return nil, domain.NewAttemptGradedError(attempt.ID)
	}

	questions, err := s.bank.QuestionsFor(ctx, attempt.Model)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(questions) {
		return nil, domain.NewInvalidInputError("question index out of range").
			WithContext("index", index).
			WithContext("question_count", len(questions))
	}

	if err := attempt.SetAnswer(index, validation.SanitizeAnswer(value), s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// Evaluate grades the attempt against its variant. Evaluating a graded
// attempt returns the stored result unchanged.
func (s *placementService) Evaluate(ctx context.Context, id string) (*domain.Attempt, error) {
	attempt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if attempt.State == domain.AttemptGraded && attempt.Score != nil {
		return attempt, nil
	}

	questions, err := s.bank.QuestionsFor(ctx, attempt.Model)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, domain.NewNoQuestionsError()
	}

	score := grader.GradeAttempt(questions, attempt.Answers)
	attempt.MarkGraded(score, s.now().UTC())
	if err := s.save(ctx, attempt); err != nil {
		return nil, err
	}
	logger.Get().Info("Placement attempt graded",
		zap.String("attemptID", attempt.ID),
		zap.Int("correct", score.CorrectCount),
		zap.Int("total", score.TotalCount),
		zap.String("band", score.Band))
	return attempt, nil
}

func (s *placementService) Retry(ctx context.Context, id string) (*domain.Attempt, error) {
	attempt, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	attempt.Reset(s.now().UTC())
	if err := s.save(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// GradeOnce grades a complete answer set without storing anything.
func (s *placementService) GradeOnce(ctx context.Context, model string, answers domain.AnswerSet) (domain.ScoreResult, error) {
	questions, err := s.bank.QuestionsFor(ctx, model)
	if err != nil {
		return domain.ScoreResult{}, err
	}
	if len(questions) == 0 {
		return domain.ScoreResult{}, domain.NewNoQuestionsError()
	}
	return grader.GradeAttempt(questions, validation.SanitizeAnswers(answers)), nil
}

func (s *placementService) load(ctx context.Context, id string) (*domain.Attempt, error) {
	if !util.IsULID(id) {
		return nil, domain.NewAttemptNotFoundError(id)
	}
	var attempt domain.Attempt
	if err := cache.GetJSON(ctx, s.cache, attemptKey(id), &attempt); err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewAttemptNotFoundError(id)
		}
		logger.Get().Error("Failed to load placement attempt", zap.String("attemptID", id), zap.Error(err))
		return nil, domain.NewInternalError("failed to load attempt", err)
	}
	if attempt.Answers == nil {
		attempt.Answers = domain.AnswerSet{}
	}
	return &attempt, nil
}

func (s *placementService) save(ctx context.Context, attempt *domain.Attempt) error {
	if err := cache.SetJSON(ctx, s.cache, attemptKey(attempt.ID), attempt, s.ttl); err != nil {
		logger.Get().Error("Failed to save placement attempt", zap.String("attemptID", attempt.ID), zap.Error(err))
		return domain.NewInternalError("failed to save attempt", err)
	}
	return nil
}
