package domain

import (
	"strings"
	"time"
)

// AttemptState tracks a placement attempt through unanswered, in progress and graded.
type AttemptState string

const (
	AttemptUnanswered AttemptState = "unanswered"
	AttemptInProgress AttemptState = "in_progress"
	AttemptGraded     AttemptState = "graded"
)

// Attempt is one user's pass through a placement test variant.
type Attempt struct {
	ID        string       `json:"id"`
	Model     string       `json:"model"`
	State     AttemptState `json:"state"`
	Answers   AnswerSet    `json:"answers"`
	Score     *ScoreResult `json:"score,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewAttempt creates an unanswered attempt bound to a test variant.
func NewAttempt(id, model string, now time.Time) *Attempt {
	return &Attempt{
		ID:        id,
		Model:     model,
		State:     AttemptUnanswered,
		Answers:   AnswerSet{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SetAnswer records the answer for a question. A blank value clears it.
func (a *Attempt) SetAnswer(index int, value string, now time.Time) error {
	if a.State == AttemptGraded {
		return NewAttemptGradedError(a.ID)
	}
	if index < 0 {
		return NewInvalidInputError("question index must not be negative")
	}
	if a.Answers == nil {
		a.Answers = AnswerSet{}
	}
	if strings.TrimSpace(value) == "" {
		delete(a.Answers, index)
	} else {
		a.Answers[index] = value
	}
	if len(a.Answers) > 0 {
		a.State = AttemptInProgress
	} else {
		a.State = AttemptUnanswered
	}
	a.UpdatedAt = now
	return nil
}

// MarkGraded stores the score. Grading an already graded attempt overwrites
// the score with the recomputed one.
func (a *Attempt) MarkGraded(score ScoreResult, now time.Time) {
	a.Score = &score
	a.State = AttemptGraded
	a.UpdatedAt = now
}

// Reset clears all answers and the score.
func (a *Attempt) Reset(now time.Time) {
	a.Answers = AnswerSet{}
	a.Score = nil
	a.State = AttemptUnanswered
	a.UpdatedAt = now
}
