package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttempt_StateMachine(t *testing.T) {
	start := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	a := NewAttempt("01HGZ8VNRYXS8QKNJV5GRWPWDQ", "A", start)
	assert.Equal(t, AttemptUnanswered, a.State)
	assert.Empty(t, a.Answers)

	require.NoError(t, a.SetAnswer(0, "Soy", start.Add(time.Second)))
	assert.Equal(t, AttemptInProgress, a.State)
	assert.Equal(t, "Soy", a.Answers[0])
	assert.Equal(t, start.Add(time.Second), a.UpdatedAt)

	a.MarkGraded(ScoreResult{CorrectCount: 1, TotalCount: 1, Percentage: 100, Band: "C1+"}, start.Add(2*time.Second))
	assert.Equal(t, AttemptGraded, a.State)
	require.NotNil(t, a.Score)
	assert.Equal(t, 100, a.Score.Percentage)

	err := a.SetAnswer(1, "Tenemos", start.Add(3*time.Second))
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, CodeAttemptGraded, domainErr.Code)

	a.Reset(start.Add(4 * time.Second))
	assert.Equal(t, AttemptUnanswered, a.State)
	assert.Empty(t, a.Answers)
	assert.Nil(t, a.Score)
}

func TestAttempt_SetAnswerBlankClears(t *testing.T) {
	now := time.Now()
	a := NewAttempt("id", "A", now)
	require.NoError(t, a.SetAnswer(2, "libros", now))
	require.NoError(t, a.SetAnswer(2, "   ", now))
	assert.NotContains(t, a.Answers, 2)
	assert.Equal(t, AttemptUnanswered, a.State)
}

func TestAttempt_SetAnswerNegativeIndex(t *testing.T) {
	a := NewAttempt("id", "A", time.Now())
	err := a.SetAnswer(-1, "x", time.Now())
	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, CodeInvalidInput, domainErr.Code)
}
