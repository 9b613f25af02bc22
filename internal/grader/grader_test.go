package grader

import (
	"encoding/json"
	"testing"

	"altoque/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	assert.Equal(t, NormalizeText("cafe"), NormalizeText("Café  "))
	assert.Equal(t, "esta bien", NormalizeText("  Está \t\n BIEN "))
	assert.Equal(t, "nino", NormalizeText("niño"))
	assert.Equal(t, "", NormalizeText(nil))
	assert.Equal(t, "3", NormalizeText(3))
	assert.Equal(t, "12", NormalizeText(json.Number("12")))
}

func TestToList(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  []string
	}{
		{name: "nil", input: nil, want: nil},
		{name: "already a list", input: []string{"a, b", "c"}, want: []string{"a, b", "c"}},
		{name: "mixed interface list", input: []interface{}{"soy", 1, nil}, want: []string{"soy", "1"}},
		{name: "delimited scalar", input: " soy yo| yo soy ;; soy,", want: []string{"soy yo", "yo soy", "soy"}},
		{name: "empty scalar", input: "   ", want: []string{}},
		{name: "number", input: 7, want: []string{"7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToList(tt.input))
		})
	}
}

func TestBuildAcceptedSet(t *testing.T) {
	q := domain.QuestionItem{Answer: []string{"Soy"}, Accept: ToList("soy yo|yo soy")}
	set := BuildAcceptedSet(q)
	assert.Len(t, set, 3)
	assert.Contains(t, set, "soy")
	assert.Contains(t, set, "soy yo")
	assert.Contains(t, set, "yo soy")
}

func TestGradeAttempt(t *testing.T) {
	t.Run("synonym accepted", func(t *testing.T) {
		questions := []domain.QuestionItem{{Answer: []string{"Soy"}, Accept: []string{"soy yo", "yo soy"}}}
		result := GradeAttempt(questions, domain.AnswerSet{0: "SOY YO"})
		assert.Equal(t, 1, result.CorrectCount)
	})

	t.Run("end to end", func(t *testing.T) {
		questions := []domain.QuestionItem{
			{Answer: []string{"Soy"}},
			{Answer: []string{"Tenemos"}, Accept: []string{"tenemos nosotros"}},
		}
		result := GradeAttempt(questions, domain.AnswerSet{0: "soy", 1: "Tenemos Nosotros"})
		assert.Equal(t, domain.ScoreResult{CorrectCount: 2, TotalCount: 2, Percentage: 100, Band: BandC1Plus}, result)
	})

	t.Run("unanswered and blank skipped", func(t *testing.T) {
		questions := []domain.QuestionItem{
			{Answer: []string{"libros"}},
			{Answer: []string{"La"}},
			{Answer: []string{"El"}},
		}
		result := GradeAttempt(questions, domain.AnswerSet{0: "Libros", 1: "   ", 9: "El"})
		assert.Equal(t, 1, result.CorrectCount)
		assert.Equal(t, 3, result.TotalCount)
		assert.Equal(t, 33, result.Percentage)
		assert.Equal(t, BandA1, result.Band)
	})

	t.Run("empty bank", func(t *testing.T) {
		result := GradeAttempt(nil, domain.AnswerSet{0: "soy"})
		assert.Equal(t, domain.ScoreResult{}, result)
		assert.Empty(t, result.Band)
	})

	t.Run("idempotent", func(t *testing.T) {
		questions := []domain.QuestionItem{{Answer: []string{"Soy"}}, {Answer: []string{"libros"}}}
		answers := domain.AnswerSet{0: "soy", 1: "libra"}
		first := GradeAttempt(questions, answers)
		second := GradeAttempt(questions, answers)
		require.Equal(t, first, second)
		assert.Equal(t, domain.AnswerSet{0: "soy", 1: "libra"}, answers)
	})
}

func TestGradeBand(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{0, BandA1},
		{34, BandA1},
		{35, BandA2},
		{54, BandA2},
		{55, BandB1},
		{69, BandB1},
		{70, BandB2},
		{84, BandB2},
		{85, BandC1Plus},
		{100, BandC1Plus},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeBand(tt.percentage), "percentage %d", tt.percentage)
	}
}

func TestRecommendation(t *testing.T) {
	assert.Equal(t, "level_reco_low", Recommendation(BandA2))
	assert.Equal(t, "level_reco_mid", Recommendation(BandB1))
	assert.Equal(t, "level_reco_high", Recommendation(BandC1Plus))
	assert.Equal(t, "", Recommendation(""))
}
