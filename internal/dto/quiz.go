package dto

import (
	"time"

	"altoque/internal/domain"
)

// QuestionResponse is a placement question as served to the browser. The
// accepted answers never leave the server.
// @Description Placement question
type QuestionResponse struct {
	Model       string              `json:"model"`
	Question    int                 `json:"question"`
	Type        domain.QuestionType `json:"type"`
	Prompt      string              `json:"prompt"`
	PromptTrans string              `json:"prompt_trans,omitempty"`
	Options     []string            `json:"options"`
}

// QuestionsResponse is one test variant plus the variants available.
// SelectedModel is null when the bank is empty.
// @Description Placement test variant
type QuestionsResponse struct {
	Models        []string           `json:"models"`
	SelectedModel *string            `json:"selectedModel"`
	Questions     []QuestionResponse `json:"questions"`
}

// GradeRequest grades a full set of answers without creating an attempt.
// Answers are keyed by the question's position in the served variant.
// @Description Request body for stateless grading
type GradeRequest struct {
	Model   string         `json:"model" validate:"required,max=100"`
	Answers map[int]string `json:"answers" validate:"max=200"`
}

// ScoreResponse is a graded result plus the level it suggests.
type ScoreResponse struct {
	CorrectCount   int    `json:"correct_count"`
	TotalCount     int    `json:"total_count"`
	Percentage     int    `json:"percentage"`
	Band           string `json:"band,omitempty"`
	Recommendation string `json:"recommendation,omitempty"`
}

// StartAttemptRequest starts an attempt on a variant; an empty model picks one.
type StartAttemptRequest struct {
	Model string `json:"model" validate:"max=100"`
}

// SetAnswerRequest sets or clears (blank value) one answer.
type SetAnswerRequest struct {
	Value string `json:"value" validate:"max=1000"`
}

// AttemptResponse is a placement attempt with its questions.
// @Description Placement attempt
type AttemptResponse struct {
	ID        string             `json:"id"`
	Model     string             `json:"model"`
	State     string             `json:"state"`
	Answers   map[int]string     `json:"answers"`
	Score     *ScoreResponse     `json:"score,omitempty"`
	Questions []QuestionResponse `json:"questions,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewQuestionResponses strips grading data from bank questions.
func NewQuestionResponses(items []domain.QuestionItem) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(items))
	for _, q := range items {
		options := q.Options
		if options == nil {
			options = []string{}
		}
		out = append(out, QuestionResponse{
			Model:       q.Model,
			Question:    q.Question,
			Type:        q.Type,
			Prompt:      q.Prompt,
			PromptTrans: q.PromptTrans,
			Options:     options,
		})
	}
	return out
}

// NewQuestionsResponse converts a variant selection.
func NewQuestionsResponse(set domain.QuestionSet) *QuestionsResponse {
	resp := &QuestionsResponse{
		Models:    set.Models,
		Questions: NewQuestionResponses(set.Questions),
	}
	if resp.Models == nil {
		resp.Models = []string{}
	}
	if set.SelectedModel != "" {
		selected := set.SelectedModel
		resp.SelectedModel = &selected
	}
	return resp
}

// NewScoreResponse attaches the localized level recommendation.
func NewScoreResponse(score domain.ScoreResult, recommendation string) *ScoreResponse {
	return &ScoreResponse{
		CorrectCount:   score.CorrectCount,
		TotalCount:     score.TotalCount,
		Percentage:     score.Percentage,
		Band:           score.Band,
		Recommendation: recommendation,
	}
}
