package domain

// QuestionType is the answer widget a placement question uses.
type QuestionType string

const (
	QuestionTypeOptions   QuestionType = "options"
	QuestionTypeTrueFalse QuestionType = "true_false"
	QuestionTypeFill      QuestionType = "fill"
)

// QuestionItem is one placement test question after boundary normalization.
type QuestionItem struct {
	Model       string       `json:"model"`
	Question    int          `json:"question"`
	Type        QuestionType `json:"type"`
	Prompt      string       `json:"prompt"`
	PromptTrans string       `json:"prompt_trans,omitempty"`
	Options     []string     `json:"options"`
	Answer      []string     `json:"answer"`
	Accept      []string     `json:"accept"`
	Enabled     bool         `json:"enabled"`
}

// Eligible reports whether the item may appear in a served test.
func (q QuestionItem) Eligible() bool {
	return q.Enabled && q.Model != "" && q.Question != 0 && q.Type != "" && q.Prompt != ""
}

// QuestionSet is the test variant served for one request.
type QuestionSet struct {
	Models        []string
	SelectedModel string
	Questions     []QuestionItem
}

// AnswerSet maps a question's position in the served test to the user's
// chosen option or typed text.
type AnswerSet map[int]string

// ScoreResult is derived from an attempt; Band is empty when there were no
// questions to grade.
type ScoreResult struct {
	CorrectCount int    `json:"correct_count"`
	TotalCount   int    `json:"total_count"`
	Percentage   int    `json:"percentage"`
	Band         string `json:"band,omitempty"`
}
