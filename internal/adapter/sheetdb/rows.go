package sheetdb

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"altoque/internal/domain"
	"altoque/internal/grader"
)

var (
	optionSplit      = regexp.MustCompile(`[|;]+`)
	trueFalseOptions = []string{"True", "False"}
)

// Row is one spreadsheet row as decoded from JSON. Column names are matched
// case-insensitively because the sheet headers drift.
type Row map[string]interface{}

// Get returns the trimmed text of a column, or "" when it is absent.
func (r Row) Get(column string) string {
	return cellText(r.Raw(column))
}

// Raw returns the decoded cell as-is, or nil when the column is absent.
func (r Row) Raw(column string) interface{} {
	if v, ok := r[column]; ok {
		return v
	}
	for k, v := range r {
		if strings.EqualFold(k, column) {
			return v
		}
	}
	return nil
}

func cellText(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// NormalizeQuestionRows maps raw sheet rows to eligible question items.
func NormalizeQuestionRows(rows []map[string]interface{}) []domain.QuestionItem {
	items := make([]domain.QuestionItem, 0, len(rows))
	for _, raw := range rows {
		item := normalizeQuestion(Row(raw))
		if item.Eligible() {
			items = append(items, item)
		}
	}
	return items
}

func normalizeQuestion(r Row) domain.QuestionItem {
	qType := domain.QuestionType(strings.ToLower(r.Get("Type")))

	options := splitCells(r.Get("Options"))
	if len(options) == 0 && qType == domain.QuestionTypeTrueFalse {
		options = append([]string(nil), trueFalseOptions...)
	}

	return domain.QuestionItem{
		Model:       r.Get("Model"),
		Question:    parseIndex(r.Get("Question")),
		Type:        qType,
		Prompt:      r.Get("Prompt"),
		PromptTrans: r.Get("Prompt_trans"),
		Options:     options,
		Answer:      trimList(grader.ToList(r.Raw("Answer"))),
		Accept:      acceptList(r.Raw("Accept")),
		Enabled:     isTruthy(r.Get("Enabled")),
	}
}

// NormalizeScheduleRows keeps rows with a day, time and course that are
// explicitly enabled.
func NormalizeScheduleRows(rows []map[string]interface{}) []domain.ScheduleSlot {
	slots := make([]domain.ScheduleSlot, 0, len(rows))
	for _, raw := range rows {
		r := Row(raw)
		slot := domain.ScheduleSlot{
			Day:     r.Get("Day"),
			Time:    r.Get("Time"),
			Course:  r.Get("Course"),
			Enabled: strings.EqualFold(r.Get("Enabled"), "true"),
		}
		if slot.Day != "" && slot.Time != "" && slot.Course != "" && slot.Enabled {
			slots = append(slots, slot)
		}
	}
	return slots
}

func splitCells(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := optionSplit.Split(s, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// acceptList keeps array cells element by element and splits text cells on
// '|' and ';' only, since accepted variants may contain commas.
func acceptList(v interface{}) []string {
	if items, ok := v.([]interface{}); ok {
		return trimList(grader.ToList(items))
	}
	return splitCells(cellText(v))
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseIndex(s string) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// numeric cells sometimes arrive as "3.0"
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return int(f)
	}
	return 0
}

func isTruthy(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}
