// Package grader scores placement test attempts by comparing normalized
// answers against each question's accepted set.
package grader

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"altoque/internal/domain"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Grade bands, lowest first.
const (
	BandA1     = "A1"
	BandA2     = "A2"
	BandB1     = "B1"
	BandB2     = "B2"
	BandC1Plus = "C1+"
)

// NormalizeText produces the comparison key for an answer: lowercased,
// diacritics removed, whitespace collapsed and trimmed. Non-string input is
// coerced to text first.
func NormalizeText(v interface{}) string {
	s := strings.ToLower(toString(v))

	// transform chains are stateful, so one per call
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}

	return strings.Join(strings.Fields(s), " ")
}

// ToList returns sequences element-wise and splits scalars on '|', ';' and ','.
func ToList(v interface{}) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		return t
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if e == nil {
				continue
			}
			out = append(out, toString(e))
		}
		return out
	default:
		return splitList(toString(t))
	}
}

func splitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '|' || r == ';' || r == ','
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BuildAcceptedSet is the normalized union of a question's answer and accept lists.
func BuildAcceptedSet(q domain.QuestionItem) map[string]struct{} {
	accepted := make(map[string]struct{}, len(q.Answer)+len(q.Accept))
	for _, list := range [][]string{ToList(q.Answer), ToList(q.Accept)} {
		for _, entry := range list {
			if key := NormalizeText(entry); key != "" {
				accepted[key] = struct{}{}
			}
		}
	}
	return accepted
}

// GradeAttempt counts answers found in their question's accepted set.
// Unanswered and blank entries are skipped. With no questions the percentage
// is 0 and no band is assigned.
func GradeAttempt(questions []domain.QuestionItem, answers domain.AnswerSet) domain.ScoreResult {
	correct := 0
	for i, q := range questions {
		raw, ok := answers[i]
		if !ok {
			continue
		}
		key := NormalizeText(raw)
		if key == "" {
			continue
		}
		if _, hit := BuildAcceptedSet(q)[key]; hit {
			correct++
		}
	}

	result := domain.ScoreResult{CorrectCount: correct, TotalCount: len(questions)}
	if result.TotalCount == 0 {
		return result
	}
	result.Percentage = int(math.Round(100 * float64(correct) / float64(result.TotalCount)))
	result.Band = GradeBand(result.Percentage)
	return result
}

// GradeBand maps a percentage to a CEFR-style label. Each threshold belongs
// to the band above it, so 35 is A2.
func GradeBand(percentage int) string {
	switch {
	case percentage < 35:
		return BandA1
	case percentage < 55:
		return BandA2
	case percentage < 70:
		return BandB1
	case percentage < 85:
		return BandB2
	default:
		return BandC1Plus
	}
}

// Recommendation returns the i18n key of the course advice for a band.
func Recommendation(band string) string {
	switch band {
	case BandA1, BandA2:
		return "level_reco_low"
	case BandB1:
		return "level_reco_mid"
	case BandB2, BandC1Plus:
		return "level_reco_high"
	default:
		return ""
	}
}

func toString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
