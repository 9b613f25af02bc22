package service

import (
	"context"
	"math/rand/v2"
	"sort"
	"time"

	"altoque/internal/adapter/sheetdb"
	"altoque/internal/cache"
	"altoque/internal/domain"
)

// QuestionsCacheKey holds the normalized question rows.
var QuestionsCacheKey = cache.GenerateCacheKey("sheet", "questions", "rows")

// QuestionBankService serves placement test variants from the question sheet.
type QuestionBankService interface {
	// ListQuestions returns the requested variant, or a random one when model
	// is empty or unknown. An empty bank is not an error.
	ListQuestions(ctx context.Context, model string) (*domain.QuestionSet, error)
	// QuestionsFor returns exactly the named variant's questions, ordered by index.
	QuestionsFor(ctx context.Context, model string) ([]domain.QuestionItem, error)
	Invalidate(ctx context.Context) error
}

type questionBankService struct {
	rows *sheetCache[domain.QuestionItem]
	intn func(n int) int
}

func NewQuestionBankService(reader domain.SheetReader, c domain.Cache, endpoint string, ttl time.Duration) QuestionBankService {
	return newQuestionBankService(reader, c, endpoint, ttl, rand.IntN)
}

func newQuestionBankService(reader domain.SheetReader, c domain.Cache, endpoint string, ttl time.Duration, intn func(int) int) *questionBankService {
	return &questionBankService{
		rows: &sheetCache[domain.QuestionItem]{
			reader:    reader,
			cache:     c,
			endpoint:  endpoint,
			setting:   "SHEETDB_QUESTIONS_ENDPOINT",
			key:       QuestionsCacheKey,
			ttl:       ttl,
			normalize: sheetdb.NormalizeQuestionRows,
		},
		intn: intn,
	}
}

func (s *questionBankService) ListQuestions(ctx context.Context, model string) (*domain.QuestionSet, error) {
	items, err := s.rows.load(ctx)
	if err != nil {
		return nil, err
	}
	set := SelectVariant(items, model, s.intn)
	return &set, nil
}

func (s *questionBankService) QuestionsFor(ctx context.Context, model string) ([]domain.QuestionItem, error) {
	items, err := s.rows.load(ctx)
	if err != nil {
		return nil, err
	}
	return groupByModel(items)[model], nil
}

func (s *questionBankService) Invalidate(ctx context.Context) error {
	return s.rows.invalidate(ctx)
}

// SelectVariant groups eligible items by model and picks one variant. The
// requested model wins when it exists; otherwise intn chooses among the
// sorted model names.
func SelectVariant(items []domain.QuestionItem, model string, intn func(int) int) domain.QuestionSet {
	byModel := groupByModel(items)
	models := make([]string, 0, len(byModel))
	for m := range byModel {
		models = append(models, m)
	}
	sort.Strings(models)

	if len(models) == 0 {
		return domain.QuestionSet{Models: []string{}, Questions: []domain.QuestionItem{}}
	}

	selected := model
	if _, ok := byModel[selected]; !ok {
		selected = models[intn(len(models))]
	}
	return domain.QuestionSet{
		Models:        models,
		SelectedModel: selected,
		Questions:     byModel[selected],
	}
}

func groupByModel(items []domain.QuestionItem) map[string][]domain.QuestionItem {
	byModel := make(map[string][]domain.QuestionItem)
	for _, q := range items {
		if q.Eligible() {
			byModel[q.Model] = append(byModel[q.Model], q)
		}
	}
	for _, qs := range byModel {
		sort.SliceStable(qs, func(i, j int) bool { return qs[i].Question < qs[j].Question })
	}
	return byModel
}
