package quiz

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/models"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/question"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Outcomes reported to the Recorder.
const (
	OutcomePicked    = "picked"
	OutcomeExhausted = "exhausted"
)

type questionStore interface {
	List(ctx context.Context, f repository.QuestionFilter) ([]models.Question, error)
}

type categoryChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// Recorder counts selection outcomes.
type Recorder interface {
	QuizSelection(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) QuizSelection(string) {}

// Service serves the next unseen quiz question.
type Service struct {
	questions  questionStore
	categories categoryChecker
	selector   *Selector
	recorder   Recorder
	logger     zerolog.Logger
}

func NewService(questions questionStore, categories categoryChecker, selector *Selector, recorder Recorder, logger zerolog.Logger) *Service {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		questions:  questions,
		categories: categories,
		selector:   selector,
		recorder:   recorder,
		logger:     logger.With().Str("component", "quiz_service").Logger(),
	}
}

// NextQuestion picks a question not in req.PreviousQuestions, restricted to the
// requested category unless it is AllCategories. It returns nil, nil once every
// candidate has been asked.
func (s *Service) NextQuestion(ctx context.Context, req NextQuestionRequest) (*question.Question, error) {
	const op = "next quiz question"

	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		return nil, httperrors.Validation(op, errors.New("quiz_category is required"))
	}
	categoryID := int(*req.QuizCategory.ID)
	if categoryID < 0 {
		return nil, httperrors.Validation(op, fmt.Errorf("invalid category id %d", categoryID))
	}
	if categoryID != AllCategories {
		ok, err := s.categories.Exists(ctx, categoryID)
		if err != nil {
			return nil, httperrors.Storage(op, err)
		}
		if !ok {
			return nil, httperrors.Validation(op, fmt.Errorf("category %d does not exist", categoryID))
		}
	}

	filter := repository.QuestionFilter{
		ExcludeIDs: uniqueIDs(req.PreviousQuestions),
		OrderBy:    repository.OrderByID,
	}
	if categoryID != AllCategories {
		filter.CategoryID = repository.InCategory(categoryID)
	}
	rows, err := s.questions.List(ctx, filter)
	if err != nil {
		return nil, httperrors.Storage(op, err)
	}

	picked, ok := s.selector.Pick(question.FromModels(rows))
	if !ok {
		s.recorder.QuizSelection(OutcomeExhausted)
		s.logger.Debug().Int("category", categoryID).Int("previous", len(req.PreviousQuestions)).Msg("quiz exhausted")
		return nil, nil
	}
	s.recorder.QuizSelection(OutcomePicked)
	return &picked, nil
}

func uniqueIDs(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
