package question

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/models"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

type questionStore interface {
	List(ctx context.Context, f repository.QuestionFilter) ([]models.Question, error)
	Create(ctx context.Context, q *models.Question) error
	Delete(ctx context.Context, id int) error
}

type categoryChecker interface {
	Exists(ctx context.Context, id int) (bool, error)
}

// Service implements listing, search, creation and deletion of questions.
type Service struct {
	questions  questionStore
	categories categoryChecker
	logger     zerolog.Logger
}

func NewService(questions questionStore, categories categoryChecker, logger zerolog.Logger) *Service {
	return &Service{
		questions:  questions,
		categories: categories,
		logger:     logger.With().Str("component", "question_service").Logger(),
	}
}

// List returns one page of all questions ordered by difficulty.
func (s *Service) List(ctx context.Context, page int) (Page, error) {
	return s.page(ctx, "list questions", repository.QuestionFilter{}, page)
}

// ListByCategory returns one page of the questions in categoryID ordered by difficulty.
func (s *Service) ListByCategory(ctx context.Context, categoryID, page int) (Page, error) {
	return s.page(ctx, "list category questions", repository.QuestionFilter{CategoryID: repository.InCategory(categoryID)}, page)
}

func (s *Service) page(ctx context.Context, op string, f repository.QuestionFilter, page int) (Page, error) {
	rows, err := s.questions.List(ctx, f)
	if err != nil {
		return Page{}, httperrors.Internal(op, err)
	}
	all := FromModels(rows)
	items := Paginate(all, page, QuestionsPerPage)
	if len(items) == 0 {
		return Page{}, httperrors.NotFound(op, fmt.Errorf("page %d is empty", page))
	}
	return Page{Questions: items, Total: len(all)}, nil
}

// Search returns every question whose text contains term, ignoring case.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	rows, err := s.questions.List(ctx, repository.QuestionFilter{Search: term, OrderBy: repository.OrderByID})
	if err != nil {
		return nil, httperrors.Storage("search questions", err)
	}
	return FromModels(rows), nil
}

// Create stores a question and returns page of the refreshed listing ordered by id.
func (s *Service) Create(ctx context.Context, req CreateRequest, page int) (Created, error) {
	const op = "create question"

	ok, err := s.categories.Exists(ctx, req.Category)
	if err != nil {
		return Created{}, httperrors.Storage(op, err)
	}
	if !ok {
		return Created{}, httperrors.Validation(op, fmt.Errorf("category %d does not exist", req.Category))
	}

	row := &models.Question{
		Question:   req.Question,
		Answer:     req.Answer,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if err := s.questions.Create(ctx, row); err != nil {
		return Created{}, httperrors.Storage(op, err)
	}

	rows, err := s.questions.List(ctx, repository.QuestionFilter{OrderBy: repository.OrderByID})
	if err != nil {
		return Created{}, httperrors.Storage(op, err)
	}
	all := FromModels(rows)
	s.logger.Info().Int("question_id", row.ID).Int("category", row.Category).Msg("question created")

	return Created{
		ID:   row.ID,
		Page: Page{Questions: Paginate(all, page, QuestionsPerPage), Total: len(all)},
	}, nil
}

// Delete removes the question with id. A missing id is a validation failure,
// so repeated deletes of the same id fail.
func (s *Service) Delete(ctx context.Context, id int) error {
	const op = "delete question"

	err := s.questions.Delete(ctx, id)
	switch {
	case err == nil:
		s.logger.Info().Int("question_id", id).Msg("question deleted")
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return httperrors.Validation(op, fmt.Errorf("question %d: %w", id, err))
	default:
		return httperrors.Storage(op, err)
	}
}
