package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gokatarajesh/trivia-api/internal/db/models"
)

// ErrNotFound is returned when a write targets a row that does not exist.
var ErrNotFound = errors.New("record not found")

// QuestionOrder selects the sort applied by QuestionRepository.List.
type QuestionOrder uint8

const (
	// OrderByDifficulty sorts ascending by difficulty, ties broken by id.
	OrderByDifficulty QuestionOrder = iota
	// OrderByID sorts ascending by id.
	OrderByID
)

func (o QuestionOrder) clause() string {
	if o == OrderByID {
		return "id ASC"
	}
	return "difficulty ASC, id ASC"
}

// QuestionFilter narrows QuestionRepository.List. Zero values match everything;
// a nil CategoryID spans all categories.
type QuestionFilter struct {
	CategoryID *int
	Search     string
	ExcludeIDs []int
	OrderBy    QuestionOrder
}

// InCategory returns a CategoryID restricting a QuestionFilter to id.
func InCategory(id int) *int {
	return &id
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepository persists trivia questions through gorm.
type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// List returns every question matching f in the requested order.
func (r *QuestionRepository) List(ctx context.Context, f QuestionFilter) ([]models.Question, error) {
	query := r.db.WithContext(ctx).Model(&models.Question{})
	if f.CategoryID != nil {
		query = query.Where("category = ?", *f.CategoryID)
	}
	if f.Search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(f.Search)) + "%"
		query = query.Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern)
	}

	var questions []models.Question
	if err := query.Order(f.OrderBy.clause()).Find(&questions).Error; err != nil {
		return nil, err
	}
	return exclude(questions, f.ExcludeIDs), nil
}

// exclude drops rows whose id is listed in ids. It runs in memory because the
// list is client supplied and unbounded, which would overflow the driver's
// bind parameter limit as an IN clause.
func exclude(rows []models.Question, ids []int) []models.Question {
	if len(ids) == 0 {
		return rows
	}
	skip := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		skip[id] = struct{}{}
	}
	kept := rows[:0]
	for _, row := range rows {
		if _, ok := skip[row.ID]; !ok {
			kept = append(kept, row)
		}
	}
	return kept
}

// Create inserts q and fills in its generated id.
func (r *QuestionRepository) Create(ctx context.Context, q *models.Question) error {
	return r.db.WithContext(ctx).Create(q).Error
}

// Delete removes the question with id, or returns ErrNotFound.
func (r *QuestionRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&models.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of stored questions.
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Question{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// ExistsWithText reports whether a question with the same text is stored,
// ignoring case and surrounding whitespace.
func (r *QuestionRepository) ExistsWithText(ctx context.Context, text string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Question{}).
		Where("LOWER(question) = ?", strings.ToLower(strings.TrimSpace(text))).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
