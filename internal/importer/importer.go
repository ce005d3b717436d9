// Package importer copies questions from public trivia APIs into the question store.
package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/db/models"
	"github.com/gokatarajesh/trivia-api/internal/question/external"
)

// MaxAmount is the largest batch the public APIs serve in one call.
const MaxAmount = 50

type questionStore interface {
	ExistsWithText(ctx context.Context, text string) (bool, error)
	Create(ctx context.Context, q *models.Question) error
	Count(ctx context.Context) (int64, error)
}

type categoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
}

// Summary counts what one import run did with the fetched items.
type Summary struct {
	Source            string `json:"source"`
	Fetched           int    `json:"fetched"`
	Imported          int    `json:"imported"`
	SkippedNoCategory int    `json:"skipped_no_category"`
	SkippedDuplicate  int    `json:"skipped_duplicate"`
	SkippedInvalid    int    `json:"skipped_invalid"`
	TotalQuestions    int64  `json:"total_questions"`
}

// Importer maps external items onto local categories and stores the new ones.
type Importer struct {
	questions  questionStore
	categories categoryStore
	logger     zerolog.Logger
}

func New(questions questionStore, categories categoryStore, logger zerolog.Logger) *Importer {
	return &Importer{
		questions:  questions,
		categories: categories,
		logger:     logger.With().Str("component", "importer").Logger(),
	}
}

// Run fetches amount questions of the given difficulty ("" for any) from src.
func (im *Importer) Run(ctx context.Context, src external.Source, amount int, difficulty string) (Summary, error) {
	summary := Summary{Source: src.Name()}
	if amount < 1 || amount > MaxAmount {
		return summary, fmt.Errorf("amount must be between 1 and %d, got %d", MaxAmount, amount)
	}
	switch difficulty {
	case "", "easy", "medium", "hard":
	default:
		return summary, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	categories, err := im.categories.List(ctx)
	if err != nil {
		return summary, fmt.Errorf("list categories: %w", err)
	}

	items, err := src.Fetch(ctx, amount, difficulty)
	if err != nil {
		return summary, fmt.Errorf("fetch from %s: %w", src.Name(), err)
	}
	summary.Fetched = len(items)

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		text := strings.TrimSpace(item.Question)
		answer := strings.TrimSpace(item.Answer)
		if text == "" || answer == "" {
			summary.SkippedInvalid++
			continue
		}

		categoryID, ok := MatchCategory(item.Category, categories)
		if !ok {
			im.logger.Debug().Str("category", item.Category).Msg("no local category")
			summary.SkippedNoCategory++
			continue
		}

		key := strings.ToLower(text)
		if _, dup := seen[key]; dup {
			summary.SkippedDuplicate++
			continue
		}
		seen[key] = struct{}{}

		exists, err := im.questions.ExistsWithText(ctx, text)
		if err != nil {
			return summary, fmt.Errorf("check duplicate: %w", err)
		}
		if exists {
			summary.SkippedDuplicate++
			continue
		}

		row := &models.Question{
			Question:   text,
			Answer:     answer,
			Category:   categoryID,
			Difficulty: MapDifficulty(item.Difficulty),
		}
		if err := im.questions.Create(ctx, row); err != nil {
			return summary, fmt.Errorf("store question: %w", err)
		}
		summary.Imported++
	}

	total, err := im.questions.Count(ctx)
	if err != nil {
		return summary, fmt.Errorf("count questions: %w", err)
	}
	summary.TotalQuestions = total
	return summary, nil
}

// MatchCategory returns the first category, by id, whose type appears in name
// ignoring case.
func MatchCategory(name string, categories []models.Category) (int, bool) {
	lowered := strings.ToLower(name)
	for _, c := range categories {
		if c.Type != "" && strings.Contains(lowered, strings.ToLower(c.Type)) {
			return c.ID, true
		}
	}
	return 0, false
}

// MapDifficulty maps the APIs' three labels onto the 1-5 scale.
func MapDifficulty(label string) int {
	switch strings.ToLower(label) {
	case "easy":
		return 1
	case "hard":
		return 5
	default:
		return 3
	}
}
