package question

import "github.com/gokatarajesh/trivia-api/internal/db/models"

// QuestionsPerPage is the fixed page size of every paginated listing.
const QuestionsPerPage = 10

// Question is the formatted payload delivered to clients.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// FromModel formats a stored row.
func FromModel(m models.Question) Question {
	return Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Category:   m.Category,
		Difficulty: m.Difficulty,
	}
}

// FromModels formats rows in order. The result is never nil so it encodes as [].
func FromModels(rows []models.Question) []Question {
	out := make([]Question, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out
}

// CreateRequest is the creation body of POST /questions.
type CreateRequest struct {
	Question   string `json:"question" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	Category   int    `json:"category" validate:"required,gt=0"`
	Difficulty int    `json:"difficulty" validate:"required,min=1,max=5"`
}

// Page is one page of questions plus the size of the whole result set.
type Page struct {
	Questions []Question
	Total     int
}

// Created describes a newly stored question and the refreshed listing.
type Created struct {
	ID   int
	Page Page
}
