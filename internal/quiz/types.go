package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// AllCategories is the quiz_category id that selects from every category.
const AllCategories = 0

// CategoryID accepts both 3 and "3"; browser clients often send map keys as strings.
type CategoryID int

func (id *CategoryID) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("category id %s is not an integer", b)
	}
	*id = CategoryID(v)
	return nil
}

// CategoryRef is the quiz_category object sent by clients. Type is informational.
type CategoryRef struct {
	ID   *CategoryID `json:"id" validate:"required,gte=0"`
	Type string      `json:"type"`
}

// NextQuestionRequest is the body of POST /quizzes.
type NextQuestionRequest struct {
	PreviousQuestions []int        `json:"previous_questions"`
	QuizCategory      *CategoryRef `json:"quiz_category" validate:"required"`
}
