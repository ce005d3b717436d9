package question

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/dbtest"
	"github.com/gokatarajesh/trivia-api/internal/db/models"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
)

type staticCategories map[int]string

func (s staticCategories) Map(context.Context) (map[int]string, error) { return s, nil }

func newTestRouter(t *testing.T, seed ...models.Question) http.Handler {
	t.Helper()
	gdb := dbtest.Open(t)
	dbtest.Seed(t, gdb, seed...)

	svc := NewService(repository.NewQuestionRepository(gdb), repository.NewCategoryRepository(gdb), zerolog.Nop())
	h := NewHTTPHandler(svc, staticCategories{1: "Science", 2: "Art"}, zerolog.Nop())

	r := chi.NewRouter()
	r.Get("/questions", h.List)
	r.Post("/questions", h.CreateOrSearch)
	r.Delete("/questions/{questionID}", h.Delete)
	r.Get("/categories/{categoryID}/questions", h.ListByCategory)
	return r
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

var sample = []models.Question{
	{Question: "What was the title of the film?", Answer: "Jaws", Category: 2, Difficulty: 3},
	{Question: "Heaviest organ?", Answer: "Liver", Category: 1, Difficulty: 1},
}

func TestHTTPHandler_List(t *testing.T) {
	h := newTestRouter(t, sample...)

	code, body := do(t, h, http.MethodGet, "/questions", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["total_questions"])
	assert.Equal(t, float64(0), body["current_category"])
	assert.Equal(t, map[string]interface{}{"1": "Science", "2": "Art"}, body["categories"])

	questions := body["questions"].([]interface{})
	require.Len(t, questions, 2)
	first := questions[0].(map[string]interface{})
	assert.Equal(t, "Heaviest organ?", first["question"])
	assert.ElementsMatch(t, []string{"id", "question", "answer", "category", "difficulty"}, keys(first))

	code, body = do(t, h, http.MethodGet, "/questions?page=2", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "resource not found", body["message"])
}

func TestHTTPHandler_SearchTakesPriority(t *testing.T) {
	h := newTestRouter(t, sample...)

	code, body := do(t, h, http.MethodPost, "/questions",
		`{"searchTerm":"title","question":"New?","answer":"x","category":1,"difficulty":1}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["total_questions"])
	assert.NotContains(t, body, "created")

	_, body = do(t, h, http.MethodGet, "/questions", "")
	assert.Equal(t, float64(2), body["total_questions"])
}

func TestHTTPHandler_Create(t *testing.T) {
	h := newTestRouter(t, sample...)

	code, body := do(t, h, http.MethodPost, "/questions",
		`{"question":"New?","answer":"Yes","category":1,"difficulty":5}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(3), body["total_questions"])
	assert.Equal(t, float64(3), body["created"])

	questions := body["questions"].([]interface{})
	require.Len(t, questions, 3)
	assert.Equal(t, "New?", questions[2].(map[string]interface{})["question"])
}

func TestHTTPHandler_CreateRejectsInvalidBodies(t *testing.T) {
	h := newTestRouter(t, sample...)

	for name, payload := range map[string]string{
		"empty body":         ``,
		"malformed":          `{"question":`,
		"missing answer":     `{"question":"Q","category":1,"difficulty":1}`,
		"difficulty too big": `{"question":"Q","answer":"A","category":1,"difficulty":6}`,
		"unknown category":   `{"question":"Q","answer":"A","category":99,"difficulty":2}`,
		"empty search term":  `{"searchTerm":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			code, body := do(t, h, http.MethodPost, "/questions", payload)
			assert.Equal(t, http.StatusUnprocessableEntity, code)
			assert.Equal(t, float64(422), body["error"])
			assert.Equal(t, "unprocessable", body["message"])
		})
	}
}

func TestHTTPHandler_Delete(t *testing.T) {
	h := newTestRouter(t, sample...)

	code, body := do(t, h, http.MethodDelete, "/questions/1", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["deleted"])

	code, _ = do(t, h, http.MethodDelete, "/questions/1", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, _ = do(t, h, http.MethodDelete, "/questions/abc", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHTTPHandler_ListByCategory(t *testing.T) {
	h := newTestRouter(t, sample...)

	code, body := do(t, h, http.MethodGet, "/categories/1/questions", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), body["total_questions"])
	assert.Equal(t, float64(1), body["current_category"])

	code, _ = do(t, h, http.MethodGet, "/categories/9999/questions", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
