package quiz

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryIDUnmarshal(t *testing.T) {
	for raw, want := range map[string]int{`3`: 3, `"3"`: 3, `0`: 0, `" 12 "`: 12, `-1`: -1} {
		var id CategoryID
		require.NoError(t, json.Unmarshal([]byte(raw), &id), raw)
		assert.Equal(t, CategoryID(want), id)
	}
	var id CategoryID
	assert.Error(t, json.Unmarshal([]byte(`"science"`), &id))
	assert.Error(t, json.Unmarshal([]byte(`1.5`), &id))
}

func TestHTTPHandler_Next(t *testing.T) {
	svc, seeded, _ := newStoreService(t, ModeRandom)
	h := NewHTTPHandler(svc, zerolog.Nop())

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantNull bool
	}{
		{"all categories", `{"previous_questions":[],"quiz_category":{"id":0}}`, http.StatusOK, false},
		{"string id", `{"previous_questions":[],"quiz_category":{"id":"4","type":"History"}}`, http.StatusOK, false},
		{"exhausted", `{"previous_questions":[` + strconv.Itoa(seeded[2].ID) + `],"quiz_category":{"id":4}}`, http.StatusOK, true},
		{"missing previous", `{"quiz_category":{"id":1}}`, http.StatusOK, false},
		{"missing category", `{"previous_questions":[]}`, http.StatusUnprocessableEntity, false},
		{"null category", `{"previous_questions":[],"quiz_category":null}`, http.StatusUnprocessableEntity, false},
		{"out of range", `{"previous_questions":[],"quiz_category":{"id":1000}}`, http.StatusUnprocessableEntity, false},
		{"negative", `{"previous_questions":[],"quiz_category":{"id":-3}}`, http.StatusUnprocessableEntity, false},
		{"malformed", `{"previous_questions":`, http.StatusUnprocessableEntity, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Next(rec, httptest.NewRequest(http.MethodPost, "/quizzes", strings.NewReader(tc.body)))
			assert.Equal(t, tc.wantCode, rec.Code)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tc.wantCode != http.StatusOK {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, float64(422), body["error"])
				return
			}
			assert.Equal(t, true, body["success"])
			require.Contains(t, body, "question")
			if tc.wantNull {
				assert.Nil(t, body["question"])
				return
			}
			q, ok := body["question"].(map[string]interface{})
			require.True(t, ok)
			for _, key := range []string{"id", "question", "answer", "category", "difficulty"} {
				assert.Contains(t, q, key)
			}
		})
	}
}
