//go:build integration

package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/gokatarajesh/trivia-api/internal/config"
)

func newIntegrationApp(t *testing.T) *Application {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("trivia"),
		postgres.WithUsername("trivia"),
		postgres.WithPassword("trivia"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	t.Setenv("APP_ENV", "test")
	t.Setenv("PG_HOST", host)
	t.Setenv("PG_PORT", port.Port())
	t.Setenv("PG_USER", "trivia")
	t.Setenv("PG_PASSWORD", "trivia")
	t.Setenv("PG_DATABASE", "trivia")
	t.Setenv("PG_AUTO_MIGRATE", "true")

	cfg, err := config.Load(ctx)
	require.NoError(t, err)

	a, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.sqlDB.Close() })
	return a
}

func call(t *testing.T, a *Application, method, target, body string) (int, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	a.http.Handler.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec.Code, out
}

func TestApplicationAgainstPostgres(t *testing.T) {
	a := newIntegrationApp(t)

	code, _ := call(t, a, http.MethodGet, "/v1/ping", "")
	assert.Equal(t, http.StatusOK, code)

	code, body := call(t, a, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["categories"], 6)

	code, body = call(t, a, http.MethodGet, "/questions?page=2", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["questions"], 9)
	assert.Equal(t, float64(19), body["total_questions"])

	code, body = call(t, a, http.MethodPost, "/questions", `{"searchTerm":"title"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(2), body["total_questions"])

	code, body = call(t, a, http.MethodPost, "/questions", `{"question":"Integration?","answer":"Yes","category":1,"difficulty":2}`)
	require.Equal(t, http.StatusOK, code)
	created := strconv.Itoa(int(body["created"].(float64)))

	code, _ = call(t, a, http.MethodDelete, "/questions/"+created, "")
	assert.Equal(t, http.StatusOK, code)
	code, _ = call(t, a, http.MethodDelete, "/questions/"+created, "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	code, body = call(t, a, http.MethodPost, "/quizzes", `{"previous_questions":[],"quiz_category":{"id":0}}`)
	require.Equal(t, http.StatusOK, code)
	assert.NotNil(t, body["question"])
}
