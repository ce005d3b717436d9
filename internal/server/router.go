package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/category"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/metrics"
	"github.com/gokatarajesh/trivia-api/internal/question"
	"github.com/gokatarajesh/trivia-api/internal/quiz"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/http/render"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Options carries the infrastructure the router depends on.
type Options struct {
	Logger   zerolog.Logger
	CORS     config.CORS
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
	DB       Pinger
}

// Handlers groups the API endpoint handlers.
type Handlers struct {
	Categories *category.HTTPHandler
	Questions  *question.HTTPHandler
	Quiz       *quiz.HTTPHandler
}

// NewRouter wires the trivia API, health and metrics routes.
func NewRouter(opts Options, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(corsHeaders(opts.CORS))
	r.Use(requestLogger(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(recoverer)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondNotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httperrors.RespondMethodNotAllowed(w)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		if opts.DB != nil {
			if err := opts.DB.PingContext(r.Context()); err != nil {
				logger := logging.FromContextOr(r.Context(), opts.Logger)
				logger.Error().Err(err).Msg("dependency ping failed")
				httperrors.RespondError(w, http.StatusBadGateway)
				return
			}
		}
		render.JSON(w, http.StatusOK, map[string]bool{"pong": true})
	})
	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/categories", h.Categories.List)
	r.Get("/categories/{categoryID:[0-9]+}/questions", h.Questions.ListByCategory)

	r.Get("/questions", h.Questions.List)
	r.Post("/questions", h.Questions.CreateOrSearch)
	r.Delete("/questions/{questionID:[0-9]+}", h.Questions.Delete)

	r.Post("/quizzes", h.Quiz.Next)

	return r
}
