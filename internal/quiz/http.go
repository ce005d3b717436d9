package quiz

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/pkg/http/bind"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/http/render"
)

// HTTPHandler serves POST /quizzes.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "quiz_http").Logger(),
	}
}

// Next responds with {success: true, question} where question is null once the quiz is exhausted.
func (h *HTTPHandler) Next(w http.ResponseWriter, r *http.Request) {
	var req NextQuestionRequest
	if err := bind.JSON(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	next, err := h.svc.NextQuestion(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"question": next,
	})
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	httperrors.RespondLogged(w, logging.FromContextOr(r.Context(), h.logger), err)
}
