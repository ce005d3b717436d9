package category

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/http/render"
)

// HTTPHandler serves GET /categories.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "category_http").Logger(),
	}
}

func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Map(r.Context())
	if err != nil {
		httperrors.RespondLogged(w, logging.FromContextOr(r.Context(), h.logger), err)
		return
	}
	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"categories": categories,
	})
}
