package question

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/pkg/http/bind"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
	"github.com/gokatarajesh/trivia-api/pkg/http/render"
)

type categoryLister interface {
	Map(ctx context.Context) (map[int]string, error)
}

// HTTPHandler exposes the question endpoints.
type HTTPHandler struct {
	svc        *Service
	categories categoryLister
	logger     zerolog.Logger
}

// NewHTTPHandler constructs a question HTTP handler.
func NewHTTPHandler(svc *Service, categories categoryLister, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:        svc,
		categories: categories,
		logger:     logger.With().Str("component", "question_http").Logger(),
	}
}

// createOrSearchRequest is either a search (non-empty searchTerm) or a creation body.
type createOrSearchRequest struct {
	SearchTerm *string `json:"searchTerm"`
	CreateRequest
}

// List handles GET /questions?page=N.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page, err := h.svc.List(ctx, ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	categories, err := h.categories.Map(ctx)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"categories":       categories,
		"current_category": 0,
	})
}

// ListByCategory handles GET /categories/{categoryID}/questions?page=N.
func (h *HTTPHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := h.pathID(w, r, "categoryID")
	if !ok {
		return
	}
	page, err := h.svc.ListByCategory(r.Context(), categoryID, ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        page.Questions,
		"total_questions":  page.Total,
		"current_category": categoryID,
	})
}

// CreateOrSearch handles POST /questions. A non-empty searchTerm wins over creation.
func (h *HTTPHandler) CreateOrSearch(w http.ResponseWriter, r *http.Request) {
	var req createOrSearchRequest
	if err := bind.Decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	if req.SearchTerm != nil && *req.SearchTerm != "" {
		found, err := h.svc.Search(r.Context(), *req.SearchTerm)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		render.JSON(w, http.StatusOK, map[string]interface{}{
			"success":         true,
			"questions":       found,
			"total_questions": len(found),
		})
		return
	}

	if err := bind.Struct(&req.CreateRequest); err != nil {
		h.fail(w, r, err)
		return
	}
	created, err := h.svc.Create(r.Context(), req.CreateRequest, ParsePage(r.URL.Query().Get("page")))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"created":         created.ID,
		"questions":       created.Page.Questions,
		"total_questions": created.Page.Total,
	})
}

// Delete handles DELETE /questions/{questionID}.
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "questionID")
	if !ok {
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": id,
	})
}

// pathID parses a numeric URL parameter; anything else is a missing resource.
func (h *HTTPHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id < 0 {
		httperrors.RespondNotFound(w)
		return 0, false
	}
	return id, true
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	httperrors.RespondLogged(w, logging.FromContextOr(r.Context(), h.logger), err)
}
