package category

import (
	"context"

	"github.com/gokatarajesh/trivia-api/internal/db/models"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

type categoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Exists(ctx context.Context, id int) (bool, error)
}

// Service exposes the read-only category list.
type Service struct {
	store categoryStore
}

func NewService(store categoryStore) *Service {
	return &Service{store: store}
}

// Map returns every category keyed by id. An empty store yields an empty map.
func (s *Service) Map(ctx context.Context) (map[int]string, error) {
	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, httperrors.Internal("list categories", err)
	}
	out := make(map[int]string, len(rows))
	for _, c := range rows {
		out[c.ID] = c.Type
	}
	return out, nil
}

// Exists reports whether id names a stored category.
func (s *Service) Exists(ctx context.Context, id int) (bool, error) {
	return s.store.Exists(ctx, id)
}
