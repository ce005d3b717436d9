package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/db/dbtest"
)

func TestCategoryRepository_List(t *testing.T) {
	repo := NewCategoryRepository(dbtest.Open(t))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dbtest.DefaultCategories, got)
}

func TestCategoryRepository_Exists(t *testing.T) {
	repo := NewCategoryRepository(dbtest.Open(t))
	ctx := context.Background()

	for id, want := range map[int]bool{1: true, 6: true, 0: false, 7: false, 1000: false} {
		got, err := repo.Exists(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got, "category %d", id)
	}
}
