// Package dbtest provides throwaway in-memory databases for package tests.
package dbtest

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gokatarajesh/trivia-api/internal/db/models"
)

// DefaultCategories mirrors the seeded category rows.
var DefaultCategories = []models.Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
	{ID: 4, Type: "History"},
	{ID: 5, Type: "Entertainment"},
	{ID: 6, Type: "Sports"},
}

// Open returns a private in-memory SQLite database with the trivia schema
// and the default categories. It is closed when the test ends.
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(&models.Category{}, &models.Question{}))
	categories := append([]models.Category(nil), DefaultCategories...)
	require.NoError(t, gdb.Create(&categories).Error)
	return gdb
}

// Seed inserts questions in order and returns them with their assigned ids.
func Seed(t testing.TB, gdb *gorm.DB, questions ...models.Question) []models.Question {
	t.Helper()
	out := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		q := q
		require.NoError(t, gdb.Create(&q).Error)
		out = append(out, q)
	}
	return out
}
