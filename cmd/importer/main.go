package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/importer"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/question/external"
)

func main() {
	var (
		source     = flag.String("source", "opentdb", "Question source: opentdb or triviaapi")
		amount     = flag.Int("amount", 10, "Number of questions to fetch (1-50)")
		difficulty = flag.String("difficulty", "", "Difficulty filter: easy, medium, hard, or empty for any")
	)
	flag.Parse()

	env := os.Getenv("APP_ENV")
	if env != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Warn().Err(err).Msg("could not load .env file")
		}
	}
	logger := logging.New("trivia-importer", env)

	pg, err := config.LoadPostgres()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load postgres config")
	}
	importCfg, err := config.LoadImport()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load import config")
	}

	var src external.Source
	switch *source {
	case "opentdb":
		src = external.NewOpenTDBClient(importCfg.OpenTDBBaseURL, importCfg.HTTPTimeout, nil)
	case "triviaapi":
		src = external.NewTriviaAPIClient(importCfg.TriviaAPIBaseURL, importCfg.TriviaAPIKey, importCfg.HTTPTimeout, nil)
	default:
		logger.Fatal().Str("source", *source).Msg("unknown source. Use: opentdb or triviaapi")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.Open(ctx, *pg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if sqlDB, err := gdb.DB(); err == nil {
		defer sqlDB.Close()
	}

	im := importer.New(repository.NewQuestionRepository(gdb), repository.NewCategoryRepository(gdb), logger)
	summary, err := im.Run(ctx, src, *amount, *difficulty)
	if err != nil {
		logger.Fatal().Err(err).Str("source", *source).Msg("import failed")
	}

	logger.Info().
		Str("source", summary.Source).
		Int("fetched", summary.Fetched).
		Int("imported", summary.Imported).
		Int("skipped_no_category", summary.SkippedNoCategory).
		Int("skipped_duplicate", summary.SkippedDuplicate).
		Int("skipped_invalid", summary.SkippedInvalid).
		Int64("total_questions", summary.TotalQuestions).
		Msg("import finished")
}
