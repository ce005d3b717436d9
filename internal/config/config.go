package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	ReadTimeout             time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout            time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres Postgres
	Quiz     Quiz
	CORS     CORS
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST,notEmpty"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER,notEmpty"`
	Password string `env:"PG_PASSWORD,notEmpty"`
	Database string `env:"PG_DATABASE,notEmpty"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`

	MaxOpenConns       int           `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns       int           `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime    time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"30m"`
	SlowQueryThreshold time.Duration `env:"PG_SLOW_QUERY_THRESHOLD" envDefault:"200ms"`
	AutoMigrate        bool          `env:"PG_AUTO_MIGRATE" envDefault:"false"`
}

// DSN renders the key/value connection string understood by pgx.
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Quiz selects how the next quiz question is picked: "random" or "first".
type Quiz struct {
	Selection string `env:"QUIZ_SELECTION" envDefault:"random"`
}

// CORS holds the headers attached to every response.
type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,DELETE"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
}

// Import configures the external trivia sources used by cmd/importer.
type Import struct {
	OpenTDBBaseURL   string        `env:"OPENTDB_BASE_URL" envDefault:"https://opentdb.com"`
	TriviaAPIBaseURL string        `env:"TRIVIA_API_BASE_URL" envDefault:"https://the-trivia-api.com/v2"`
	TriviaAPIKey     string        `env:"TRIVIA_API_KEY"`
	HTTPTimeout      time.Duration `env:"IMPORT_HTTP_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadPostgres parses only the database group, for tools that need nothing else.
func LoadPostgres() (*Postgres, error) {
	cfg := &Postgres{}
	if err := parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadImport parses the importer group. Every field is optional.
func LoadImport() (*Import, error) {
	cfg := &Import{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse import config: %w", err)
	}
	return cfg, nil
}

func parse(v interface{}) error {
	if err := env.ParseWithOptions(v, env.Options{RequiredIfNoDef: true}); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}
