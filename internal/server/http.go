package server

import (
	"net/http"

	"github.com/gokatarajesh/trivia-api/internal/config"
)

// NewHTTPServer binds handler to the configured address and timeouts.
func NewHTTPServer(cfg *config.App, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}
