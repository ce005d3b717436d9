// Package external fetches questions from public trivia APIs.
package external

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Item is a question as published by an external source, already unescaped.
// Category is the source's human-readable category name.
type Item struct {
	Category   string
	Difficulty string
	Question   string
	Answer     string
}

// Source is a public trivia API.
type Source interface {
	Name() string
	Fetch(ctx context.Context, amount int, difficulty string) ([]Item, error)
}

func defaultHTTPClient(client *http.Client, timeout time.Duration) *http.Client {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func statusError(source string, resp *http.Response) error {
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s non-2xx: %d", source, resp.StatusCode)
	}
	return nil
}
