package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TriviaAPIClient integrates with the-trivia-api.com v2. The API key is optional.
type TriviaAPIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewTriviaAPIClient(baseURL, apiKey string, timeout time.Duration, httpClient *http.Client) *TriviaAPIClient {
	if baseURL == "" {
		baseURL = "https://the-trivia-api.com/v2"
	}
	return &TriviaAPIClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: defaultHTTPClient(httpClient, timeout),
	}
}

func (c *TriviaAPIClient) Name() string { return "triviaapi" }

type triviaAPIQuestion struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Question struct {
		Text string `json:"text"`
	} `json:"question"`
	Difficulty    string `json:"difficulty"`
	CorrectAnswer string `json:"correctAnswer"`
}

// triviaAPICategories renames the slugs whose words do not name a local category.
var triviaAPICategories = map[string]string{
	"film_and_tv":       "Entertainment: Film & TV",
	"music":             "Entertainment: Music",
	"sport_and_leisure": "Sports & Leisure",
}

func triviaAPICategory(slug string) string {
	if name, ok := triviaAPICategories[slug]; ok {
		return name
	}
	return strings.ReplaceAll(slug, "_", " ")
}

// Fetch asks for amount questions; difficulty may be empty for any.
func (c *TriviaAPIClient) Fetch(ctx context.Context, amount int, difficulty string) ([]Item, error) {
	values := url.Values{}
	values.Set("limit", fmt.Sprint(amount))
	if difficulty != "" {
		values.Set("difficulties", difficulty)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/questions?"+values.Encode(), nil)
	if err != nil {
		return nil, err
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := statusError(c.Name(), resp); err != nil {
		return nil, err
	}

	var payload []triviaAPIQuestion
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode triviaapi payload: %w", err)
	}

	items := make([]Item, 0, len(payload))
	for _, q := range payload {
		items = append(items, Item{
			Category:   triviaAPICategory(q.Category),
			Difficulty: q.Difficulty,
			Question:   q.Question.Text,
			Answer:     q.CorrectAnswer,
		})
	}
	return items, nil
}
