package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pkozlov/newsbrief/internal/model"
)

const gnewsAPIURL = "https://gnews.io/api/v4/search"

// GNewsClient searches the GNews API for broader coverage than the
// configured vendor feeds.
type GNewsClient struct {
	apiKey     string
	query      string
	maxResults int
	baseURL    string
	httpClient *http.Client
}

// NewGNewsClient creates a client. An empty API key is tolerated: Search
// then returns no items, so the workflow degrades to feed-only coverage.
func NewGNewsClient(cfg model.GNewsConfig, timeout time.Duration) *GNewsClient {
	return &GNewsClient{
		apiKey:     cfg.APIKey,
		query:      cfg.Query,
		maxResults: cfg.MaxResults,
		baseURL:    gnewsAPIURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type gnewsResponse struct {
	Articles []gnewsArticle `json:"articles"`
}

type gnewsArticle struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

// Search runs the combined query and returns the resulting items,
// deduplicated by URL.
func (c *GNewsClient) Search(ctx context.Context) ([]model.NewsItem, error) {
	if c.apiKey == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", c.query)
	params.Set("lang", "en")
	params.Set("max", fmt.Sprintf("%d", c.maxResults))
	params.Set("sortby", "publishedAt")
	params.Set("apikey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var body gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	seen := make(map[string]bool)
	var items []model.NewsItem

	for _, a := range body.Articles {
		if a.URL == "" || seen[a.URL] {
			continue
		}
		seen[a.URL] = true

		source := a.Source.Name
		if source == "" {
			source = "Unknown"
		}

		items = append(items, model.NewsItem{
			Title:       a.Title,
			Summary:     a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      source,
		})
	}

	return items, nil
}
