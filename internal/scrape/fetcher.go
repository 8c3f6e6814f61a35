package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pkozlov/newsbrief/internal/cache"
	"github.com/pkozlov/newsbrief/internal/model"
	"github.com/pkozlov/newsbrief/internal/util"
)

// Fetcher retrieves and trims full article text for curated URLs.
// Fetching is strictly best-effort: any failure produces a sentinel Article
// whose Content explains what went wrong, never an error. A post can still
// be drafted and verified against the items that did resolve.
type Fetcher struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	limiter    *hostLimiter
	store      cache.Cache
	userAgent  string
	maxBytes   int64
	maxChars   int
	verbose    bool
}

// NewFetcher wires a fetcher from configuration. store may be nil.
func NewFetcher(cfg *model.Config, store cache.Cache) *Fetcher {
	httpCfg := cfg.HTTP

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: httpCfg.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(httpCfg.HTTPProxy, httpCfg.HTTPSProxy, httpCfg.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsChecker(httpCfg.UserAgent, httpCfg.Timeout),
		limiter:   newHostLimiter(httpCfg.RatePerHost, 2),
		store:     store,
		userAgent: httpCfg.UserAgent,
		maxBytes:  httpCfg.MaxBodyBytes,
		maxChars:  cfg.Workflow.ArticleMaxChars,
		verbose:   cfg.Output.Verbose,
	}
}

// Fetch retrieves full text for one URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) *model.Article {
	key := cache.Key(rawURL)
	if f.store != nil {
		if raw, ok := f.store.Get(key); ok {
			var article model.Article
			if json.Unmarshal(raw, &article) == nil {
				return &article
			}
		}
	}

	article := f.fetch(ctx, rawURL)

	if f.store != nil {
		if raw, err := json.Marshal(article); err == nil {
			_ = f.store.Set(key, raw, 0)
		}
	}

	return article
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) *model.Article {
	if !f.robots.IsAllowed(ctx, rawURL) {
		return sentinel(rawURL, "Fetch blocked", "robots.txt disallows fetching this URL")
	}

	if err := f.limiter.wait(ctx, rawURL); err != nil {
		return sentinel(rawURL, "Fetch error", fmt.Sprintf("rate limit wait: %v", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return sentinel(rawURL, "Fetch error", fmt.Sprintf("could not build request: %v", err))
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return sentinel(rawURL, "Fetch error", fmt.Sprintf("could not fetch article: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return sentinel(rawURL, "Fetch error", fmt.Sprintf("could not fetch article: HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return sentinel(rawURL, "Fetch error", fmt.Sprintf("could not read article: %v", err))
	}

	title, content := extractArticle(string(body), f.maxChars)
	if content == "" {
		return sentinel(rawURL, "Parse error", "could not extract article content")
	}

	return &model.Article{
		Title:   title,
		Content: content,
		URL:     rawURL,
	}
}

// FetchAll retrieves all URLs sequentially and renders the combined article
// blocks the writer and verifier prompts consume.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) string {
	var b strings.Builder

	for i, u := range urls {
		if f.verbose {
			fmt.Fprintf(os.Stderr, "  Fetching article %d/%d: %.60s\n", i+1, len(urls), u)
		}
		article := f.Fetch(ctx, u)

		divider := strings.Repeat("=", 60)
		fmt.Fprintf(&b, "\n%s\n", divider)
		fmt.Fprintf(&b, "ARTICLE %d: %s\n", i+1, article.Title)
		fmt.Fprintf(&b, "URL: %s\n", article.URL)
		fmt.Fprintf(&b, "%s\n", divider)
		fmt.Fprintf(&b, "%s\n", article.Content)
	}

	return b.String()
}

func sentinel(rawURL, title, reason string) *model.Article {
	return &model.Article{
		Title:   title,
		Content: reason,
		URL:     rawURL,
	}
}
