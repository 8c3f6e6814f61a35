package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/pkozlov/newsbrief/internal/cache"
	"github.com/pkozlov/newsbrief/internal/model"
)

// FeedFetcher pulls recent items from the configured RSS/Atom feeds.
type FeedFetcher struct {
	feeds      map[string]string
	parser     *gofeed.Parser
	httpClient *http.Client
	store      cache.Cache
	userAgent  string
	maxBytes   int64
}

// NewFeedFetcher creates a fetcher for the given name -> URL feed set.
// store may be nil to disable caching of feed bodies.
func NewFeedFetcher(feeds map[string]string, httpCfg model.HTTPConfig, store cache.Cache) *FeedFetcher {
	return &FeedFetcher{
		feeds:      feeds,
		parser:     gofeed.NewParser(),
		httpClient: &http.Client{Timeout: httpCfg.Timeout},
		store:      store,
		userAgent:  httpCfg.UserAgent,
		maxBytes:   httpCfg.MaxBodyBytes,
	}
}

// Fetch returns all feed items published within the trailing window, newest
// first. A feed that fails to download or parse contributes nothing; feed
// errors never abort collection.
func (f *FeedFetcher) Fetch(ctx context.Context, windowHours int) ([]model.NewsItem, []error) {
	cutoff := time.Now().Add(-time.Duration(windowHours) * time.Hour)

	var items []model.NewsItem
	var errs []error

	for source, feedURL := range f.feeds {
		feed, err := f.parseFeed(ctx, feedURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("feed %s: %w", source, err))
			continue
		}

		for _, entry := range feed.Items {
			published := entryTime(entry)
			if published.Before(cutoff) {
				continue
			}

			summary := entry.Description
			if summary == "" {
				summary = entry.Content
			}

			items = append(items, model.NewsItem{
				Title:       entry.Title,
				Summary:     summary,
				URL:         entry.Link,
				PublishedAt: published,
				Source:      source,
			})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})

	return items, errs
}

// parseFeed downloads and parses one feed, going through the cache so
// repeated runs within the TTL do not re-poll the publisher.
func (f *FeedFetcher) parseFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	key := cache.Key(feedURL)

	if f.store != nil {
		if raw, ok := f.store.Get(key); ok {
			return f.parser.ParseString(string(raw))
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if f.store != nil {
		_ = f.store.Set(key, raw, 0)
	}

	return f.parser.ParseString(string(raw))
}

// entryTime picks the best available timestamp for a feed entry.
func entryTime(entry *gofeed.Item) time.Time {
	if entry.PublishedParsed != nil {
		return *entry.PublishedParsed
	}
	if entry.UpdatedParsed != nil {
		return *entry.UpdatedParsed
	}
	return time.Now()
}
