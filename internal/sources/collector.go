package sources

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pkozlov/newsbrief/internal/cache"
	"github.com/pkozlov/newsbrief/internal/model"
)

// Collector aggregates candidate news items from the RSS feeds and the
// GNews API into one deduplicated, newest-first list.
type Collector struct {
	feeds   *FeedFetcher
	gnews   *GNewsClient
	verbose bool
}

// NewCollector wires the collector from configuration. store may be nil.
func NewCollector(cfg *model.Config, store cache.Cache) *Collector {
	return &Collector{
		feeds:   NewFeedFetcher(cfg.Feeds.Sources, cfg.HTTP, store),
		gnews:   NewGNewsClient(cfg.GNews, cfg.HTTP.Timeout),
		verbose: cfg.Output.Verbose,
	}
}

// Collect returns all items published within the trailing window, newest
// first, deduplicated by URL across every upstream source. Individual source
// failures degrade to an empty contribution and never abort the run.
func (c *Collector) Collect(ctx context.Context, windowHours int) []model.NewsItem {
	feedItems, errs := c.feeds.Fetch(ctx, windowHours)
	for _, err := range errs {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if c.verbose {
		fmt.Fprintf(os.Stderr, "  %d items from RSS feeds\n", len(feedItems))
	}

	apiItems, err := c.gnews.Search(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: GNews search failed: %v\n", err)
	}
	if c.verbose {
		fmt.Fprintf(os.Stderr, "  %d items from GNews\n", len(apiItems))
	}

	return Merge(feedItems, apiItems)
}

// Merge combines item lists, deduplicating by URL and sorting newest first.
// The first occurrence of a URL wins.
func Merge(lists ...[]model.NewsItem) []model.NewsItem {
	seen := make(map[string]bool)
	var merged []model.NewsItem

	for _, list := range lists {
		for _, item := range list {
			if item.URL == "" || seen[item.URL] {
				continue
			}
			seen[item.URL] = true
			merged = append(merged, item)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	return merged
}

// FormatItems renders collected items as the numbered article block the
// curation prompt consumes.
func FormatItems(items []model.NewsItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Found %d articles:\n\n", len(items))
	for i, item := range items {
		fmt.Fprintf(&b, "--- Article %d ---\n", i+1)
		fmt.Fprintf(&b, "Source: %s\n", item.Source)
		fmt.Fprintf(&b, "Title: %s\n", item.Title)
		fmt.Fprintf(&b, "Date: %s\n", item.PublishedAt.Format("2006-01-02T15:04:05"))
		fmt.Fprintf(&b, "URL: %s\n", item.URL)
		fmt.Fprintf(&b, "Summary: %s\n\n", truncate(item.Summary, 1000))
	}

	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
