package model

import "time"

// NewsItem is a single candidate story collected from a feed or the news API.
// Identity is the URL; the collector deduplicates on it.
type NewsItem struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Source      string    `json:"source"` // Feed or publisher name
}

// Article is the full text retrieved for a curated item.
// On retrieval failure Content carries a human-readable explanation
// instead of an error - enrichment is best-effort.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}
