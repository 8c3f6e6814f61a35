package compose

import (
	"regexp"
	"strings"

	"github.com/pkozlov/newsbrief/internal/model"
)

var urlPattern = regexp.MustCompile(`https?://[^\s<>"{}|\\^` + "`" + `\[\]]+`)

// ExtractURLs harvests article URLs from the curated text: every URL the
// curator echoed, plus the URLs of collected items whose title prefix
// appears in the curated text (the curator sometimes paraphrases links).
// Capped at max URLs to bound enrichment cost.
func ExtractURLs(curated string, items []model.NewsItem, max int) []string {
	seen := make(map[string]bool)
	var urls []string

	add := func(u string) {
		u = strings.TrimRight(u, ".,;:!?)")
		if u != "" && !seen[u] {
			seen[u] = true
			urls = append(urls, u)
		}
	}

	for _, u := range urlPattern.FindAllString(curated, -1) {
		add(u)
	}

	curatedLower := strings.ToLower(curated)
	for _, item := range items {
		if item.URL == "" || item.Title == "" {
			continue
		}
		prefix := strings.ToLower(item.Title)
		if len(prefix) > 30 {
			prefix = prefix[:30]
		}
		if strings.Contains(curatedLower, prefix) {
			add(item.URL)
		}
	}

	if max > 0 && len(urls) > max {
		urls = urls[:max]
	}

	return urls
}
