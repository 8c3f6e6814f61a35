package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkozlov/newsbrief/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = 5 * time.Second
	cfg.HTTP.RatePerHost = 100
	cfg.Cache.Enabled = false
	return cfg
}

const articleHTML = `<html>
<head><title>Page title</title></head>
<body>
<nav><a href="/">Home</a> some navigation junk that is quite long indeed</nav>
<article>
<h1>Vendor ships a new model</h1>
<p>The new model handles longer context windows than the previous release.</p>
<p>short</p>
<p>Pricing stays the same for existing API customers according to the post.</p>
</article>
<footer>Copyright notice that should never appear in extracted article text</footer>
<script>console.log("tracking code that should never appear in output")</script>
</body></html>`

func TestFetch_ExtractsArticleBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = fmt.Fprint(w, articleHTML)
	}))
	defer server.Close()

	fetcher := NewFetcher(testConfig(), nil)
	article := fetcher.Fetch(context.Background(), server.URL+"/post")

	if article.Title != "Vendor ships a new model" {
		t.Errorf("Expected h1 title, got %q", article.Title)
	}
	if !strings.Contains(article.Content, "longer context windows") {
		t.Errorf("Expected paragraph text in content, got %q", article.Content)
	}
	if strings.Contains(article.Content, "short") {
		t.Error("Expected short fragments to be dropped")
	}
	if strings.Contains(article.Content, "navigation junk") {
		t.Error("Expected nav content to be excluded")
	}
	if strings.Contains(article.Content, "tracking code") {
		t.Error("Expected script content to be excluded")
	}
	if strings.Contains(article.Content, "Copyright notice") {
		t.Error("Expected footer content to be excluded")
	}
}

func TestFetch_TruncatesLongContent(t *testing.T) {
	long := strings.Repeat("This sentence pads the article body well past the limit. ", 200)
	page := "<html><body><article><p>" + long + "</p></article></body></html>"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = fmt.Fprint(w, page)
	}))
	defer server.Close()

	cfg := testConfig()
	cfg.Workflow.ArticleMaxChars = 500

	fetcher := NewFetcher(cfg, nil)
	article := fetcher.Fetch(context.Background(), server.URL)

	if len(article.Content) != 503 { // 500 + "..."
		t.Errorf("Expected content truncated to 503 chars, got %d", len(article.Content))
	}
	if !strings.HasSuffix(article.Content, "...") {
		t.Error("Expected truncation ellipsis")
	}
}

func TestFetch_HTTPErrorReturnsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(testConfig(), nil)
	article := fetcher.Fetch(context.Background(), server.URL+"/missing")

	if article.Title != "Fetch error" {
		t.Errorf("Expected sentinel title, got %q", article.Title)
	}
	if !strings.Contains(article.Content, "HTTP 404") {
		t.Errorf("Expected failure explanation, got %q", article.Content)
	}
	if article.URL != server.URL+"/missing" {
		t.Errorf("Expected original URL preserved, got %q", article.URL)
	}
}

func TestFetch_RobotsDisallowReturnsSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = fmt.Fprint(w, "User-agent: *\nDisallow: /private/\n")
			return
		}
		_, _ = fmt.Fprint(w, articleHTML)
	}))
	defer server.Close()

	fetcher := NewFetcher(testConfig(), nil)
	article := fetcher.Fetch(context.Background(), server.URL+"/private/post")

	if article.Title != "Fetch blocked" {
		t.Errorf("Expected robots sentinel, got %q", article.Title)
	}
}

func TestFetchAll_FormatsArticleBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = fmt.Fprint(w, articleHTML)
	}))
	defer server.Close()

	fetcher := NewFetcher(testConfig(), nil)
	text := fetcher.FetchAll(context.Background(), []string{server.URL + "/a", server.URL + "/b"})

	if !strings.Contains(text, "ARTICLE 1: Vendor ships a new model") {
		t.Error("Expected first article block")
	}
	if !strings.Contains(text, "ARTICLE 2:") {
		t.Error("Expected second article block")
	}
	if !strings.Contains(text, "URL: "+server.URL+"/a") {
		t.Error("Expected article URL line")
	}
}

func TestExtractArticle_FallsBackToBody(t *testing.T) {
	page := `<html><body>
<p>A page without any article container still has readable paragraphs.</p>
</body></html>`

	title, content := extractArticle(page, 0)
	if title != "" {
		t.Errorf("Expected empty title, got %q", title)
	}
	if !strings.Contains(content, "readable paragraphs") {
		t.Errorf("Expected body fallback extraction, got %q", content)
	}
}

func TestExtractArticle_PrefersContentClass(t *testing.T) {
	page := `<html><body>
<div class="sidebar"><p>Sidebar text that is long enough to pass the length cut.</p></div>
<div class="post-content"><p>The actual post body lives here and is long enough.</p></div>
</body></html>`

	_, content := extractArticle(page, 0)
	if !strings.Contains(content, "actual post body") {
		t.Errorf("Expected post-content container, got %q", content)
	}
	if strings.Contains(content, "Sidebar text") {
		t.Errorf("Expected sidebar excluded, got %q", content)
	}
}
