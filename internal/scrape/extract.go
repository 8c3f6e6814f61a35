package scrape

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	controlRe    = regexp.MustCompile("[\x00-\x1f\x7f]")
)

// Elements whose subtrees are chrome, not article text.
var skipElements = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"footer": true,
	"header": true,
	"aside":  true,
	"form":   true,
}

// Class names that commonly wrap the main article body.
var contentClasses = []string{
	"post-content",
	"article-content",
	"entry-content",
	"content-body",
	"blog-post",
	"post-body",
}

// extractArticle pulls a title and readable body text out of raw HTML.
// It prefers semantic article containers and falls back to the whole body.
func extractArticle(rawHTML string, maxChars int) (title, content string) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", ""
	}

	if h1 := findElement(doc, "h1"); h1 != nil {
		title = cleanText(nodeText(h1))
	}
	if title == "" {
		if t := findElement(doc, "title"); t != nil {
			title = cleanText(nodeText(t))
		}
	}

	container := findContainer(doc)
	if container == nil {
		container = findElement(doc, "body")
	}
	if container == nil {
		return title, ""
	}

	var parts []string
	collectParagraphs(container, &parts)
	content = strings.Join(parts, "\n\n")

	if maxChars > 0 && len(content) > maxChars {
		content = content[:maxChars] + "..."
	}

	return title, content
}

// findContainer locates the most likely article body element.
func findContainer(doc *html.Node) *html.Node {
	if n := findElement(doc, "article"); n != nil {
		return n
	}
	if n := findByAttr(doc, "role", "main"); n != nil {
		return n
	}
	for _, class := range contentClasses {
		if n := findByClass(doc, class); n != nil {
			return n
		}
	}
	return findElement(doc, "main")
}

// collectParagraphs gathers text from paragraph-like elements, skipping
// chrome subtrees and fragments too short to be prose.
func collectParagraphs(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode {
		if skipElements[n.Data] {
			return
		}
		switch n.Data {
		case "p", "h2", "h3", "li":
			text := cleanText(nodeText(n))
			if len(text) > 30 {
				*parts = append(*parts, text)
			}
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectParagraphs(c, parts)
	}
}

func findElement(n *html.Node, name string) *html.Node {
	if n.Type == html.ElementNode && n.Data == name {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, name); found != nil {
			return found
		}
	}
	return nil
}

func findByAttr(n *html.Node, key, value string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key == key && attr.Val == value {
				return n
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByAttr(c, key, value); found != nil {
			return found
		}
	}
	return nil
}

func findByClass(n *html.Node, class string) *html.Node {
	if n.Type == html.ElementNode {
		for _, attr := range n.Attr {
			if attr.Key != "class" {
				continue
			}
			for _, c := range strings.Fields(attr.Val) {
				if c == class {
					return n
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findByClass(c, class); found != nil {
			return found
		}
	}
	return nil
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type == html.ElementNode && skipElements[n.Data] {
		return ""
	}

	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(nodeText(c))
	}
	return b.String()
}

func cleanText(s string) string {
	s = controlRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
