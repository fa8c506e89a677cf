// Package html provides a generic web page capturer.
// It fetches a URL and extracts the readable text for the AI pipeline.
package html

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
)

// Ensure Capturer implements the interface.
var _ driven.Capturer = (*Capturer)(nil)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// maxBodyBytes bounds how much of a response is read. Pages larger
	// than this are truncated, not rejected.
	maxBodyBytes = 4 << 20

	userAgent = "clipfold/1.0 (+https://github.com/clipfold-labs/clipfold-cli)"
)

// Capturer fetches any http(s) URL and strips it down to readable text.
// It is the fallback capturer: Supports accepts every http(s) link, so it
// must be registered last.
type Capturer struct {
	client *http.Client
}

// New creates a generic HTML capturer. A zero timeout uses DefaultTimeout.
func New(timeout time.Duration) *Capturer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Capturer{
		client: &http.Client{Timeout: timeout},
	}
}

// Supports accepts any http or https URL.
func (c *Capturer) Supports(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Fetch downloads the page and extracts its title and readable text.
func (c *Capturer) Fetch(ctx context.Context, rawURL string) (*domain.CapturedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching page: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading page: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	finalURL := rawURL
	site := ""
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
		site = resp.Request.URL.Host
	}

	page := &domain.CapturedPage{
		URL:   finalURL,
		Title: extractTitle(doc),
		Text:  extractText(doc),
		Site:  site,
	}

	if strings.TrimSpace(page.Text) == "" {
		return nil, fmt.Errorf("%w: page has no readable text", domain.ErrInvalidInput)
	}
	return page, nil
}

// skippedElements are removed entirely, including their text.
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"head":     true,
	"svg":      true,
	"template": true,
	"iframe":   true,
}

// blockElements get a newline after their text so headings and paragraphs
// stay on separate lines.
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "hr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"li": true, "tr": true, "blockquote": true, "pre": true,
	"table": true, "section": true, "article": true,
}

// extractTitle finds the first <title> element.
func extractTitle(doc *html.Node) string {
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			var sb strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					sb.WriteString(c.Data)
				}
			}
			title = strings.TrimSpace(sb.String())
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}

// extractText walks the DOM collecting text nodes, skipping non-content
// elements and inserting newlines at block boundaries.
func extractText(doc *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && skippedElements[n.Data] {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			sb.WriteString("\n")
		}
	}
	walk(doc)

	return tidyText(sb.String())
}

// tidyText collapses runs of spaces within lines and blank lines between
// them, preserving the block structure extractText created.
func tidyText(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	// Drop a trailing blank line.
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}
