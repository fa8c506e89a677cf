// Package github provides a capturer for GitHub issue and pull request links.
// It reads the discussion through the GitHub API instead of scraping HTML.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/clipfold-labs/clipfold-cli/internal/core/domain"
	"github.com/clipfold-labs/clipfold-cli/internal/core/ports/driven"
)

// Ensure Capturer implements the interface.
var _ driven.Capturer = (*Capturer)(nil)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// maxComments bounds how much discussion is pulled into the capture.
	maxComments = 20
)

// Capturer fetches GitHub issues and pull requests through the API.
// A token raises the rate limit and grants access to private repositories;
// without one, public content is fetched unauthenticated.
type Capturer struct {
	gh *gh.Client
}

// New creates a GitHub capturer. token may be empty.
func New(ctx context.Context, token string) *Capturer {
	if token == "" {
		return &Capturer{gh: gh.NewClient(nil)}
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout
	return &Capturer{gh: gh.NewClient(tc)}
}

// ref is a parsed issue or pull request reference.
type ref struct {
	owner  string
	repo   string
	number int
}

// parseRef extracts owner/repo/number from a github.com issue or PR URL.
func parseRef(rawURL string) (*ref, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, false
	}
	if u.Host != "github.com" && u.Host != "www.github.com" {
		return nil, false
	}

	// Expected: /{owner}/{repo}/issues/{n} or /{owner}/{repo}/pull/{n}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 4 {
		return nil, false
	}
	if parts[2] != "issues" && parts[2] != "pull" {
		return nil, false
	}

	number, err := strconv.Atoi(parts[3])
	if err != nil || number <= 0 {
		return nil, false
	}

	return &ref{owner: parts[0], repo: parts[1], number: number}, true
}

// Supports reports whether the URL is a GitHub issue or pull request.
func (c *Capturer) Supports(rawURL string) bool {
	_, ok := parseRef(rawURL)
	return ok
}

// Fetch reads the issue or PR and its discussion through the API.
func (c *Capturer) Fetch(ctx context.Context, rawURL string) (*domain.CapturedPage, error) {
	r, ok := parseRef(rawURL)
	if !ok {
		return nil, fmt.Errorf("%w: not a GitHub issue or pull request URL", domain.ErrUnsupportedType)
	}

	// The issues API covers pull requests too for title and body.
	issue, _, err := c.gh.Issues.Get(ctx, r.owner, r.repo, r.number)
	if err != nil {
		return nil, fmt.Errorf("fetching %s/%s#%d: %w", r.owner, r.repo, r.number, err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s/%s#%d: %s\n", r.owner, r.repo, r.number, issue.GetTitle())
	if user := issue.GetUser().GetLogin(); user != "" {
		fmt.Fprintf(&sb, "Opened by %s, state %s\n", user, issue.GetState())
	}
	if body := strings.TrimSpace(issue.GetBody()); body != "" {
		sb.WriteString("\n")
		sb.WriteString(body)
		sb.WriteString("\n")
	}

	if issue.GetComments() > 0 {
		comments, _, err := c.gh.Issues.ListComments(ctx, r.owner, r.repo, r.number, &gh.IssueListCommentsOptions{
			ListOptions: gh.ListOptions{PerPage: maxComments},
		})
		if err != nil {
			return nil, fmt.Errorf("fetching comments for %s/%s#%d: %w", r.owner, r.repo, r.number, err)
		}
		for _, comment := range comments {
			body := strings.TrimSpace(comment.GetBody())
			if body == "" {
				continue
			}
			fmt.Fprintf(&sb, "\n%s commented:\n%s\n", comment.GetUser().GetLogin(), body)
		}
	}

	return &domain.CapturedPage{
		URL:   issue.GetHTMLURL(),
		Title: issue.GetTitle(),
		Text:  sb.String(),
		Site:  "github.com",
	}, nil
}
