package emails

import (
	"context"
	"net/url"
	"sort"
	"strings"

	"github.com/closespark/stackscanner/internal/fetch"
)

// DefaultMaxPages caps the crawl including the already-fetched homepage.
const DefaultMaxPages = 10

// ContactPaths are tried first during the crawl; these pages carry contact
// details far more often than arbitrary internal links.
var ContactPaths = []string{
	"/contact",
	"/contact-us",
	"/about",
	"/about-us",
	"/team",
	"/our-team",
	"/leadership",
	"/people",
	"/staff",
}

// CrawlOptions configures the bounded email crawl.
type CrawlOptions struct {
	MaxPages int
	Fetch    *fetch.Options
}

// Crawl walks same-host pages starting from an already-fetched homepage and
// collects filtered email addresses. Contact paths are visited before other
// internal links. The homepage counts as the first page; pages that fail to
// load, return non-200, or are not HTML are skipped silently and do not
// count against the budget. Returns the sorted union of accepted emails.
func (h *Harvester) Crawl(ctx context.Context, baseURL, domain, initialHTML string, opts CrawlOptions) []string {
	maxPages := opts.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	collected := make(map[string]struct{})
	for _, email := range h.ExtractEmails(initialHTML) {
		collected[email] = struct{}{}
	}

	visited := map[string]struct{}{baseURL: {}}

	// Contact paths lead the frontier, then the homepage's internal links.
	var frontier []string
	if base, err := url.Parse(baseURL); err == nil {
		for _, path := range ContactPaths {
			frontier = append(frontier, base.Scheme+"://"+base.Host+path)
		}
	}
	frontier = append(frontier, InternalLinks(initialHTML, baseURL, domain)...)

	pagesCrawled := 1
	for len(frontier) > 0 && pagesCrawled < maxPages {
		pageURL := frontier[0]
		frontier = frontier[1:]

		if _, ok := visited[pageURL]; ok {
			continue
		}
		visited[pageURL] = struct{}{}

		result, err := fetch.Page(ctx, pageURL, opts.Fetch)
		if err != nil || result.StatusCode != 200 {
			continue
		}
		if !strings.Contains(result.ContentType, "text/html") {
			continue
		}

		for _, email := range h.ExtractEmails(result.HTML) {
			collected[email] = struct{}{}
		}
		pagesCrawled++
	}

	emails := make([]string, 0, len(collected))
	for email := range collected {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}
