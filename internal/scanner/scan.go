// Package scanner orchestrates full domain scans: fetch, optional browser
// rendering, detection, email harvesting, scoring, and outreach
// composition.
package scanner

import (
	"context"
	"log"
	"time"

	"github.com/closespark/stackscanner/internal/detect"
	"github.com/closespark/stackscanner/internal/emails"
	"github.com/closespark/stackscanner/internal/fetch"
	"github.com/closespark/stackscanner/internal/outreach"
	"github.com/closespark/stackscanner/internal/scoring"
)

// Options configures scan behavior.
type Options struct {
	Fetch *fetch.Options
	// MaxPages bounds the email crawl including the homepage.
	MaxPages int
	// CrawlEmails enables the email crawl on positive HubSpot scans.
	CrawlEmails bool
	// UseBrowser renders thin SPA shells in a headless browser before
	// detection. Requires Chrome on the host.
	UseBrowser bool
	// BrowserTimeout bounds a single page render.
	BrowserTimeout time.Duration
	// DefaultFrom is the persona address used for generated emails.
	DefaultFrom string
	// Concurrency bounds the batch worker pool.
	Concurrency int
	Verbose     bool
}

// DefaultOptions returns the scan defaults.
func DefaultOptions() Options {
	return Options{
		Fetch:          fetch.DefaultOptions(),
		MaxPages:       emails.DefaultMaxPages,
		CrawlEmails:    true,
		BrowserTimeout: 30 * time.Second,
		Concurrency:    4,
	}
}

// TechScanResult is the complete outcome of a multi-technology scan.
type TechScanResult struct {
	Domain             string                     `json:"domain"`
	Technologies       []string                   `json:"technologies"`
	ScoredTechnologies []scoring.ScoredTechnology `json:"scored_technologies"`
	TopTechnology      *scoring.ScoredTechnology  `json:"top_technology"`
	Emails             []string                   `json:"emails"`
	GeneratedEmail     *outreach.PersonaEmail     `json:"generated_email"`
	Error              string                     `json:"error,omitempty"`
}

// Scanner runs domain scans with injected collaborators.
type Scanner struct {
	hubspot   *detect.HubSpotDetector
	techs     *detect.TechDetector
	harvester *emails.Harvester
	composer  *outreach.Composer
	opts      Options
}

// New builds a scanner. harvester and composer may be nil when the caller
// only needs detection; nil collaborators disable the dependent stages.
func New(harvester *emails.Harvester, composer *outreach.Composer, opts Options) *Scanner {
	if opts.Fetch == nil {
		opts.Fetch = fetch.DefaultOptions()
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = emails.DefaultMaxPages
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	if opts.BrowserTimeout <= 0 {
		opts.BrowserTimeout = 30 * time.Second
	}
	return &Scanner{
		hubspot:   detect.NewHubSpotDetector(),
		techs:     detect.NewTechDetector(),
		harvester: harvester,
		composer:  composer,
		opts:      opts,
	}
}

// ScanDomain runs the HubSpot scan for one domain: fetch, detect across all
// signal passes, and crawl for emails on a positive detection. Fetch
// failures come back as a result value with the error field set.
func (s *Scanner) ScanDomain(ctx context.Context, domain string) *detect.DetectionResult {
	url := fetch.NormalizeDomain(domain)
	clean := fetch.CleanDomain(domain)

	page, err := fetch.Page(ctx, url, s.opts.Fetch)
	if err != nil {
		return &detect.DetectionResult{
			Domain:    clean,
			Signals:   []detect.Signal{},
			PortalIDs: []string{},
			Emails:    []string{},
			Error:     err.Error(),
		}
	}

	html := s.renderIfNeeded(ctx, url, page.HTML)
	result := s.hubspot.DetectPage(clean, html, fetch.HeaderMap(page.Headers))

	if result.HubSpotDetected && s.opts.CrawlEmails && s.harvester != nil {
		result.Emails = s.harvester.Crawl(ctx, url, clean, html, emails.CrawlOptions{
			MaxPages: s.opts.MaxPages,
			Fetch:    s.opts.Fetch,
		})
	}

	return result
}

// ScanTechnologies runs the generalized scan for one domain: fetch, detect
// the full registry, harvest emails, score, and optionally compose an
// outreach email from the default persona.
func (s *Scanner) ScanTechnologies(ctx context.Context, domain string, generateEmail bool) *TechScanResult {
	url := fetch.NormalizeDomain(domain)
	clean := fetch.CleanDomain(domain)

	result := &TechScanResult{
		Domain:             clean,
		Technologies:       []string{},
		ScoredTechnologies: []scoring.ScoredTechnology{},
		Emails:             []string{},
	}

	page, err := fetch.Page(ctx, url, s.opts.Fetch)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	html := s.renderIfNeeded(ctx, url, page.HTML)
	detection := s.techs.Detect(clean, html, fetch.HeaderMap(page.Headers))
	if len(detection.Technologies) == 0 {
		return result
	}
	result.Technologies = detection.Technologies

	if s.harvester != nil {
		result.Emails = s.harvester.Crawl(ctx, url, clean, html, emails.CrawlOptions{
			MaxPages: s.opts.MaxPages,
			Fetch:    s.opts.Fetch,
		})
	}

	result.ScoredTechnologies = scoring.ScoreTechnologies(detection.Technologies)
	if len(result.ScoredTechnologies) > 0 {
		top := result.ScoredTechnologies[0]
		result.TopTechnology = &top
	}

	if generateEmail && s.composer != nil {
		result.GeneratedEmail = s.composer.ComposeForTechnologies(
			clean, detection.Technologies, s.opts.DefaultFrom, nil)
	}

	return result
}

// renderIfNeeded swaps in browser-rendered HTML when the served document is
// too thin to fingerprint. Render failures fall back to the served HTML.
func (s *Scanner) renderIfNeeded(ctx context.Context, url, html string) string {
	if !s.opts.UseBrowser || !fetch.ShouldUseBrowser(html) {
		return html
	}
	rendered, err := fetch.WithBrowser(ctx, url, s.opts.BrowserTimeout, s.opts.Verbose)
	if err != nil {
		if s.opts.Verbose {
			log.Printf("[SCAN] browser render failed for %s: %v", url, err)
		}
		return html
	}
	return rendered
}
