// Package detect implements technology fingerprinting over fetched page
// content: a weighted single-technology detector for HubSpot and a
// boolean multi-technology detector driven by the pattern registry.
package detect

import (
	"regexp"
	"sort"
	"strings"
)

// Detection scoring bounds. A page is considered positive when the summed
// signal weights reach DetectionThreshold; the sum is clamped at
// MaxConfidence.
const (
	DetectionThreshold = 20
	MaxConfidence      = 100
)

// Signal is one matched fingerprint contributing to the confidence score.
type Signal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Weight      int    `json:"weight"`
	PortalID    string `json:"portal_id,omitempty"`
}

// DetectionResult is the outcome of scanning one domain for HubSpot.
type DetectionResult struct {
	Domain          string   `json:"domain"`
	HubSpotDetected bool     `json:"hubspot_detected"`
	ConfidenceScore int      `json:"confidence_score"`
	Signals         []Signal `json:"hubspot_signals"`
	PortalIDs       []string `json:"portal_ids"`
	Emails          []string `json:"emails"`
	Error           string   `json:"error,omitempty"`
}

// Recalculate recomputes the confidence score and detection flag from the
// current signal list. Call after appending signals from a later pass.
func (r *DetectionResult) Recalculate() {
	total := 0
	for _, s := range r.Signals {
		total += s.Weight
	}
	if total > MaxConfidence {
		total = MaxConfidence
	}
	r.ConfidenceScore = total
	r.HubSpotDetected = total >= DetectionThreshold
}

type signalPattern struct {
	name        string
	pattern     string
	weight      int
	description string
}

// Tracking and script-loader fingerprints.
var hubspotScriptPatterns = []signalPattern{
	{"hs-script-loader", `js\.hs-scripts\.com/(\d+)\.js`, 30, "HubSpot tracking script loader"},
	{"hs-analytics", `js\.hs-analytics\.net`, 25, "HubSpot analytics script"},
	{"hubspot-tracking", `track\.hubspot\.com`, 25, "HubSpot tracking endpoint"},
	{"hs-banner", `js\.hs-banner\.com`, 20, "HubSpot cookie banner"},
	{"hs-feedback", `js\.usemessages\.com/conversations-embed\.js`, 20, "HubSpot conversations/chat widget"},
	{"hubspot-forms", `js\.hsforms\.net`, 25, "HubSpot forms library"},
	{"hubspot-forms-v2", `js\.hscollectedforms\.net`, 20, "HubSpot collected forms"},
	{"hubspot-cta", `js\.hscta\.net`, 20, "HubSpot CTA (Call-to-Action)"},
}

// Content Optimization System markup fingerprints.
var hubspotCOSPatterns = []signalPattern{
	{"cos-assets", `cdn2?\.hubspot\.net`, 20, "HubSpot CDN assets"},
	{"hubfs-assets", `/hubfs/`, 15, "HubSpot File System assets"},
	{"hs-cos-wrapper", `hs-cos-wrapper`, 25, "HubSpot COS wrapper class"},
	{"hs-menu", `hs-menu-wrapper`, 20, "HubSpot menu wrapper"},
	{"hs-blog", `hs-blog-post`, 15, "HubSpot blog post class"},
}

// Meta tag and embedded-markup fingerprints.
var hubspotMetaPatterns = []signalPattern{
	{"generator-hubspot", `<meta[^>]*name=["']generator["'][^>]*content=["'][^"']*hubspot[^"']*["']`, 30, "HubSpot generator meta tag"},
	{"hs-portal-id", `data-hsjs-portal\s*=\s*["']?(\d+)`, 25, "HubSpot portal ID in data attribute"},
	{"hbspt-portal", `hbspt\.forms\.create\([^)]*portalId["\s:]+["']?(\d+)`, 25, "HubSpot form with portal ID"},
	{"hs-cta-wrapper", `hs-cta-wrapper`, 20, "HubSpot CTA wrapper element"},
	{"async-hubspot-comment", `<!--\s*Start of Async HubSpot`, 30, "HubSpot async script HTML comment"},
	{"hs-cookie-banner", `id\s*=\s*["']?hs-eu-cookie-confirmation["']?`, 20, "HubSpot cookie policy banner element"},
}

// API endpoint fingerprints.
var hubspotAPIPatterns = []signalPattern{
	{"api-hubspot", `api\.hubspot\.com`, 25, "HubSpot API endpoint"},
	{"forms-api", `forms\.hubspot\.com`, 25, "HubSpot forms API"},
	{"hubspot-embed", `app\.hubspot\.com/embed`, 20, "HubSpot embedded content"},
}

// Portal ID extraction patterns; each has exactly one capture group.
var portalIDPatterns = []string{
	`js\.hs-scripts\.com/(\d+)\.js`,
	`data-hsjs-portal\s*=\s*["']?(\d+)`,
	`portalId["\s:]+["']?(\d+)`,
	`js\.hs-analytics\.net/analytics/\d+/(\d+)\.js`,
	`/hubfs/(\d+)/`,
	`hsFormContainerPortal\s*=\s*(\d+)`,
}

// Substring markers matched against external script/link URLs.
type sourceMarker struct {
	marker      string
	weight      int
	description string
}

var hubspotSourceMarkers = []sourceMarker{
	{"hubspot.net", 15, "External HubSpot CDN resource"},
	{"hubspot.com", 15, "External HubSpot resource"},
	{"hs-scripts.com", 25, "HubSpot script loader"},
	{"hsforms.net", 20, "HubSpot forms"},
	{"hscta.net", 15, "HubSpot CTA"},
}

// Initialization patterns matched inside inline script bodies.
var hubspotInlinePatterns = []signalPattern{
	{"inline-hubspot-tracking-queue", `_hsq\s*=\s*`, 20, "HubSpot tracking queue"},
	{"inline-hubspot-javascript-object", `hbspt\.`, 20, "HubSpot JavaScript object"},
	{"inline-hubspot-conversations", `HubSpotConversations`, 15, "HubSpot conversations"},
	{"inline-hubspot-cta-trigger", `hs-cta-trigger`, 15, "HubSpot CTA trigger"},
}

// Response-header fingerprints. An empty valuePattern means header presence
// alone is a signal.
type headerSignal struct {
	header       string
	weight       int
	description  string
	valuePattern string
}

var hubspotHeaderSignals = []headerSignal{
	{"x-hs-cache-config", 20, "HubSpot cache configuration header", ""},
	{"x-hs-content-id", 25, "HubSpot content ID header", ""},
	{"x-hs-hub-id", 30, "HubSpot hub/portal ID header", ""},
	{"x-powered-by", 30, "HubSpot powered-by header", `hubspot`},
}

type compiledSignal struct {
	signalPattern
	re *regexp.Regexp
}

// HubSpotDetector matches weighted HubSpot fingerprints in page content,
// response headers, external resource URLs, and inline scripts.
type HubSpotDetector struct {
	patterns     []compiledSignal
	portalIDs    []*regexp.Regexp
	inline       []compiledSignal
	headerValues map[string]*regexp.Regexp
}

// NewHubSpotDetector compiles the fingerprint tables into a ready detector.
func NewHubSpotDetector() *HubSpotDetector {
	d := &HubSpotDetector{
		headerValues: make(map[string]*regexp.Regexp),
	}

	for _, group := range [][]signalPattern{
		hubspotScriptPatterns,
		hubspotCOSPatterns,
		hubspotMetaPatterns,
		hubspotAPIPatterns,
	} {
		for _, p := range group {
			d.patterns = append(d.patterns, compiledSignal{p, compileInsensitive(p.pattern)})
		}
	}

	for _, p := range portalIDPatterns {
		d.portalIDs = append(d.portalIDs, compileInsensitive(p))
	}

	for _, p := range hubspotInlinePatterns {
		d.inline = append(d.inline, compiledSignal{p, compileInsensitive(p.pattern)})
	}

	for _, h := range hubspotHeaderSignals {
		if h.valuePattern != "" {
			d.headerValues[h.header] = compileInsensitive(h.valuePattern)
		}
	}

	return d
}

func compileInsensitive(pattern string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + pattern)
}

// Detect matches the fingerprint tables against page HTML and returns a
// result with signals, extracted portal IDs, and the derived confidence.
func (d *HubSpotDetector) Detect(domain, html string) *DetectionResult {
	result := &DetectionResult{
		Domain:    domain,
		Signals:   []Signal{},
		PortalIDs: []string{},
		Emails:    []string{},
	}

	portalIDs := make(map[string]struct{})

	for _, p := range d.patterns {
		match := p.re.FindStringSubmatch(html)
		if match == nil {
			continue
		}
		signal := Signal{
			Name:        p.name,
			Description: p.description,
			Weight:      p.weight,
		}
		if len(match) > 1 && isDigits(match[1]) {
			signal.PortalID = match[1]
			portalIDs[match[1]] = struct{}{}
		}
		result.Signals = append(result.Signals, signal)
	}

	for _, re := range d.portalIDs {
		for _, match := range re.FindAllStringSubmatch(html, -1) {
			if len(match) > 1 && match[1] != "" {
				portalIDs[match[1]] = struct{}{}
			}
		}
	}

	for id := range portalIDs {
		result.PortalIDs = append(result.PortalIDs, id)
	}
	sort.Strings(result.PortalIDs)

	result.Recalculate()
	return result
}

// HeaderSignals matches the header fingerprint table against response
// headers. Header names are compared case-insensitively.
func (d *HubSpotDetector) HeaderSignals(headers map[string]string) []Signal {
	var signals []Signal

	for _, h := range hubspotHeaderSignals {
		value, found := "", false
		for name, v := range headers {
			if strings.EqualFold(name, h.header) {
				value, found = v, true
				break
			}
		}
		if !found {
			continue
		}
		if re, ok := d.headerValues[h.header]; ok && !re.MatchString(value) {
			continue
		}
		signals = append(signals, Signal{
			Name:        "header-" + h.header,
			Description: h.description,
			Weight:      h.weight,
		})
	}

	return signals
}

// DetectPage runs the full detection pass over a fetched page: HTML
// fingerprints, response headers, external script/link resource URLs, and
// inline script bodies, then recomputes the final confidence.
func (d *HubSpotDetector) DetectPage(domain, html string, headers map[string]string) *DetectionResult {
	result := d.Detect(domain, html)

	result.Signals = append(result.Signals, d.HeaderSignals(headers)...)

	sources := append(ScriptSources(html), LinkHrefs(html)...)
	for _, source := range sources {
		lower := strings.ToLower(source)
		for _, m := range hubspotSourceMarkers {
			if !strings.Contains(lower, m.marker) {
				continue
			}
			name := "external-" + m.marker
			if hasSignal(result.Signals, name) {
				continue
			}
			result.Signals = append(result.Signals, Signal{
				Name:        name,
				Description: m.description,
				Weight:      m.weight,
			})
		}
	}

	inlineContent := strings.Join(InlineScripts(html), " ")
	for _, p := range d.inline {
		if !p.re.MatchString(inlineContent) {
			continue
		}
		if hasSignal(result.Signals, p.name) {
			continue
		}
		result.Signals = append(result.Signals, Signal{
			Name:        p.name,
			Description: p.description,
			Weight:      p.weight,
		})
	}

	result.Recalculate()
	return result
}

func hasSignal(signals []Signal, name string) bool {
	for _, s := range signals {
		if s.Name == name {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
