package emails

import (
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// Generic local parts excluded from harvested emails; outreach needs a
// person, not a mailbox.
var genericLocalParts = map[string]struct{}{
	"info":       {},
	"support":    {},
	"admin":      {},
	"hello":      {},
	"sales":      {},
	"contact":    {},
	"help":       {},
	"noreply":    {},
	"no-reply":   {},
	"webmaster":  {},
	"postmaster": {},
	"mail":       {},
	"email":      {},
	"enquiries":  {},
	"enquiry":    {},
	"office":     {},
	"team":       {},
	"general":    {},
}

// Placeholder domains that only ever appear in sample markup.
var invalidDomains = map[string]struct{}{
	"example.com": {},
	"example.org": {},
	"test.com":    {},
	"domain.com":  {},
}

// File extensions the regex captures from asset paths like logo@2x.png.
var fileExtensionSuffixes = []string{".png", ".jpg", ".gif", ".svg", ".css", ".js"}

// Harvester extracts and filters email addresses using an injected
// disposable-domain blocklist.
type Harvester struct {
	blocklist *Blocklist
}

// NewHarvester builds a harvester. A nil blocklist blocks nothing.
func NewHarvester(blocklist *Blocklist) *Harvester {
	if blocklist == nil {
		blocklist = EmptyBlocklist()
	}
	return &Harvester{blocklist: blocklist}
}

// IsGenericEmail reports whether the email's local part is a generic
// mailbox name.
func IsGenericEmail(email string) bool {
	local := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	_, generic := genericLocalParts[local]
	return generic
}

// IsValidEmail applies all harvest filters: local@domain shape, generic
// local part, disposable-domain blocklist, placeholder domains, and
// file-extension captures.
func (h *Harvester) IsValidEmail(email string) bool {
	lower := strings.ToLower(email)

	// mailto: hrefs can carry anything; require a local@domain shape before
	// the content filters run.
	parts := strings.Split(lower, "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return false
	}
	domain := parts[1]

	if IsGenericEmail(lower) {
		return false
	}
	if h.blocklist.Blocks(lower) {
		return false
	}

	if _, invalid := invalidDomains[domain]; invalid {
		return false
	}
	for _, ext := range fileExtensionSuffixes {
		if strings.HasSuffix(domain, ext) {
			return false
		}
	}

	return true
}

// ExtractEmails pulls candidate addresses from page text and mailto links,
// filters them, and returns the surviving set lowercased and sorted.
// Uniqueness is case-insensitive.
func (h *Harvester) ExtractEmails(html string) []string {
	found := emailPattern.FindAllString(html, -1)

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			if !strings.HasPrefix(href, "mailto:") {
				return
			}
			email := strings.TrimPrefix(href, "mailto:")
			email = strings.TrimSpace(strings.SplitN(email, "?", 2)[0])
			if email != "" {
				found = append(found, email)
			}
		})
	}

	accepted := make(map[string]struct{})
	for _, email := range found {
		lower := strings.ToLower(email)
		if !h.IsValidEmail(lower) {
			continue
		}
		accepted[lower] = struct{}{}
	}

	emails := make([]string, 0, len(accepted))
	for email := range accepted {
		emails = append(emails, email)
	}
	sort.Strings(emails)
	return emails
}

// InternalLinks extracts same-host page links from HTML, resolving
// relative hrefs against baseURL. Anchor, javascript, mailto, and tel
// links are skipped; results are normalized to scheme://host/path.
func InternalLinks(html, baseURL, domain string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" ||
			strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "javascript:") ||
			strings.HasPrefix(href, "mailto:") ||
			strings.HasPrefix(href, "tel:") {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Host != base.Host && resolved.Host != domain {
			return
		}
		normalized := resolved.Scheme + "://" + resolved.Host + resolved.Path
		seen[normalized] = struct{}{}
	})

	links := make([]string, 0, len(seen))
	for link := range seen {
		links = append(links, link)
	}
	sort.Strings(links)
	return links
}
