package detect

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ScriptSources extracts all external script source URLs from HTML.
func ScriptSources(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var sources []string
	doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		if src, ok := s.Attr("src"); ok && src != "" {
			sources = append(sources, src)
		}
	})
	return sources
}

// InlineScripts extracts the bodies of inline script elements from HTML.
func InlineScripts(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var scripts []string
	doc.Find("script").Each(func(_ int, s *goquery.Selection) {
		if _, hasSrc := s.Attr("src"); hasSrc {
			return
		}
		if body := s.Text(); body != "" {
			scripts = append(scripts, body)
		}
	})
	return scripts
}

// LinkHrefs extracts link element href URLs from HTML.
func LinkHrefs(html string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var hrefs []string
	doc.Find("link[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok && href != "" {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs
}
