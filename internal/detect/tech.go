package detect

import (
	"regexp"
	"sort"
	"strings"
)

// TechDetail describes one detected technology with the diagnostics that
// triggered it.
type TechDetail struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Score           int      `json:"score"`
	MatchedPatterns []string `json:"matched_patterns"`
}

// TechDetectionResult is the outcome of a multi-technology scan.
type TechDetectionResult struct {
	Domain       string       `json:"domain"`
	Technologies []string     `json:"technologies"`
	TechDetails  []TechDetail `json:"tech_details"`
	Error        string       `json:"error,omitempty"`
}

type compiledRule struct {
	rule           TechnologyRule
	scripts        []*regexp.Regexp
	html           []*regexp.Regexp
	jsVars         []*regexp.Regexp
	headerPrefixes []string
	headerRes      []*regexp.Regexp
}

// TechDetector matches the full technology registry against page content
// and response headers. Each rule matches as a boolean; results follow
// registry definition order.
type TechDetector struct {
	rules []compiledRule
}

// NewTechDetector compiles the registry into a ready detector.
func NewTechDetector() *TechDetector {
	d := &TechDetector{}
	for _, rule := range Registry() {
		c := compiledRule{rule: rule}
		for _, p := range rule.ScriptPatterns {
			c.scripts = append(c.scripts, compileInsensitive(p))
		}
		for _, p := range rule.HTMLPatterns {
			c.html = append(c.html, compileInsensitive(p))
		}
		for _, p := range rule.JSVarPatterns {
			c.jsVars = append(c.jsVars, compileInsensitive(p))
		}
		// Sort header prefixes so diagnostics come out in a stable order.
		for prefix := range rule.HeaderPatterns {
			c.headerPrefixes = append(c.headerPrefixes, prefix)
		}
		sort.Strings(c.headerPrefixes)
		for _, prefix := range c.headerPrefixes {
			c.headerRes = append(c.headerRes, compileInsensitive(rule.HeaderPatterns[prefix]))
		}
		d.rules = append(d.rules, c)
	}
	return d
}

// Detect matches every registry rule against the page HTML and response
// headers. A rule counts as detected when any of its patterns matches; all
// matching patterns are recorded as diagnostics.
func (d *TechDetector) Detect(domain, html string, headers map[string]string) *TechDetectionResult {
	result := &TechDetectionResult{
		Domain:       domain,
		Technologies: []string{},
		TechDetails:  []TechDetail{},
	}

	headersLower := make(map[string]string, len(headers))
	for name, value := range headers {
		headersLower[strings.ToLower(name)] = value
	}

	for _, c := range d.rules {
		var matched []string

		for i, re := range c.scripts {
			if re.MatchString(html) {
				matched = append(matched, "script: "+c.rule.ScriptPatterns[i])
			}
		}
		for i, re := range c.html {
			if re.MatchString(html) {
				matched = append(matched, "html: "+c.rule.HTMLPatterns[i])
			}
		}
		for i, re := range c.jsVars {
			if re.MatchString(html) {
				matched = append(matched, "js: "+c.rule.JSVarPatterns[i])
			}
		}
		for i, prefix := range c.headerPrefixes {
			re := c.headerRes[i]
			for name, value := range headersLower {
				if strings.HasPrefix(name, strings.ToLower(prefix)) && re.MatchString(value) {
					matched = append(matched, "header: "+prefix)
					break
				}
			}
		}

		if len(matched) == 0 {
			continue
		}
		result.Technologies = append(result.Technologies, c.rule.Name)
		result.TechDetails = append(result.TechDetails, TechDetail{
			Name:            c.rule.Name,
			Category:        c.rule.Category,
			Score:           c.rule.Score,
			MatchedPatterns: matched,
		})
	}

	return result
}
