// Package scoring ranks detected technologies by outreach value and
// attaches the narrative used when composing emails.
package scoring

import "sort"

// DefaultScore is used for technologies not in the score table.
const DefaultScore = 1

// DefaultCategory is used for technologies not in the category table.
const DefaultCategory = "Technology"

// ScoredTechnology is a detected technology with its ranking details.
type ScoredTechnology struct {
	Name          string `json:"name"`
	Score         int    `json:"score"`
	Category      string `json:"category"`
	RecentProject string `json:"recent_project"`
}

// Value scores by technology; higher means more valuable or specialized.
var techScores = map[string]int{
	// Enterprise / high-value
	"Salesforce": 5,
	"Marketo":    5,
	"HubSpot":    5,
	"Segment":    5,
	"Magento":    5,
	"Pardot":     5,
	"Optimizely": 5,
	// Ecommerce + payments + advanced
	"Shopify":     4,
	"BigCommerce": 4,
	"Stripe":      4,
	"PayPal":      4,
	"Braintree":   4,
	"Klaviyo":     4,
	"Mixpanel":    4,
	"Amplitude":   4,
	"VWO":         4,
	"Square":      4,
	// Mainstream CMS + marketing
	"WordPress":      3,
	"WooCommerce":    3,
	"Mailchimp":      3,
	"SendGrid":       3,
	"ActiveCampaign": 3,
	"Intercom":       3,
	"Drift":          3,
	"Zendesk Chat":   3,
	"Freshchat":      3,
	"Zoho":           3,
	"Pipedrive":      3,
	"Webflow":        3,
	// Infrastructure
	"AWS":        2,
	"Vercel":     2,
	"Netlify":    2,
	"Cloudflare": 2,
	"nginx":      2,
	"Apache":     2,
	// Basic analytics
	"Google Analytics": 1,
	"GA4":              1,
	"Google Optimize":  1,
	"Heap":             1,
	"Hotjar":           1,
}

var techCategories = map[string]string{
	"Shopify":          "Ecommerce",
	"WooCommerce":      "Ecommerce",
	"Magento":          "Ecommerce",
	"BigCommerce":      "Ecommerce",
	"Stripe":           "Payment Processor",
	"PayPal":           "Payment Processor",
	"Square":           "Payment Processor",
	"Braintree":        "Payment Processor",
	"Klaviyo":          "Email Marketing",
	"Mailchimp":        "Email Marketing",
	"SendGrid":         "Email Marketing",
	"Marketo":          "Marketing Automation",
	"Pardot":           "Marketing Automation",
	"ActiveCampaign":   "Marketing Automation",
	"HubSpot":          "Marketing Automation",
	"Salesforce":       "CRM",
	"Zoho":             "CRM",
	"Pipedrive":        "CRM",
	"Intercom":         "Live Chat",
	"Drift":            "Live Chat",
	"Zendesk Chat":     "Live Chat",
	"Freshchat":        "Live Chat",
	"Google Analytics": "Analytics",
	"GA4":              "Analytics",
	"Mixpanel":         "Analytics",
	"Amplitude":        "Analytics",
	"Heap":             "Analytics",
	"Hotjar":           "Analytics",
	"Optimizely":       "A/B Testing",
	"VWO":              "A/B Testing",
	"Google Optimize":  "A/B Testing",
	"WordPress":        "CMS",
	"Webflow":          "CMS",
	"Segment":          "Customer Data Platform",
	"AWS":              "Infrastructure",
	"Vercel":           "Infrastructure",
	"Netlify":          "Infrastructure",
	"Cloudflare":       "Infrastructure",
	"nginx":            "Web Server",
	"Apache":           "Web Server",
}

const defaultRecentProject = "just wrapped up a project fixing broken automation and tracking across a multi-tool stack."

// Recent-project narratives referenced in outreach email bodies.
var recentProjects = map[string]string{
	"Shopify":          "rebuilt a Shopify checkout flow and fixed server-side tracking for Stripe + Klaviyo events.",
	"WooCommerce":      "cleaned up plugin conflicts and repaired broken purchase tracking.",
	"Magento":          "consolidated customer data into unified workflows and improved site speed.",
	"BigCommerce":      "optimized product feeds and automated behavior-triggered email flows.",
	"Stripe":           "cleaned up webhook failures and rebuilt subscription renewal logic.",
	"PayPal":           "fixed PayPal order confirmation discrepancies hitting CRM + analytics.",
	"Square":           "set up Square→CRM syncing and automated follow-ups.",
	"Braintree":        "debugged Braintree failures and unified checkout data.",
	"Klaviyo":          "added behavior-based flows and repaired missing ecommerce event tracking.",
	"Mailchimp":        "updated automation triggers and cleaned up subscriber data.",
	"SendGrid":         "fixed deliverability issues tied to DNS/SPF/DMARC misconfigurations.",
	"Marketo":          "rebuilt lead scoring and lifecycle automation tied to CRM signals.",
	"Pardot":           "repaired Salesforce sync and rebuilt MQL handoff logic.",
	"ActiveCampaign":   "built multi-step automations connecting forms, CRM, and tags.",
	"HubSpot":          "fixed broken workflows and rebuilt lead routing tied to form submissions.",
	"Salesforce":       "cleaned up workflow loops and rebuilt opportunity automation.",
	"Zoho":             "implemented workflow rules and API syncing for web leads.",
	"Pipedrive":        "automated follow-up logic and lead enrichment.",
	"Intercom":         "restructured chat routing and built automated follow-ups.",
	"Drift":            "built qualification playbooks and CRM routing.",
	"Zendesk Chat":     "set up routing rules and automated ticket creation.",
	"Freshchat":        "configured chat flows and CRM integration.",
	"Google Analytics": "fixed event tracking and implemented server-side tagging.",
	"GA4":              "migrated tracking from UA to GA4 and set up custom events.",
	"Mixpanel":         "built funnels + retention dashboards tied to automation triggers.",
	"Amplitude":        "instrumented product events and drop-off alerts.",
	"Heap":             "aligned autocapture events with CRM data.",
	"Hotjar":           "set up heatmaps and connected insights to UX improvements.",
	"Optimizely":       "built experiments and connected results to analytics.",
	"VWO":              "set up A/B tests and personalization campaigns.",
	"Google Optimize":  "configured experiments and goal tracking.",
	"WordPress":        "removed plugin bloat and fixed broken form tracking.",
	"Webflow":          "fixed Webflow form → CRM automations and improved performance.",
	"Segment":          "cleaned up event taxonomy and unified customer data across tools.",
	"AWS":              "created Lambda automations and fixed caching issues.",
	"Vercel":           "set up optimized builds and environment-based deployments.",
	"Netlify":          "connected form events to CRM + automated builds.",
	"Cloudflare":       "optimized caching rules and set up page rules.",
}

// Score looks up one technology's ranking details, falling back to the
// defaults for unknown names.
func Score(tech string) ScoredTechnology {
	score, ok := techScores[tech]
	if !ok {
		score = DefaultScore
	}
	category, ok := techCategories[tech]
	if !ok {
		category = DefaultCategory
	}
	project, ok := recentProjects[tech]
	if !ok {
		project = defaultRecentProject
	}
	return ScoredTechnology{
		Name:          tech,
		Score:         score,
		Category:      category,
		RecentProject: project,
	}
}

// ScoreTechnologies scores each technology and sorts by score descending.
// The sort is stable, so equal scores keep their input order.
func ScoreTechnologies(technologies []string) []ScoredTechnology {
	scored := make([]ScoredTechnology, 0, len(technologies))
	for _, tech := range technologies {
		scored = append(scored, Score(tech))
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}

// HighestValue returns the top-scoring technology, or nil for an empty list.
func HighestValue(technologies []string) *ScoredTechnology {
	scored := ScoreTechnologies(technologies)
	if len(scored) == 0 {
		return nil
	}
	return &scored[0]
}
