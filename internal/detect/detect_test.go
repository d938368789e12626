package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectNoSignals(t *testing.T) {
	d := NewHubSpotDetector()

	result := d.Detect("plain.example", `<html><head><title>Hi</title></head><body><p>Nothing here</p></body></html>`)

	assert.False(t, result.HubSpotDetected)
	assert.Equal(t, 0, result.ConfidenceScore)
	assert.Empty(t, result.Signals)
	assert.Empty(t, result.PortalIDs)
}

func TestDetectScriptLoaderWithPortalID(t *testing.T) {
	d := NewHubSpotDetector()
	html := `<html><head><script src="https://js.hs-scripts.com/12345.js"></script></head></html>`

	result := d.Detect("acme.com", html)

	require.Len(t, result.Signals, 1)
	assert.Equal(t, "hs-script-loader", result.Signals[0].Name)
	assert.Equal(t, 30, result.Signals[0].Weight)
	assert.Equal(t, "12345", result.Signals[0].PortalID)
	assert.Equal(t, []string{"12345"}, result.PortalIDs)
	assert.Equal(t, 30, result.ConfidenceScore)
	assert.True(t, result.HubSpotDetected)
}

func TestDetectConfidenceClampedAt100(t *testing.T) {
	d := NewHubSpotDetector()
	// Four signals totalling 105 raw weight.
	html := `<html><head>
		<script src="https://js.hs-scripts.com/999.js"></script>
		<script src="https://js.hs-analytics.net/analytics.js"></script>
		<script src="https://track.hubspot.com/__ptq.gif"></script>
		<script src="https://js.hsforms.net/forms/v2.js"></script>
	</head></html>`

	result := d.Detect("busy.example", html)

	assert.Equal(t, 100, result.ConfidenceScore)
	assert.True(t, result.HubSpotDetected)
}

func TestDetectedFlagTracksThreshold(t *testing.T) {
	d := NewHubSpotDetector()

	tests := []struct {
		name string
		html string
	}{
		{"empty page", "<html></html>"},
		{"single weak signal", `<img src="/hubfs/logo.png">`},
		{"single strong signal", `<script src="https://js.hs-scripts.com/1.js"></script>`},
		{"everything", `<script src="https://js.hs-scripts.com/1.js"></script><div class="hs-cos-wrapper"></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.Detect("example.com", tt.html)
			assert.Equal(t, result.ConfidenceScore >= DetectionThreshold, result.HubSpotDetected)
		})
	}
}

func TestDetectExtractsAllPortalIDs(t *testing.T) {
	d := NewHubSpotDetector()
	html := `<script src="https://js.hs-scripts.com/12345.js"></script>
		<div data-hsjs-portal="678"></div>
		<img src="/hubfs/999/banner.png">`

	result := d.Detect("acme.com", html)

	assert.Equal(t, []string{"12345", "678", "999"}, result.PortalIDs)
}

func TestHeaderSignals(t *testing.T) {
	d := NewHubSpotDetector()

	tests := []struct {
		name    string
		headers map[string]string
		want    []string
	}{
		{
			name:    "hub id header presence",
			headers: map[string]string{"X-HS-Hub-ID": "424242"},
			want:    []string{"header-x-hs-hub-id"},
		},
		{
			name:    "powered by hubspot",
			headers: map[string]string{"X-Powered-By": "HubSpot CMS"},
			want:    []string{"header-x-powered-by"},
		},
		{
			name:    "powered by something else",
			headers: map[string]string{"X-Powered-By": "PHP/8.2"},
			want:    nil,
		},
		{
			name:    "no relevant headers",
			headers: map[string]string{"Content-Type": "text/html"},
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signals := d.HeaderSignals(tt.headers)
			var names []string
			for _, s := range signals {
				names = append(names, s.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDetectPageCombinesAllPasses(t *testing.T) {
	d := NewHubSpotDetector()
	html := `<html><head>
		<link href="https://cdn2.hubspot.net/style.css" rel="stylesheet">
		<script>var _hsq = window._hsq || [];</script>
	</head><body></body></html>`
	headers := map[string]string{"x-hs-hub-id": "77"}

	result := d.DetectPage("acme.com", html, headers)

	names := make(map[string]bool)
	for _, s := range result.Signals {
		names[s.Name] = true
	}
	// cdn2.hubspot.net matches the COS pattern pass and the external
	// resource pass under different names.
	assert.True(t, names["cos-assets"])
	assert.True(t, names["external-hubspot.net"])
	assert.True(t, names["inline-hubspot-tracking-queue"])
	assert.True(t, names["header-x-hs-hub-id"])
	assert.True(t, result.HubSpotDetected)
	assert.LessOrEqual(t, result.ConfidenceScore, MaxConfidence)
}

func TestDetectPageDeduplicatesExternalSignals(t *testing.T) {
	d := NewHubSpotDetector()
	html := `<script src="https://js.hsforms.net/forms/v2.js"></script>
		<script src="https://js.hsforms.net/forms/embed.js"></script>`

	result := d.DetectPage("acme.com", html, nil)

	count := 0
	for _, s := range result.Signals {
		if s.Name == "external-hsforms.net" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestTechDetectorShopifyAndStripe(t *testing.T) {
	d := NewTechDetector()
	html := `<html><head>
		<script src="https://cdn.shopify.com/s/shop.js"></script>
		<script src="https://js.stripe.com/v3/"></script>
	</head></html>`

	result := d.Detect("shop.example", html, nil)

	assert.Equal(t, []string{"Shopify", "Stripe"}, result.Technologies)
	require.Len(t, result.TechDetails, 2)

	assert.Equal(t, "Ecommerce", result.TechDetails[0].Category)
	assert.Equal(t, 4, result.TechDetails[0].Score)
	assert.Equal(t, "Payment Processor", result.TechDetails[1].Category)
	assert.Equal(t, 4, result.TechDetails[1].Score)
}

func TestTechDetectorMatchedPatternPrefixes(t *testing.T) {
	d := NewTechDetector()
	html := `<script src="https://cdn.shopify.com/s/shop.js"></script>`

	result := d.Detect("shop.example", html, map[string]string{"X-Shopify-Stage": "production"})

	require.Len(t, result.TechDetails, 1)
	assert.Contains(t, result.TechDetails[0].MatchedPatterns, `script: cdn\.shopify\.com`)
	assert.Contains(t, result.TechDetails[0].MatchedPatterns, "header: x-shopify-")
}

func TestTechDetectorHeaderOnlyTechnology(t *testing.T) {
	d := NewTechDetector()

	result := d.Detect("static.example", "<html></html>", map[string]string{"Server": "nginx/1.25"})

	assert.Contains(t, result.Technologies, "nginx")
}

func TestTechDetectorEmptyPage(t *testing.T) {
	d := NewTechDetector()

	result := d.Detect("blank.example", "", nil)

	assert.Empty(t, result.Technologies)
	assert.Empty(t, result.TechDetails)
}

func TestTechDetectorRegistryOrder(t *testing.T) {
	d := NewTechDetector()
	// Stripe appears first in the HTML but Salesforce comes first in the
	// registry, so output order follows the registry.
	html := `<script src="https://js.stripe.com/v3/"></script>
		<script src="https://na1.salesforce.com/app.js"></script>`

	result := d.Detect("crm.example", html, nil)

	assert.Equal(t, []string{"Salesforce", "Stripe"}, result.Technologies)
}
