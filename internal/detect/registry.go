package detect

// TechnologyRule describes the fingerprint of one technology: regex
// patterns matched against page text plus header-prefix patterns matched
// against response headers. Every rule carries the category and value
// score used downstream for outreach targeting.
type TechnologyRule struct {
	Name           string
	Category       string
	Score          int
	ScriptPatterns []string
	HTMLPatterns   []string
	JSVarPatterns  []string
	// HeaderPatterns maps a header-name prefix to a value regex, so a
	// single entry covers wildcard-style header families like x-shopify-*.
	HeaderPatterns map[string]string
}

// Registry returns the static technology rule set in definition order.
// Output ordering of the multi-technology detector follows this order.
func Registry() []TechnologyRule {
	return technologyRules
}

var technologyRules = []TechnologyRule{
	// Enterprise / high-value (score 5)
	{
		Name:           "Salesforce",
		Category:       "CRM",
		Score:          5,
		ScriptPatterns: []string{`force\.com`, `salesforce\.com`, `lightning\.force\.com`},
		HTMLPatterns:   []string{`salesforce`, `_sf[a-z]+_`},
		JSVarPatterns:  []string{`SfdcApp`, `sforce`},
	},
	{
		Name:           "Marketo",
		Category:       "Marketing Automation",
		Score:          5,
		ScriptPatterns: []string{`munchkin\.marketo\.net`, `marketo\.com`},
		HTMLPatterns:   []string{`mktoForm`, `marketo`},
		JSVarPatterns:  []string{`Munchkin`, `MktoForms2`},
	},
	{
		Name:     "HubSpot",
		Category: "Marketing Automation",
		Score:    5,
		ScriptPatterns: []string{
			`js\.hs-scripts\.com`,
			`js\.hs-analytics\.net`,
			`js\.hsforms\.net`,
			`js\.hscta\.net`,
		},
		HTMLPatterns: []string{
			`hs-cos-wrapper`,
			`hubspot`,
			`<!--\s*Start of Async HubSpot`,
			`id=["']?hs-eu-cookie-confirmation`,
		},
		JSVarPatterns:  []string{`_hsq`, `hbspt`, `HubSpotConversations`},
		HeaderPatterns: map[string]string{"x-powered-by": `hubspot`, "x-hs-hub-id": `.+`},
	},
	{
		Name:           "Segment",
		Category:       "Customer Data Platform",
		Score:          5,
		ScriptPatterns: []string{`cdn\.segment\.com`, `api\.segment\.io`},
		JSVarPatterns:  []string{`analytics\.identify`, `analytics\.track`},
	},
	{
		Name:           "Magento",
		Category:       "Ecommerce",
		Score:          5,
		ScriptPatterns: []string{`mage/`, `magento`},
		HTMLPatterns:   []string{`Magento`, `mage-translation`, `/static/version`},
		JSVarPatterns:  []string{`Mage\.`},
		HeaderPatterns: map[string]string{"x-magento-": `.+`},
	},
	{
		Name:           "Pardot",
		Category:       "Marketing Automation",
		Score:          5,
		ScriptPatterns: []string{`pi\.pardot\.com`, `pardot\.com`},
		HTMLPatterns:   []string{`pardot`},
		JSVarPatterns:  []string{`piAId`, `piCId`},
	},
	{
		Name:           "Optimizely",
		Category:       "A/B Testing",
		Score:          5,
		ScriptPatterns: []string{`cdn\.optimizely\.com`, `optimizely\.com`},
		JSVarPatterns:  []string{`optimizely`},
	},

	// Ecommerce + payments + advanced (score 4)
	{
		Name:           "Shopify",
		Category:       "Ecommerce",
		Score:          4,
		ScriptPatterns: []string{`cdn\.shopify\.com`, `shopify\.com`},
		HTMLPatterns:   []string{`shopify`, `Shopify\.theme`},
		JSVarPatterns:  []string{`Shopify\.`, `ShopifyAnalytics`},
		HeaderPatterns: map[string]string{"x-shopify-": `.+`},
	},
	{
		Name:           "BigCommerce",
		Category:       "Ecommerce",
		Score:          4,
		ScriptPatterns: []string{`bigcommerce\.com`, `cdn\.bcapp`},
		HTMLPatterns:   []string{`bigcommerce`},
		HeaderPatterns: map[string]string{"x-bc-": `.+`},
	},
	{
		Name:           "Stripe",
		Category:       "Payment Processor",
		Score:          4,
		ScriptPatterns: []string{`js\.stripe\.com`, `stripe\.com`},
		JSVarPatterns:  []string{`Stripe\(`},
	},
	{
		Name:           "PayPal",
		Category:       "Payment Processor",
		Score:          4,
		ScriptPatterns: []string{`paypal\.com`, `paypalobjects\.com`},
		HTMLPatterns:   []string{`paypal`},
		JSVarPatterns:  []string{`paypal\.`},
	},
	{
		Name:           "Braintree",
		Category:       "Payment Processor",
		Score:          4,
		ScriptPatterns: []string{`braintree`, `braintreegateway\.com`},
		JSVarPatterns:  []string{`braintree\.`},
	},
	{
		Name:           "Klaviyo",
		Category:       "Email Marketing",
		Score:          4,
		ScriptPatterns: []string{`klaviyo\.com`, `static\.klaviyo\.com`},
		JSVarPatterns:  []string{`_learnq`, `klaviyo`},
	},
	{
		Name:           "Mixpanel",
		Category:       "Analytics",
		Score:          4,
		ScriptPatterns: []string{`cdn\.mxpnl\.com`, `mixpanel\.com`},
		JSVarPatterns:  []string{`mixpanel\.`},
	},
	{
		Name:           "Amplitude",
		Category:       "Analytics",
		Score:          4,
		ScriptPatterns: []string{`cdn\.amplitude\.com`, `amplitude\.com`},
		JSVarPatterns:  []string{`amplitude\.`},
	},
	{
		Name:           "VWO",
		Category:       "A/B Testing",
		Score:          4,
		ScriptPatterns: []string{`dev\.visualwebsiteoptimizer\.com`, `vwo\.com`},
		JSVarPatterns:  []string{`_vwo_`, `VWO`},
	},
	{
		Name:           "Square",
		Category:       "Payment Processor",
		Score:          4,
		ScriptPatterns: []string{`squareup\.com`, `square\.com`},
		JSVarPatterns:  []string{`Square\.`},
	},

	// Mainstream CMS + marketing (score 3)
	{
		Name:           "WordPress",
		Category:       "CMS",
		Score:          3,
		ScriptPatterns: []string{`wp-content`, `wp-includes`},
		HTMLPatterns:   []string{`wordpress`, `wp-content`, `wp-json`},
		HeaderPatterns: map[string]string{"x-powered-by": `wordpress`, "link": `wp-json`},
	},
	{
		Name:           "WooCommerce",
		Category:       "Ecommerce",
		Score:          3,
		ScriptPatterns: []string{`woocommerce`},
		HTMLPatterns:   []string{`woocommerce`, `wc-`},
		JSVarPatterns:  []string{`wc_add_to_cart`, `woocommerce`},
	},
	{
		Name:           "Mailchimp",
		Category:       "Email Marketing",
		Score:          3,
		ScriptPatterns: []string{`chimpstatic\.com`, `mailchimp\.com`, `list-manage\.com`},
		HTMLPatterns:   []string{`mailchimp`, `mc-embedded`},
		JSVarPatterns:  []string{`MailchimpSubscribe`},
	},
	{
		Name:           "SendGrid",
		Category:       "Email Marketing",
		Score:          3,
		ScriptPatterns: []string{`sendgrid\.com`, `sendgrid\.net`},
		HTMLPatterns:   []string{`sendgrid`},
	},
	{
		Name:           "ActiveCampaign",
		Category:       "Marketing Automation",
		Score:          3,
		ScriptPatterns: []string{`activecampaign\.com`, `trackcmp\.net`},
		JSVarPatterns:  []string{`ActiveCampaign`, `_ac`},
	},
	{
		Name:           "Intercom",
		Category:       "Live Chat",
		Score:          3,
		ScriptPatterns: []string{`widget\.intercom\.io`, `intercom\.com`},
		JSVarPatterns:  []string{`Intercom\(`, `intercomSettings`},
	},
	{
		Name:           "Drift",
		Category:       "Live Chat",
		Score:          3,
		ScriptPatterns: []string{`js\.driftt\.com`, `drift\.com`},
		JSVarPatterns:  []string{`drift\.`, `driftt`},
	},
	{
		Name:           "Zendesk Chat",
		Category:       "Live Chat",
		Score:          3,
		ScriptPatterns: []string{`zopim\.com`, `zendesk\.com`},
		JSVarPatterns:  []string{`\$zopim`, `zESettings`},
	},
	{
		Name:           "Freshchat",
		Category:       "Live Chat",
		Score:          3,
		ScriptPatterns: []string{`wchat\.freshchat\.com`, `freshchat\.com`},
		JSVarPatterns:  []string{`fcWidget`},
	},
	{
		Name:           "Zoho",
		Category:       "CRM",
		Score:          3,
		ScriptPatterns: []string{`zoho\.com`, `salesiq\.zoho`},
		HTMLPatterns:   []string{`zoho`},
		JSVarPatterns:  []string{`\$zoho`},
	},
	{
		Name:           "Pipedrive",
		Category:       "CRM",
		Score:          3,
		ScriptPatterns: []string{`pipedrive\.com`, `leadbooster-chat\.pipedrive`},
		JSVarPatterns:  []string{`pipedrive`},
	},
	{
		Name:           "Webflow",
		Category:       "CMS",
		Score:          3,
		ScriptPatterns: []string{`webflow\.com`},
		HTMLPatterns:   []string{`webflow`, `data-wf-`},
		HeaderPatterns: map[string]string{"x-webflow-": `.+`},
	},

	// Infrastructure (score 2)
	{
		Name:           "AWS",
		Category:       "Infrastructure",
		Score:          2,
		ScriptPatterns: []string{`amazonaws\.com`, `cloudfront\.net`},
		HeaderPatterns: map[string]string{"x-amz-": `.+`, "server": `AmazonS3`},
	},
	{
		Name:           "Vercel",
		Category:       "Infrastructure",
		Score:          2,
		HeaderPatterns: map[string]string{"x-vercel-": `.+`, "server": `Vercel`},
	},
	{
		Name:           "Netlify",
		Category:       "Infrastructure",
		Score:          2,
		HeaderPatterns: map[string]string{"x-nf-": `.+`, "server": `Netlify`},
	},
	{
		Name:           "Cloudflare",
		Category:       "Infrastructure",
		Score:          2,
		HeaderPatterns: map[string]string{"cf-ray": `.+`, "server": `cloudflare`},
	},
	{
		Name:           "nginx",
		Category:       "Web Server",
		Score:          2,
		HeaderPatterns: map[string]string{"server": `nginx`},
	},
	{
		Name:           "Apache",
		Category:       "Web Server",
		Score:          2,
		HeaderPatterns: map[string]string{"server": `Apache`},
	},

	// Basic analytics (score 1)
	{
		Name:     "Google Analytics",
		Category: "Analytics",
		Score:    1,
		ScriptPatterns: []string{
			`google-analytics\.com`,
			`googletagmanager\.com`,
			`gtag/js`,
		},
		JSVarPatterns: []string{`ga\(`, `gtag\(`, `_gaq`},
	},
	{
		Name:           "GA4",
		Category:       "Analytics",
		Score:          1,
		ScriptPatterns: []string{`gtag/js\?id=G-`},
		JSVarPatterns:  []string{`gtag\(`},
	},
	{
		Name:           "Google Optimize",
		Category:       "A/B Testing",
		Score:          1,
		ScriptPatterns: []string{`optimize\.google\.com`, `googlesyndication`},
		JSVarPatterns:  []string{`dataLayer`},
	},
	{
		Name:           "Heap",
		Category:       "Analytics",
		Score:          1,
		ScriptPatterns: []string{`heapanalytics\.com`, `heap-`},
		JSVarPatterns:  []string{`heap\.`},
	},
	{
		Name:           "Hotjar",
		Category:       "Analytics",
		Score:          1,
		ScriptPatterns: []string{`hotjar\.com`, `static\.hotjar\.com`},
		JSVarPatterns:  []string{`hj\(`, `_hjSettings`},
	},
}
