package outreach

import "strings"

// Variant is one email treatment for a technology: a stable ID for
// suppression tracking, a subject template with a {{domain}} placeholder,
// and exactly three body bullets.
type Variant struct {
	ID              string
	SubjectTemplate string
	Bullets         []string
}

// emailVariants holds 2-3 treatments per technology. Technologies without
// an entry get a synthesized generic variant.
var emailVariants = map[string][]Variant{
	"Shopify": {
		{
			ID:              "shopify_v1",
			SubjectTemplate: "Shopify integration issue on {{domain}}?",
			Bullets: []string{
				"Checkout or webhook issues affecting orders",
				"Payment + analytics events not lining up (GA4, Klaviyo, etc.)",
				"Small automation gaps that slow down the team",
			},
		},
		{
			ID:              "shopify_v2",
			SubjectTemplate: "Quick Shopify improvement idea for {{domain}}",
			Bullets: []string{
				"Order tracking and fulfillment sync problems",
				"Broken email triggers (abandoned cart, post-purchase)",
				"Third-party app conflicts causing errors",
			},
		},
		{
			ID:              "shopify_v3",
			SubjectTemplate: "Saw something in your Shopify setup",
			Bullets: []string{
				"Webhook reliability and event handling",
				"Checkout customization issues",
				"Inventory sync with external systems",
			},
		},
	},
	"Salesforce": {
		{
			ID:              "salesforce_v1",
			SubjectTemplate: "Salesforce routing issue on {{domain}}?",
			Bullets: []string{
				"Lead routing rules not firing correctly",
				"Automation flows dropping records",
				"Reporting gaps affecting pipeline visibility",
			},
		},
		{
			ID:              "salesforce_v2",
			SubjectTemplate: "Quick Salesforce fix for {{domain}}",
			Bullets: []string{
				"Workflow automation cleanup",
				"Data sync between Salesforce and other tools",
				"Custom object and field configuration",
			},
		},
		{
			ID:              "salesforce_v3",
			SubjectTemplate: "Noticed your Salesforce setup",
			Bullets: []string{
				"Integration issues with marketing tools",
				"Duplicate record cleanup and prevention",
				"Process builder optimization",
			},
		},
	},
	"WordPress": {
		{
			ID:              "wordpress_v1",
			SubjectTemplate: "WordPress performance idea for {{domain}}",
			Bullets: []string{
				"Site speed and caching optimization",
				"Plugin conflicts causing errors",
				"Form integration issues (submissions not reaching CRM)",
			},
		},
		{
			ID:              "wordpress_v2",
			SubjectTemplate: "Quick WordPress fix for {{domain}}",
			Bullets: []string{
				"Broken contact forms and lead capture",
				"Analytics tracking not firing properly",
				"Theme and plugin update conflicts",
			},
		},
		{
			ID:              "wordpress_v3",
			SubjectTemplate: "Saw something on your WordPress site",
			Bullets: []string{
				"Database optimization and cleanup",
				"Security and update management",
				"Custom functionality issues",
			},
		},
	},
	"HubSpot": {
		{
			ID:              "hubspot_v1",
			SubjectTemplate: "HubSpot workflow issue on {{domain}}?",
			Bullets: []string{
				"Form submissions not triggering workflows",
				"Lead scoring and lifecycle stage issues",
				"CRM sync problems with external tools",
			},
		},
		{
			ID:              "hubspot_v2",
			SubjectTemplate: "Quick HubSpot improvement for {{domain}}",
			Bullets: []string{
				"Email automation and sequence cleanup",
				"Deal pipeline and reporting gaps",
				"Contact property mapping issues",
			},
		},
		{
			ID:              "hubspot_v3",
			SubjectTemplate: "Noticed your HubSpot setup",
			Bullets: []string{
				"Workflow logic and branching issues",
				"Integration with Shopify, Stripe, or Salesforce",
				"List segmentation and targeting",
			},
		},
	},
	"Klaviyo": {
		{
			ID:              "klaviyo_v1",
			SubjectTemplate: "Klaviyo flow issue on {{domain}}?",
			Bullets: []string{
				"Abandoned cart emails not triggering",
				"Event tracking gaps from Shopify/WooCommerce",
				"Segment sync problems",
			},
		},
		{
			ID:              "klaviyo_v2",
			SubjectTemplate: "Quick Klaviyo fix for {{domain}}",
			Bullets: []string{
				"Post-purchase flow optimization",
				"Revenue attribution not matching",
				"Integration with other marketing tools",
			},
		},
		{
			ID:              "klaviyo_v3",
			SubjectTemplate: "Noticed your Klaviyo setup",
			Bullets: []string{
				"Browse abandonment flow issues",
				"SMS and email coordination",
				"Customer profile enrichment",
			},
		},
	},
	"Google Analytics": {
		{
			ID:              "ga_v1",
			SubjectTemplate: "Analytics tracking issue on {{domain}}?",
			Bullets: []string{
				"Conversion tracking not firing properly",
				"Ecommerce data missing or incorrect",
				"Cross-domain tracking issues",
			},
		},
		{
			ID:              "ga_v2",
			SubjectTemplate: "Quick GA4 fix for {{domain}}",
			Bullets: []string{
				"Event tracking configuration",
				"Attribution model setup",
				"Integration with Google Ads",
			},
		},
		{
			ID:              "ga_v3",
			SubjectTemplate: "Saw something in your analytics setup",
			Bullets: []string{
				"Custom dimension and metric setup",
				"Funnel visualization issues",
				"Data layer configuration",
			},
		},
	},
	"GA4": {
		{
			ID:              "ga4_v1",
			SubjectTemplate: "GA4 tracking issue on {{domain}}?",
			Bullets: []string{
				"Event tracking not configured correctly",
				"Ecommerce purchase data missing",
				"Conversion goals not counting",
			},
		},
		{
			ID:              "ga4_v2",
			SubjectTemplate: "Quick GA4 improvement for {{domain}}",
			Bullets: []string{
				"Custom events and parameters setup",
				"Attribution and conversion paths",
				"Integration with BigQuery",
			},
		},
		{
			ID:              "ga4_v3",
			SubjectTemplate: "Noticed your GA4 setup",
			Bullets: []string{
				"Debug mode and data validation",
				"Audience building and remarketing",
				"Cross-platform tracking",
			},
		},
	},
	"Magento": {
		{
			ID:              "magento_v1",
			SubjectTemplate: "Magento issue on {{domain}}?",
			Bullets: []string{
				"Checkout and payment flow problems",
				"Inventory sync with external systems",
				"Extension conflicts causing errors",
			},
		},
		{
			ID:              "magento_v2",
			SubjectTemplate: "Quick Magento fix for {{domain}}",
			Bullets: []string{
				"Performance and caching optimization",
				"Order processing automation",
				"Customer data integration with CRM",
			},
		},
		{
			ID:              "magento_v3",
			SubjectTemplate: "Noticed your Magento store",
			Bullets: []string{
				"API integration issues",
				"Custom module troubleshooting",
				"Indexer and cache management",
			},
		},
	},
	"Stripe": {
		{
			ID:              "stripe_v1",
			SubjectTemplate: "Stripe integration issue on {{domain}}?",
			Bullets: []string{
				"Webhook failures affecting order tracking",
				"Subscription and recurring payment issues",
				"Checkout flow not working properly",
			},
		},
		{
			ID:              "stripe_v2",
			SubjectTemplate: "Quick Stripe fix for {{domain}}",
			Bullets: []string{
				"Payment event tracking gaps",
				"Refund and dispute handling",
				"Integration with accounting tools",
			},
		},
		{
			ID:              "stripe_v3",
			SubjectTemplate: "Saw something in your Stripe setup",
			Bullets: []string{
				"Customer portal configuration",
				"Invoice automation",
				"Revenue reconciliation issues",
			},
		},
	},
	"WooCommerce": {
		{
			ID:              "woocommerce_v1",
			SubjectTemplate: "WooCommerce issue on {{domain}}?",
			Bullets: []string{
				"Checkout errors or abandoned cart issues",
				"Payment gateway integration problems",
				"Order tracking and fulfillment sync",
			},
		},
		{
			ID:              "woocommerce_v2",
			SubjectTemplate: "Quick WooCommerce fix for {{domain}}",
			Bullets: []string{
				"Plugin conflicts causing errors",
				"Email notification failures",
				"Inventory sync with external systems",
			},
		},
		{
			ID:              "woocommerce_v3",
			SubjectTemplate: "Noticed your WooCommerce store",
			Bullets: []string{
				"Performance optimization",
				"CRM and email marketing integration",
				"Shipping and tax calculation issues",
			},
		},
	},
	"Mailchimp": {
		{
			ID:              "mailchimp_v1",
			SubjectTemplate: "Mailchimp issue on {{domain}}?",
			Bullets: []string{
				"Automation triggers not firing",
				"List sync problems with other tools",
				"Subscriber data not updating",
			},
		},
		{
			ID:              "mailchimp_v2",
			SubjectTemplate: "Quick Mailchimp fix for {{domain}}",
			Bullets: []string{
				"Email deliverability issues",
				"Segmentation and targeting problems",
				"Integration with ecommerce platform",
			},
		},
		{
			ID:              "mailchimp_v3",
			SubjectTemplate: "Noticed your Mailchimp setup",
			Bullets: []string{
				"Campaign automation optimization",
				"Merge tag and personalization issues",
				"Reporting and analytics gaps",
			},
		},
	},
	"Segment": {
		{
			ID:              "segment_v1",
			SubjectTemplate: "Segment issue on {{domain}}?",
			Bullets: []string{
				"Events not reaching downstream destinations",
				"Source configuration problems",
				"Data quality and validation issues",
			},
		},
		{
			ID:              "segment_v2",
			SubjectTemplate: "Quick Segment fix for {{domain}}",
			Bullets: []string{
				"Identity resolution issues",
				"Warehouse sync problems",
				"Integration with analytics tools",
			},
		},
		{
			ID:              "segment_v3",
			SubjectTemplate: "Noticed your Segment setup",
			Bullets: []string{
				"Event taxonomy cleanup",
				"Destination configuration",
				"Tracking plan implementation",
			},
		},
	},
	"Intercom": {
		{
			ID:              "intercom_v1",
			SubjectTemplate: "Intercom issue on {{domain}}?",
			Bullets: []string{
				"Chat routing not working properly",
				"Automation and bot flow issues",
				"CRM sync problems",
			},
		},
		{
			ID:              "intercom_v2",
			SubjectTemplate: "Quick Intercom fix for {{domain}}",
			Bullets: []string{
				"Custom bot configuration",
				"User data enrichment",
				"Integration with support tools",
			},
		},
		{
			ID:              "intercom_v3",
			SubjectTemplate: "Noticed your Intercom setup",
			Bullets: []string{
				"Qualification playbook optimization",
				"Event tracking for targeting",
				"Help center integration",
			},
		},
	},
	"Mixpanel": {
		{
			ID:              "mixpanel_v1",
			SubjectTemplate: "Mixpanel issue on {{domain}}?",
			Bullets: []string{
				"Event tracking gaps",
				"Funnel analysis not accurate",
				"User identity issues",
			},
		},
		{
			ID:              "mixpanel_v2",
			SubjectTemplate: "Quick Mixpanel fix for {{domain}}",
			Bullets: []string{
				"Cohort analysis setup",
				"Integration with other tools",
				"Custom property configuration",
			},
		},
		{
			ID:              "mixpanel_v3",
			SubjectTemplate: "Noticed your Mixpanel setup",
			Bullets: []string{
				"Retention analysis configuration",
				"A/B test tracking",
				"Data export and warehousing",
			},
		},
	},
}

// subjectVariants holds persona-specific subject templates keyed by sender
// address and technology. Missing combinations fall back to the variant's
// own subject template.
var subjectVariants = map[string]map[string][]string{
	"scott@closespark.co": {
		"Shopify": {
			"Shopify integration issue on {{domain}}?",
			"Quick Shopify improvement idea for {{domain}}",
			"Saw something in your Shopify setup",
		},
		"Salesforce": {
			"Salesforce routing issue on {{domain}}?",
			"Quick Salesforce fix for {{domain}}",
			"Noticed your Salesforce setup",
		},
		"WordPress": {
			"WordPress performance idea for {{domain}}",
			"Quick WordPress fix for {{domain}}",
			"Saw something on your WordPress site",
		},
		"HubSpot": {
			"HubSpot workflow issue on {{domain}}?",
			"Quick HubSpot fix for {{domain}}",
			"Noticed your HubSpot setup",
		},
		"Klaviyo": {
			"Klaviyo flow issue on {{domain}}?",
			"Quick Klaviyo fix for {{domain}}",
			"Noticed your Klaviyo setup",
		},
		"Google Analytics": {
			"Analytics tracking issue on {{domain}}?",
			"Quick GA4 fix for {{domain}}",
			"Saw something in your analytics setup",
		},
		"GA4": {
			"GA4 tracking issue on {{domain}}?",
			"Quick GA4 improvement for {{domain}}",
			"Noticed your GA4 setup",
		},
		"Magento": {
			"Magento issue on {{domain}}?",
			"Quick Magento fix for {{domain}}",
			"Noticed your Magento store",
		},
		"Stripe": {
			"Stripe integration issue on {{domain}}?",
			"Quick Stripe fix for {{domain}}",
			"Saw something in your Stripe setup",
		},
		"WooCommerce": {
			"WooCommerce issue on {{domain}}?",
			"Quick WooCommerce fix for {{domain}}",
			"Noticed your WooCommerce store",
		},
	},
	"tracy@closespark.co": {
		"Shopify": {
			"Technical review: Shopify on {{domain}}",
			"Shopify integration assessment for {{domain}}",
			"Following up on your Shopify setup",
		},
		"Salesforce": {
			"Technical review: Salesforce on {{domain}}",
			"Salesforce workflow assessment for {{domain}}",
			"Following up on your Salesforce setup",
		},
		"WordPress": {
			"Technical review: WordPress on {{domain}}",
			"WordPress performance assessment for {{domain}}",
			"Following up on your WordPress site",
		},
		"HubSpot": {
			"Technical review: HubSpot on {{domain}}",
			"HubSpot workflow assessment for {{domain}}",
			"Following up on your HubSpot setup",
		},
		"Klaviyo": {
			"Technical review: Klaviyo on {{domain}}",
			"Klaviyo flow assessment for {{domain}}",
			"Following up on your Klaviyo setup",
		},
		"Google Analytics": {
			"Technical review: Analytics on {{domain}}",
			"Analytics assessment for {{domain}}",
			"Following up on your analytics setup",
		},
		"GA4": {
			"Technical review: GA4 on {{domain}}",
			"GA4 assessment for {{domain}}",
			"Following up on your GA4 setup",
		},
		"Magento": {
			"Technical review: Magento on {{domain}}",
			"Magento assessment for {{domain}}",
			"Following up on your Magento store",
		},
		"Stripe": {
			"Technical review: Stripe on {{domain}}",
			"Stripe integration assessment for {{domain}}",
			"Following up on your Stripe setup",
		},
		"WooCommerce": {
			"Technical review: WooCommerce on {{domain}}",
			"WooCommerce assessment for {{domain}}",
			"Following up on your WooCommerce store",
		},
	},
	"willa@closespark.co": {
		"Shopify": {
			"Hi from CloseSpark — Shopify help for {{domain}}",
			"Quick idea for your Shopify store",
			"Reaching out about your Shopify setup",
		},
		"Salesforce": {
			"Hi from CloseSpark — Salesforce help for {{domain}}",
			"Quick idea for your Salesforce setup",
			"Reaching out about your Salesforce",
		},
		"WordPress": {
			"Hi from CloseSpark — WordPress help for {{domain}}",
			"Quick idea for your WordPress site",
			"Reaching out about your WordPress setup",
		},
		"HubSpot": {
			"Hi from CloseSpark — HubSpot help for {{domain}}",
			"Quick idea for your HubSpot setup",
			"Reaching out about your HubSpot",
		},
		"Klaviyo": {
			"Hi from CloseSpark — Klaviyo help for {{domain}}",
			"Quick idea for your Klaviyo flows",
			"Reaching out about your Klaviyo setup",
		},
		"Google Analytics": {
			"Hi from CloseSpark — Analytics help for {{domain}}",
			"Quick idea for your analytics setup",
			"Reaching out about your tracking",
		},
		"GA4": {
			"Hi from CloseSpark — GA4 help for {{domain}}",
			"Quick idea for your GA4 setup",
			"Reaching out about your analytics",
		},
		"Magento": {
			"Hi from CloseSpark — Magento help for {{domain}}",
			"Quick idea for your Magento store",
			"Reaching out about your Magento setup",
		},
		"Stripe": {
			"Hi from CloseSpark — Stripe help for {{domain}}",
			"Quick idea for your Stripe integration",
			"Reaching out about your Stripe setup",
		},
		"WooCommerce": {
			"Hi from CloseSpark — WooCommerce help for {{domain}}",
			"Quick idea for your WooCommerce store",
			"Reaching out about your WooCommerce setup",
		},
	},
}

// GenericVariant synthesizes a variant for technologies without a curated
// entry so every detected technology can still drive an email.
func GenericVariant(mainTech string) Variant {
	slug := strings.ReplaceAll(strings.ToLower(mainTech), " ", "_")
	return Variant{
		ID:              slug + "_default",
		SubjectTemplate: "Quick {{domain}} question about " + mainTech,
		Bullets: []string{
			"Integration and configuration issues with " + mainTech,
			"Automation and workflow problems",
			"Data sync and tracking gaps",
		},
	}
}

// VariantsFor returns the curated variants for a technology, or nil when
// only the generic variant applies.
func VariantsFor(mainTech string) []Variant {
	return emailVariants[mainTech]
}
