package outreach

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCompany() CompanyProfile {
	return CompanyProfile{
		Company:    "CloseSpark",
		Location:   "Richmond, VA",
		HourlyRate: "$85/hr",
		GitHub:     "https://github.com/closespark",
		Calendly:   "https://calendly.com/closespark/intro",
	}
}

func testComposer(seed int64) *Composer {
	personas := map[string]Persona{
		"scott@closespark.co": {Name: "Scott", Role: "Integration Engineer", Tone: "technical"},
		"tracy@closespark.co": {Name: "Tracy", Role: "Solutions Lead", Tone: "structured"},
		"willa@closespark.co": {Name: "Willa", Role: "Consultant", Tone: "friendly"},
	}
	return NewComposer(personas, DefaultPersona, testCompany(), rand.New(rand.NewSource(seed)))
}

func TestComposeUnknownPersonaFallsBack(t *testing.T) {
	c := testComposer(1)

	email := c.Compose("acme.com", "Shopify", nil, "nobody@closespark.co", nil)

	assert.Equal(t, "Consultant", email.Persona)
	assert.Equal(t, "Technical Specialist", email.PersonaRole)
	assert.Equal(t, "nobody@closespark.co", email.PersonaEmail)
	assert.NotContains(t, email.Subject, "{{domain}}")

	var bullets int
	for _, line := range strings.Split(email.Body, "\n") {
		if strings.HasPrefix(line, "• ") {
			bullets++
		}
	}
	assert.Equal(t, 3, bullets)
}

func TestComposeSubjectSubstitutesDomain(t *testing.T) {
	c := testComposer(7)

	// Unknown technologies get the synthesized generic variant, whose
	// subject always carries the domain placeholder.
	email := c.Compose("acme.com", "FrobnicatorJS", nil, "scott@closespark.co", nil)

	assert.Contains(t, email.Subject, "acme.com")
	assert.Equal(t, "frobnicatorjs_default", email.VariantID)
}

func TestComposeBodyLayout(t *testing.T) {
	c := testComposer(3)

	email := c.Compose("acme.com", "Shopify", []string{"Stripe", "Klaviyo", "nginx"}, "willa@closespark.co", nil)

	assert.Contains(t, email.Body, "Hi — I'm Willa from CloseSpark in Richmond, VA.")
	assert.Contains(t, email.Body, "acme.com is running Shopify + Stripe, Klaviyo")
	assert.NotContains(t, email.Body, "nginx")
	assert.Contains(t, email.Body, "Hourly: $85/hr")
	assert.Contains(t, email.Body, "https://calendly.com/closespark/intro")
	assert.Contains(t, email.Body, "Consultant, CloseSpark")
	assert.Contains(t, email.Body, "https://github.com/closespark")
}

func TestComposeGreetingByTone(t *testing.T) {
	c := testComposer(4)

	structured := c.Compose("acme.com", "HubSpot", nil, "tracy@closespark.co", nil)
	assert.Contains(t, structured.Body, "Hello — I'm Tracy with CloseSpark, based in Richmond, VA.")

	technical := c.Compose("acme.com", "HubSpot", nil, "scott@closespark.co", nil)
	assert.Contains(t, technical.Body, "Hi — I'm Scott from CloseSpark in Richmond, VA.")
}

func TestVariantSuppressionExhaustsBeforeRepeating(t *testing.T) {
	c := testComposer(5)

	// With two of three Shopify variants used, the remaining one must win
	// every time.
	for i := 0; i < 50; i++ {
		v := c.VariantFor("Shopify", []string{"shopify_v1", "shopify_v3"})
		assert.Equal(t, "shopify_v2", v.ID)
	}
}

func TestVariantSuppressionResetsWhenExhausted(t *testing.T) {
	c := testComposer(6)
	all := []string{"shopify_v1", "shopify_v2", "shopify_v3"}

	v := c.VariantFor("Shopify", all)

	assert.Contains(t, all, v.ID)
	require.Len(t, v.Bullets, 3)
}

func TestComposeIsReproducibleWithSeed(t *testing.T) {
	first := testComposer(42).Compose("acme.com", "Stripe", []string{"Shopify"}, "scott@closespark.co", nil)
	second := testComposer(42).Compose("acme.com", "Stripe", []string{"Shopify"}, "scott@closespark.co", nil)

	assert.Equal(t, first, second)
}

func TestComposeForTechnologies(t *testing.T) {
	c := testComposer(8)

	email := c.ComposeForTechnologies("acme.com", []string{"Hotjar", "Shopify"}, "scott@closespark.co", nil)
	require.NotNil(t, email)
	assert.Equal(t, "Shopify", email.MainTech)
	assert.Equal(t, []string{"Hotjar"}, email.SupportingTechs)

	assert.Nil(t, c.ComposeForTechnologies("acme.com", nil, "scott@closespark.co", nil))
}

func TestUnusedPersona(t *testing.T) {
	available := []string{"scott@closespark.co", "tracy@closespark.co", "willa@closespark.co"}

	assert.Equal(t, "scott@closespark.co", UnusedPersona(available, nil))
	assert.Equal(t, "tracy@closespark.co", UnusedPersona(available, []string{"scott@closespark.co"}))
	assert.Equal(t, "", UnusedPersona(available, available))
	assert.Equal(t, "", UnusedPersona(nil, nil))
}

func TestGenericVariantShape(t *testing.T) {
	v := GenericVariant("Zen Cart")

	assert.Equal(t, "zen_cart_default", v.ID)
	assert.Contains(t, v.SubjectTemplate, "{{domain}}")
	assert.Len(t, v.Bullets, 3)
}
