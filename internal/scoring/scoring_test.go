package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreTechnologiesRanking(t *testing.T) {
	scored := ScoreTechnologies([]string{"Google Analytics", "Shopify", "Salesforce"})

	require.Len(t, scored, 3)
	assert.Equal(t, "Salesforce", scored[0].Name)
	assert.Equal(t, 5, scored[0].Score)
	assert.Equal(t, "Shopify", scored[1].Name)
	assert.Equal(t, 4, scored[1].Score)
	assert.Equal(t, "Google Analytics", scored[2].Name)
	assert.Equal(t, 1, scored[2].Score)
}

func TestScoreTechnologiesStableForEqualScores(t *testing.T) {
	scored := ScoreTechnologies([]string{"Stripe", "Shopify", "Klaviyo"})

	assert.Equal(t, "Stripe", scored[0].Name)
	assert.Equal(t, "Shopify", scored[1].Name)
	assert.Equal(t, "Klaviyo", scored[2].Name)
}

func TestScoreUnknownTechnologyDefaults(t *testing.T) {
	s := Score("FrobnicatorJS")

	assert.Equal(t, DefaultScore, s.Score)
	assert.Equal(t, DefaultCategory, s.Category)
	assert.NotEmpty(t, s.RecentProject)
}

func TestScoreIsDeterministic(t *testing.T) {
	input := []string{"HubSpot", "nginx", "Webflow", "Heap"}

	first := ScoreTechnologies(input)
	second := ScoreTechnologies(input)

	assert.Equal(t, first, second)
}

func TestHighestValue(t *testing.T) {
	top := HighestValue([]string{"Hotjar", "Magento"})
	require.NotNil(t, top)
	assert.Equal(t, "Magento", top.Name)
	assert.Equal(t, "Ecommerce", top.Category)

	assert.Nil(t, HighestValue(nil))
}

func TestScoreCategories(t *testing.T) {
	tests := []struct {
		tech     string
		category string
	}{
		{"Segment", "Customer Data Platform"},
		{"nginx", "Web Server"},
		{"Drift", "Live Chat"},
		{"GA4", "Analytics"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.category, Score(tt.tech).Category)
	}
}
