// Package llm provides the Gemini client used by the email rewrite stage,
// with tiered model configuration so callers pick capability, not model
// names.
package llm

// ModelTier represents the capability level requested for a generation.
type ModelTier string

const (
	// TierLite is for simple tasks: classification, extraction.
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: structured rewriting.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning and long-form generation.
	TierAdvanced ModelTier = "advanced"
)

// Config holds the model selection and generation settings.
type Config struct {
	Models map[ModelTier]string
	// Temperature applies to all generations; outreach rewriting wants a
	// bit of variation but not creativity.
	Temperature float32
}

// DefaultConfig returns the default Gemini model mapping.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.4,
	}
}

// GetModel returns the model name for a tier, falling back through
// standard and lite when the requested tier has no mapping.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}
