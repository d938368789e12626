// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/closespark/stackscanner/internal/outreach"
)

// Config represents the CLI configuration. Values come from a JSON file,
// environment variables, or CLI flags; all fields are optional and missing
// values fall back to defaults.
type Config struct {
	// Scanning
	MaxPages    int  `json:"max_pages,omitempty" validate:"gte=0"`
	NoEmails    bool `json:"no_emails,omitempty"`
	UseBrowser  bool `json:"use_browser,omitempty"`
	Concurrency int  `json:"concurrency,omitempty" validate:"gte=0"`
	Verbose     bool `json:"verbose,omitempty"`

	// Harvesting
	BlocklistPath string `json:"blocklist_path,omitempty"`

	// Outreach identity
	Company        outreach.CompanyProfile     `json:"company_profile,omitempty"`
	PersonaMap     map[string]outreach.Persona `json:"persona_map,omitempty"`
	DefaultPersona outreach.Persona            `json:"default_persona,omitempty"`

	// Services
	APIKey      string `json:"api_key,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Call after the caller
// has loaded any .env file.
func FromEnv() *Config {
	cfg := &Config{
		BlocklistPath: os.Getenv("BLOCKLIST_PATH"),
		APIKey:        os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Company: outreach.CompanyProfile{
			Company:    os.Getenv("COMPANY_NAME"),
			Location:   os.Getenv("COMPANY_LOCATION"),
			HourlyRate: os.Getenv("COMPANY_HOURLY_RATE"),
			GitHub:     os.Getenv("COMPANY_GITHUB"),
			Calendly:   os.Getenv("COMPANY_CALENDLY"),
		},
		DefaultPersona: outreach.Persona{
			Name:  os.Getenv("DEFAULT_PERSONA_NAME"),
			Email: os.Getenv("DEFAULT_PERSONA_EMAIL"),
			Role:  os.Getenv("DEFAULT_PERSONA_ROLE"),
			Tone:  os.Getenv("DEFAULT_PERSONA_TONE"),
		},
	}

	if raw := os.Getenv("SCANNER_MAX_EMAIL_PAGES"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.MaxPages = n
		}
	}
	if raw := os.Getenv("SCANNER_DISABLE_EMAILS"); raw != "" {
		cfg.NoEmails, _ = strconv.ParseBool(raw)
	}

	// PERSONA_MAP_JSON maps sender addresses to persona details:
	// {"scott@example.com": {"name": "Scott", "role": "Lead", "tone": "casual"}}
	if raw := os.Getenv("PERSONA_MAP_JSON"); raw != "" {
		var personas map[string]outreach.Persona
		if err := json.Unmarshal([]byte(raw), &personas); err == nil {
			for email, p := range personas {
				p.Email = email
				personas[email] = p
			}
			cfg.PersonaMap = personas
		}
	}

	return cfg
}

// Validate checks field constraints via struct tags plus a few semantic
// rules flags cannot express.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	for email := range c.PersonaMap {
		if err := validate.Var(email, "email"); err != nil {
			return fmt.Errorf("config error: invalid persona address %q: %w", email, err)
		}
	}
	if c.BlocklistPath != "" {
		if _, err := os.Stat(c.BlocklistPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: blocklist file not found: %s", c.BlocklistPath)
		}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Bool fields are not merged since unset and false are
// indistinguishable; CLI flags win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.BlocklistPath == "" {
		result.BlocklistPath = defaults.BlocklistPath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.Company == (outreach.CompanyProfile{}) {
		result.Company = defaults.Company
	}
	if result.DefaultPersona == (outreach.Persona{}) {
		result.DefaultPersona = defaults.DefaultPersona
	}
	if len(result.PersonaMap) == 0 {
		result.PersonaMap = defaults.PersonaMap
	}

	return result
}

// PersonaAddresses returns the configured sender addresses in sorted order,
// the form persona rotation consumes.
func (c *Config) PersonaAddresses() []string {
	if len(c.PersonaMap) == 0 {
		return nil
	}
	addresses := make([]string, 0, len(c.PersonaMap))
	for email := range c.PersonaMap {
		addresses = append(addresses, email)
	}
	sort.Strings(addresses)
	return addresses
}

// DefaultFrom returns the sender address used when no persona rotation is
// in play: the first configured persona address, or the default persona's.
func (c *Config) DefaultFrom() string {
	if addresses := c.PersonaAddresses(); len(addresses) > 0 {
		return addresses[0]
	}
	return c.DefaultPersona.Email
}

// ResolvedDefaultPersona fills unset default-persona fields with the
// built-in fallback identity.
func (c *Config) ResolvedDefaultPersona() outreach.Persona {
	p := c.DefaultPersona
	if p.Name == "" {
		p.Name = outreach.DefaultPersona.Name
	}
	if p.Role == "" {
		p.Role = outreach.DefaultPersona.Role
	}
	if p.Tone == "" {
		p.Tone = outreach.DefaultPersona.Tone
	}
	return p
}
