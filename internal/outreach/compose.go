package outreach

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/closespark/stackscanner/internal/scoring"
)

// DomainHistory records prior outreach to a domain, consulted for variant
// suppression and persona rotation.
type DomainHistory struct {
	UsedVariantIDs []string
	UsedPersonas   []string
}

// PersonaEmail is a composed outreach email with tracking metadata.
type PersonaEmail struct {
	Subject         string   `json:"subject"`
	Body            string   `json:"body"`
	MainTech        string   `json:"main_tech"`
	SupportingTechs []string `json:"supporting_techs"`
	Persona         string   `json:"persona"`
	PersonaEmail    string   `json:"persona_email"`
	PersonaRole     string   `json:"persona_role"`
	VariantID       string   `json:"variant_id"`
	Domain          string   `json:"domain"`
}

// Composer builds persona outreach emails from immutable persona and
// company tables injected at construction.
type Composer struct {
	personas map[string]Persona
	fallback Persona
	company  CompanyProfile

	// mu serializes rng access; batch scans compose from many workers and
	// rand.Rand is not safe for concurrent use.
	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposer builds a composer. personas maps sender addresses to
// identities; rng may be nil, in which case a time-seeded source is used.
// Pass a fixed-seed source for reproducible selection in tests.
func NewComposer(personas map[string]Persona, fallback Persona, company CompanyProfile, rng *rand.Rand) *Composer {
	if fallback.Name == "" {
		fallback = DefaultPersona
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if personas == nil {
		personas = map[string]Persona{}
	}
	return &Composer{
		personas: personas,
		fallback: fallback,
		company:  company,
		rng:      rng,
	}
}

// PersonaFor resolves the persona for a sender address, falling back to the
// default persona with the address filled in.
func (c *Composer) PersonaFor(fromEmail string) Persona {
	if p, ok := c.personas[fromEmail]; ok {
		p.Email = fromEmail
		return p
	}
	p := c.fallback
	p.Email = fromEmail
	return p
}

// VariantFor picks a random variant for a technology, excluding previously
// used variant IDs. When exclusion would empty the candidate set, the full
// set is used again. Technologies without curated variants get the
// synthesized generic variant.
func (c *Composer) VariantFor(mainTech string, excludeIDs []string) Variant {
	variants := VariantsFor(mainTech)
	if len(variants) == 0 {
		return GenericVariant(mainTech)
	}

	candidates := variants
	if len(excludeIDs) > 0 {
		excluded := make(map[string]struct{}, len(excludeIDs))
		for _, id := range excludeIDs {
			excluded[id] = struct{}{}
		}
		var filtered []Variant
		for _, v := range variants {
			if _, ok := excluded[v.ID]; !ok {
				filtered = append(filtered, v)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	return candidates[c.intn(len(candidates))]
}

func (c *Composer) intn(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Intn(n)
}

// SubjectFor picks a subject line for a persona/technology pair and
// substitutes the domain. Personas or technologies without curated subject
// lists fall back to a variant subject template.
func (c *Composer) SubjectFor(fromEmail, mainTech, domain string) string {
	template := ""
	if techSubjects, ok := subjectVariants[fromEmail]; ok {
		if subjects := techSubjects[mainTech]; len(subjects) > 0 {
			template = subjects[c.intn(len(subjects))]
		}
	}
	if template == "" {
		template = c.VariantFor(mainTech, nil).SubjectTemplate
	}
	return strings.ReplaceAll(template, "{{domain}}", domain)
}

// Body renders the fixed plain-text layout: tone-based greeting, a context
// sentence naming the domain and main technology with up to two supporting
// technologies, three bullets, the rate line, an optional scheduling CTA,
// and the persona signature.
func (c *Composer) Body(domain, mainTech string, supportingTechs []string, persona Persona, variant Variant) string {
	bullets := variant.Bullets
	if len(bullets) == 0 {
		bullets = []string{
			"Integration and sync issues",
			"Automation and workflow problems",
			"Tracking and analytics gaps",
		}
	}
	if len(bullets) > 3 {
		bullets = bullets[:3]
	}

	supportingMention := ""
	var supporting []string
	for _, t := range supportingTechs {
		if t != mainTech {
			supporting = append(supporting, t)
		}
		if len(supporting) == 2 {
			break
		}
	}
	if len(supporting) > 0 {
		supportingMention = " + " + strings.Join(supporting, ", ")
	}

	bulletLines := make([]string, len(bullets))
	for i, b := range bullets {
		bulletLines[i] = "• " + b
	}

	var greeting string
	switch {
	case strings.HasPrefix(persona.Tone, "friendly"):
		greeting = "Hi — I'm " + persona.Name + " from " + c.company.Company + " in " + c.company.Location + "."
	case strings.HasPrefix(persona.Tone, "structured"):
		greeting = "Hello — I'm " + persona.Name + " with " + c.company.Company + ", based in " + c.company.Location + "."
	default:
		greeting = "Hi — I'm " + persona.Name + " from " + c.company.Company + " in " + c.company.Location + "."
	}

	parts := []string{greeting}
	parts = append(parts, "\nI saw that "+domain+" is running "+mainTech+supportingMention+
		", and I specialize in short-term technical fixes for stacks like yours.\n")
	parts = append(parts, strings.Join(bulletLines, "\n"))
	parts = append(parts, "\nHourly: "+c.company.HourlyRate+", strictly short-term — no long-term commitment.")

	if c.company.Calendly != "" {
		parts = append(parts, "\nIf it would help to have a specialist jump in, you can grab time here:\n"+c.company.Calendly)
	}

	parts = append(parts, "\n– "+persona.Name)
	parts = append(parts, persona.Role+", "+c.company.Company)

	if c.company.GitHub != "" {
		parts = append(parts, c.company.GitHub)
	}

	return strings.Join(parts, "\n")
}

// Compose builds a complete persona outreach email for a domain and its
// top technology. history, when present, suppresses previously used
// variants.
func (c *Composer) Compose(domain, mainTech string, supportingTechs []string, fromEmail string, history *DomainHistory) PersonaEmail {
	persona := c.PersonaFor(fromEmail)

	var excludeIDs []string
	if history != nil {
		excludeIDs = history.UsedVariantIDs
	}
	variant := c.VariantFor(mainTech, excludeIDs)

	subject := c.SubjectFor(fromEmail, mainTech, domain)
	body := c.Body(domain, mainTech, supportingTechs, persona, variant)

	if supportingTechs == nil {
		supportingTechs = []string{}
	}

	return PersonaEmail{
		Subject:         subject,
		Body:            body,
		MainTech:        mainTech,
		SupportingTechs: supportingTechs,
		Persona:         persona.Name,
		PersonaEmail:    fromEmail,
		PersonaRole:     persona.Role,
		VariantID:       variant.ID,
		Domain:          domain,
	}
}

// ComposeForTechnologies picks the highest-value detected technology and
// composes an email around it. Returns nil when nothing was detected.
func (c *Composer) ComposeForTechnologies(domain string, technologies []string, fromEmail string, history *DomainHistory) *PersonaEmail {
	top := scoring.HighestValue(technologies)
	if top == nil {
		return nil
	}

	var supporting []string
	for _, t := range technologies {
		if t != top.Name {
			supporting = append(supporting, t)
		}
	}

	email := c.Compose(domain, top.Name, supporting, fromEmail, history)
	return &email
}
