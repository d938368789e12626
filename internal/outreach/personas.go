// Package outreach composes persona-based cold outreach emails from
// detected technologies: variant selection with per-domain suppression,
// persona-specific subject lines, and a fixed plain-text body layout.
package outreach

// Persona is one sender identity. The Email field is the SMTP address the
// outreach goes out from; Tone selects the greeting style.
type Persona struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Tone  string `json:"tone"`
}

// CompanyProfile carries the company details substituted into email bodies.
type CompanyProfile struct {
	Company    string `json:"company"`
	Location   string `json:"location"`
	HourlyRate string `json:"hourly_rate"`
	GitHub     string `json:"github"`
	Calendly   string `json:"calendly"`
}

// DefaultPersona is used when a sender address has no persona configured.
var DefaultPersona = Persona{
	Name: "Consultant",
	Role: "Technical Specialist",
	Tone: "professional",
}

// UnusedPersona returns the first persona address not yet used for a
// domain, or empty when rotation is exhausted.
func UnusedPersona(available, used []string) string {
	if len(used) == 0 {
		if len(available) == 0 {
			return ""
		}
		return available[0]
	}

	usedSet := make(map[string]struct{}, len(used))
	for _, p := range used {
		usedSet[p] = struct{}{}
	}
	for _, p := range available {
		if _, ok := usedSet[p]; !ok {
			return p
		}
	}
	return ""
}
