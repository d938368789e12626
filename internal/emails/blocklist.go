// Package emails harvests contact email addresses from scanned sites:
// regex and mailto extraction, generic/disposable/invalid filtering, and a
// bounded same-host crawl that prioritizes contact pages.
package emails

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// blocklistSchema validates the disposable-domain document shape before
// load. Anything else degrades to an empty blocklist.
const blocklistSchema = `{
	"type": "array",
	"items": {"type": "string", "minLength": 1}
}`

// Blocklist is an immutable set of disposable/honeypot email domains.
// Build it once and share it read-only across harvesters.
type Blocklist struct {
	domains map[string]struct{}
}

// NewBlocklist builds a blocklist from domain names. Domains are matched
// case-insensitively.
func NewBlocklist(domains []string) *Blocklist {
	b := &Blocklist{domains: make(map[string]struct{}, len(domains))}
	for _, d := range domains {
		b.domains[strings.ToLower(strings.TrimSpace(d))] = struct{}{}
	}
	return b
}

// EmptyBlocklist returns a blocklist that blocks nothing.
func EmptyBlocklist() *Blocklist {
	return &Blocklist{domains: map[string]struct{}{}}
}

// LoadBlocklist reads a JSON array of disposable email domains from path.
// A missing file, malformed JSON, or a schema violation degrades to the
// empty blocklist with a logged warning rather than failing the scan.
func LoadBlocklist(path string) *Blocklist {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[BLOCKLIST] not loaded (%s): %v", path, err)
		return EmptyBlocklist()
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(blocklistSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil || !result.Valid() {
		log.Printf("[BLOCKLIST] invalid document (%s), using empty blocklist", path)
		return EmptyBlocklist()
	}

	var domains []string
	if err := json.Unmarshal(data, &domains); err != nil {
		log.Printf("[BLOCKLIST] decode failed (%s): %v", path, err)
		return EmptyBlocklist()
	}

	return NewBlocklist(domains)
}

// Len reports how many domains are blocked.
func (b *Blocklist) Len() int {
	return len(b.domains)
}

// Blocks reports whether the email's domain part is on the blocklist.
// Emails without a well-formed domain part are not blocked here; the
// validity filters handle those.
func (b *Blocklist) Blocks(email string) bool {
	if len(b.domains) == 0 {
		return false
	}
	parts := strings.Split(strings.ToLower(email), "@")
	if len(parts) != 2 || parts[1] == "" {
		return false
	}
	_, blocked := b.domains[parts[1]]
	return blocked
}
