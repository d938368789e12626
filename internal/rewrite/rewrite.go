// Package rewrite optionally polishes composed outreach emails for
// deliverability via an LLM. The stage fails open: any failure returns the
// original subject and body, and the metadata records why.
package rewrite

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/closespark/stackscanner/internal/llm"
)

const systemPrompt = `You are an email deliverability and outbound copywriting specialist.

You take a short, already-structured cold email and:
- keep it SHORT (approximately 80-140 words)
- keep the tone professional, friendly, and conversational
- avoid all spammy signals ("FREE", "guarantee", excessive hype, ALL CAPS, etc.)
- preserve intent: this is a real technical consultant/agency offering help
- avoid heavy formatting (no bullet spam, no long walls of text)
- keep links EXACTLY as provided (do not change URLs)
- keep names, company name, city, hourly rate EXACTLY as provided
- avoid emojis, images, and exaggerated claims.

You must:
- return valid JSON with keys: "subject" and "body"
- keep the subject line short and natural (3-7 words ideally)
- keep the body as a plain-text email (no HTML), with sensible line breaks.`

// Meta records whether the rewrite was applied and why not, when skipped.
type Meta struct {
	Model       string `json:"rewrite_model,omitempty"`
	RewriteUsed bool   `json:"rewrite_used"`
	Reason      string `json:"rewrite_reason,omitempty"`
}

// Context carries the email's fixed facts so the model knows what must be
// preserved verbatim.
type Context map[string]string

// Rewriter polishes outreach emails through an LLM client. A nil client is
// valid and makes every rewrite a no-op.
type Rewriter struct {
	client llm.Client
	tier   llm.ModelTier
}

// NewRewriter builds a rewriter. Pass a nil client to disable rewriting
// while keeping the pipeline shape unchanged.
func NewRewriter(client llm.Client) *Rewriter {
	return &Rewriter{client: client, tier: llm.TierStandard}
}

type rewritePayload struct {
	OriginalSubject string         `json:"original_subject"`
	OriginalBody    string         `json:"original_body"`
	Context         Context        `json:"context"`
	Instructions    map[string]any `json:"instructions"`
}

type rewriteResponse struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Rewrite asks the model to polish the subject and body. On any failure the
// original text comes back and Meta.Reason says what went wrong; the caller
// never has to handle an error.
func (r *Rewriter) Rewrite(ctx context.Context, subject, body string, info Context) (string, string, Meta) {
	meta := Meta{}

	if r == nil || r.client == nil {
		meta.Reason = "no_client"
		return subject, body, meta
	}
	meta.Model = r.client.GetModel(r.tier)

	payload, err := json.Marshal(rewritePayload{
		OriginalSubject: subject,
		OriginalBody:    body,
		Context:         info,
		Instructions: map[string]any{
			"keep_links_exact":              true,
			"keep_names_company_rate_exact": true,
			"max_word_range":                "80-140",
			"no_html":                       true,
		},
	})
	if err != nil {
		meta.Reason = "payload_error"
		return subject, body, meta
	}

	raw, err := r.client.GenerateJSON(ctx, systemPrompt+"\n\n"+string(payload), r.tier)
	if err != nil {
		log.Printf("[REWRITE] generation failed, keeping original: %v", err)
		meta.Reason = "client_error"
		return subject, body, meta
	}

	var resp rewriteResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		log.Printf("[REWRITE] malformed response, keeping original: %v", err)
		meta.Reason = "bad_response"
		return subject, body, meta
	}

	newSubject := strings.TrimSpace(resp.Subject)
	newBody := strings.TrimSpace(resp.Body)
	if newSubject == "" {
		newSubject = subject
	}
	if newBody == "" {
		newBody = body
	}

	meta.RewriteUsed = true
	return newSubject, newBody, meta
}
