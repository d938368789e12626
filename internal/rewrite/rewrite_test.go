package rewrite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/closespark/stackscanner/internal/llm"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func TestRewriteNoClientFailsOpen(t *testing.T) {
	r := NewRewriter(nil)

	subject, body, meta := r.Rewrite(context.Background(), "Orig subject", "Orig body", nil)

	assert.Equal(t, "Orig subject", subject)
	assert.Equal(t, "Orig body", body)
	assert.False(t, meta.RewriteUsed)
	assert.Equal(t, "no_client", meta.Reason)
}

func TestRewriteClientErrorFailsOpen(t *testing.T) {
	r := NewRewriter(&fakeClient{err: errors.New("quota exceeded")})

	subject, body, meta := r.Rewrite(context.Background(), "Orig subject", "Orig body", nil)

	assert.Equal(t, "Orig subject", subject)
	assert.Equal(t, "Orig body", body)
	assert.False(t, meta.RewriteUsed)
	assert.Equal(t, "client_error", meta.Reason)
}

func TestRewriteMalformedResponseFailsOpen(t *testing.T) {
	r := NewRewriter(&fakeClient{response: "not json at all"})

	subject, body, meta := r.Rewrite(context.Background(), "Orig subject", "Orig body", nil)

	assert.Equal(t, "Orig subject", subject)
	assert.Equal(t, "Orig body", body)
	assert.Equal(t, "bad_response", meta.Reason)
}

func TestRewriteSuccess(t *testing.T) {
	client := &fakeClient{response: `{"subject": "Polished subject", "body": "Polished body"}`}
	r := NewRewriter(client)

	subject, body, meta := r.Rewrite(context.Background(), "Orig subject", "Orig body",
		Context{"domain": "acme.com", "main_tech": "Shopify"})

	assert.Equal(t, "Polished subject", subject)
	assert.Equal(t, "Polished body", body)
	assert.True(t, meta.RewriteUsed)
	assert.Empty(t, meta.Reason)
	assert.Equal(t, "fake-model", meta.Model)
	assert.Contains(t, client.prompt, "acme.com")
	assert.Contains(t, client.prompt, "Orig body")
}

func TestRewriteEmptyFieldsKeepOriginals(t *testing.T) {
	r := NewRewriter(&fakeClient{response: `{"subject": "", "body": "  "}`})

	subject, body, meta := r.Rewrite(context.Background(), "Orig subject", "Orig body", nil)

	assert.Equal(t, "Orig subject", subject)
	assert.Equal(t, "Orig body", body)
	assert.True(t, meta.RewriteUsed)
}
