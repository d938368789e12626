package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare domain", "example.com", "https://example.com"},
		{"whitespace trimmed", "  example.com  ", "https://example.com"},
		{"https kept", "https://example.com", "https://example.com"},
		{"http kept", "http://example.com", "http://example.com"},
		{"path dropped", "https://example.com/pricing?x=1", "https://example.com"},
		{"subdomain kept", "shop.example.com", "https://shop.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDomain(tt.input))
		})
	}
}

func TestCleanDomain(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare domain", "example.com", "example.com"},
		{"https stripped", "https://example.com", "example.com"},
		{"path stripped", "http://example.com/about", "example.com"},
		{"port kept", "https://example.com:8443", "example.com:8443"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanDomain(tt.input))
		})
	}
}

func TestPageSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("X-Powered-By", "TestServer")
		fmt.Fprint(w, "<html><body>hello</body></html>")
	}))
	defer server.Close()

	result, err := Page(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "hello")
	assert.Contains(t, result.ContentType, "text/html")
	assert.Equal(t, "TestServer", result.Headers.Get("X-Powered-By"))
}

func TestPageNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	result, err := Page(context.Background(), server.URL, nil)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP status 404")
}

func TestPageConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	result, err := Page(context.Background(), server.URL, nil)
	assert.Nil(t, result)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, server.URL, fetchErr.URL)
}

func TestPageInvalidURL(t *testing.T) {
	result, err := Page(context.Background(), "not a url", nil)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestPageCustomUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, r.Header.Get("User-Agent"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.UserAgent = "stackscan-test/1.0"

	result, err := Page(context.Background(), server.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, "stackscan-test/1.0", result.HTML)
}

func TestHeaderMap(t *testing.T) {
	h := http.Header{}
	h.Set("Content-Type", "text/html")
	h.Add("X-Multi", "first")
	h.Add("X-Multi", "second")

	m := HeaderMap(h)
	assert.Equal(t, "text/html", m["Content-Type"])
	assert.Equal(t, "first", m["X-Multi"])

	assert.NotNil(t, HeaderMap(nil))
	assert.Empty(t, HeaderMap(nil))
}
