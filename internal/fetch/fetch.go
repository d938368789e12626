// Package fetch provides HTTP page retrieval for domain scanning.
// It centralizes the fetching behavior shared by the detectors and the
// email crawler: timeouts, user agent, redirect following, and the
// HTTPS-to-HTTP fallback for sites with broken TLS.
package fetch

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Result holds the content and metadata from a page fetch.
type Result struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
	Headers     http.Header
}

// Error represents an error during page fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client // optional; overrides Timeout when set
}

// DefaultOptions returns sensible defaults for scanning.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// NormalizeDomain turns raw domain input into a fetchable URL.
// Bare domains get an https scheme; scheme-qualified input is reduced
// to scheme://host.
func NormalizeDomain(domain string) string {
	domain = strings.TrimSpace(domain)

	if strings.HasPrefix(domain, "http://") || strings.HasPrefix(domain, "https://") {
		if parsed, err := url.Parse(domain); err == nil && parsed.Host != "" {
			return fmt.Sprintf("%s://%s", parsed.Scheme, parsed.Host)
		}
	}

	return "https://" + domain
}

// CleanDomain extracts the bare host from raw domain input, for use as
// the domain field of scan results.
func CleanDomain(domain string) string {
	normalized := NormalizeDomain(domain)
	if parsed, err := url.Parse(normalized); err == nil && parsed.Host != "" {
		return parsed.Host
	}
	return strings.TrimSpace(domain)
}

// Page retrieves HTML content from a URL. If an HTTPS fetch fails with a
// TLS error, the same URL is retried once over plain HTTP before giving up.
func Page(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result, err := fetchOnce(ctx, urlStr, opts)
	if err == nil {
		return result, nil
	}

	if isTLSError(err) && strings.HasPrefix(urlStr, "https://") {
		httpURL := "http://" + strings.TrimPrefix(urlStr, "https://")
		fallback, fallbackErr := fetchOnce(ctx, httpURL, opts)
		if fallbackErr == nil {
			return fallback, nil
		}
		return nil, &Error{
			URL:     urlStr,
			Message: "SSL and HTTP fallback failed",
			Cause:   fallbackErr,
		}
	}

	return nil, err
}

func fetchOnce(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
		Headers:     resp.Header,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}

// isTLSError reports whether err originates from TLS negotiation, which
// signals the HTTPS-to-HTTP fallback.
func isTLSError(err error) bool {
	var recordErr tls.RecordHeaderError
	if errors.As(err, &recordErr) {
		return true
	}
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return true
	}
	// url.Error wraps handshake failures that have no exported type;
	// fall back to message inspection.
	msg := err.Error()
	return strings.Contains(msg, "tls:") || strings.Contains(msg, "x509:")
}

// HeaderMap flattens response headers to a single-value map keyed by the
// original header names, the shape the detectors consume.
func HeaderMap(h http.Header) map[string]string {
	if h == nil {
		return map[string]string{}
	}
	m := make(map[string]string, len(h))
	for name, values := range h {
		if len(values) > 0 {
			m[name] = values[0]
		}
	}
	return m
}
