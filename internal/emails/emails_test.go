package emails

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEmailsFilters(t *testing.T) {
	h := NewHarvester(NewBlocklist([]string{"trashmail.example"}))
	html := `<html><body>
		<p>info@example.com</p>
		<p>jane@realbiz.com</p>
		<p>burner@trashmail.example</p>
	</body></html>`

	emails := h.ExtractEmails(html)

	assert.Equal(t, []string{"jane@realbiz.com"}, emails)
}

func TestExtractEmailsFromMailtoLinks(t *testing.T) {
	h := NewHarvester(nil)
	html := `<a href="mailto:Pat.Lee@realbiz.com?subject=Hi">Email Pat</a>`

	emails := h.ExtractEmails(html)

	assert.Equal(t, []string{"pat.lee@realbiz.com"}, emails)
}

func TestExtractEmailsSkipsMalformedMailto(t *testing.T) {
	h := NewHarvester(nil)
	html := `<a href="mailto:contact-page">Contact</a>
		<a href="mailto:pat@realbiz.com">Pat</a>`

	emails := h.ExtractEmails(html)

	assert.Equal(t, []string{"pat@realbiz.com"}, emails)
}

func TestExtractEmailsCaseInsensitiveDedup(t *testing.T) {
	h := NewHarvester(nil)
	html := `<p>Jane@RealBiz.com</p><a href="mailto:jane@realbiz.com">mail</a>`

	emails := h.ExtractEmails(html)

	assert.Equal(t, []string{"jane@realbiz.com"}, emails)
}

func TestIsValidEmail(t *testing.T) {
	h := NewHarvester(NewBlocklist([]string{"mailinator.test"}))

	tests := []struct {
		email string
		want  bool
	}{
		{"jane@realbiz.com", true},
		{"info@realbiz.com", false},
		{"Support@realbiz.com", false},
		{"jane@example.com", false},
		{"jane@test.com", false},
		{"jane@mailinator.test", false},
		{"icon@assets.svg", false},
		{"sprite@theme.css", false},
		{"first.last+tag@realbiz.co.uk", true},
		{"contact-page", false},
		{"@realbiz.com", false},
		{"jane@", false},
		{"jane@real@biz.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, h.IsValidEmail(tt.email))
		})
	}
}

func TestLoadBlocklist(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`["spam.example", "Trash.Example"]`), 0o644))

	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte(`{"not":`), 0o644))

	wrongShape := filepath.Join(dir, "wrong.json")
	require.NoError(t, os.WriteFile(wrongShape, []byte(`{"domains": ["spam.example"]}`), 0o644))

	t.Run("valid document", func(t *testing.T) {
		b := LoadBlocklist(valid)
		assert.Equal(t, 2, b.Len())
		assert.True(t, b.Blocks("joe@spam.example"))
		assert.True(t, b.Blocks("joe@trash.example"))
		assert.False(t, b.Blocks("joe@realbiz.com"))
	})

	t.Run("missing file degrades to empty", func(t *testing.T) {
		b := LoadBlocklist(filepath.Join(dir, "nope.json"))
		assert.Equal(t, 0, b.Len())
		assert.False(t, b.Blocks("joe@spam.example"))
	})

	t.Run("malformed json degrades to empty", func(t *testing.T) {
		assert.Equal(t, 0, LoadBlocklist(malformed).Len())
	})

	t.Run("schema violation degrades to empty", func(t *testing.T) {
		assert.Equal(t, 0, LoadBlocklist(wrongShape).Len())
	})
}

func TestInternalLinks(t *testing.T) {
	html := `<body>
		<a href="/team">Team</a>
		<a href="https://other.example/page">External</a>
		<a href="#section">Anchor</a>
		<a href="mailto:x@y.com">Mail</a>
		<a href="tel:+1555">Call</a>
		<a href="about">Relative</a>
	</body>`

	links := InternalLinks(html, "https://realbiz.com/", "realbiz.com")

	assert.Equal(t, []string{
		"https://realbiz.com/about",
		"https://realbiz.com/team",
	}, links)
}

func TestCrawlPrioritizesContactPaths(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `<html><body>
			<p>bob@widgets.example</p>
			<a href="/hidden">Hidden</a>
		</body></html>`)
	})
	mux.HandleFunc("/contact", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<p>carol@widgets.example</p>`)
	})
	mux.HandleFunc("/hidden", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<p>dave@widgets.example</p>`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	h := NewHarvester(nil)
	home := `<html><body><p>bob@widgets.example</p><a href="/hidden">Hidden</a></body></html>`

	// Budget of 2 pages: homepage plus one more. The contact path wins over
	// the internal link.
	emails := h.Crawl(context.Background(), server.URL, "widgets.example", home,
		CrawlOptions{MaxPages: 2})

	assert.Equal(t, []string{"bob@widgets.example", "carol@widgets.example"}, emails)
}

func TestCrawlSkipsNonHTMLAndFailures(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/contact", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		fmt.Fprint(w, `ghost@widgets.example`)
	})
	mux.HandleFunc("/team", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<p>erin@widgets.example</p>`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	h := NewHarvester(nil)

	emails := h.Crawl(context.Background(), server.URL, "widgets.example", "<html></html>",
		CrawlOptions{MaxPages: 5})

	// The PDF and every 404 path are skipped without consuming budget.
	assert.Equal(t, []string{"erin@widgets.example"}, emails)
}

func TestCrawlRespectsMaxPages(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprintf(w, `<p>person%d@widgets.example</p>`, hits)
	}))
	defer server.Close()

	h := NewHarvester(nil)

	emails := h.Crawl(context.Background(), server.URL, "widgets.example",
		`<p>seed@widgets.example</p>`, CrawlOptions{MaxPages: 1})

	// Homepage is the whole budget; no extra requests are made.
	assert.Equal(t, []string{"seed@widgets.example"}, emails)
	assert.Equal(t, 0, hits)
}
