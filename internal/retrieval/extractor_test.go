package retrieval

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, html)
	}))
	t.Cleanup(server.Close)

	return server
}

func TestExtractIsolatesArticle(t *testing.T) {
	server := serveHTML(t, `<html><body>
		<nav><a href="/">Home</a> <a href="/about">About</a></nav>
		<script>trackEverything();</script>
		<article>
			<h1>On Keeping Cats</h1>
			<p>Cats are small domesticated carnivorous mammals. They are popular pets worldwide.</p>
			<p>This second paragraph exists so the content block is long enough to be treated as an article.</p>
			<ul><li>They purr</li><li>They nap</li></ul>
		</article>
		<footer>All rights reserved</footer>
	</body></html>`)

	extractor := NewExtractor(5 * time.Second)

	text, err := extractor.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	if !strings.Contains(text, "popular pets worldwide") {
		t.Fatalf("article body missing from output: %q", text)
	}
	if !strings.Contains(text, "They purr") {
		t.Fatalf("list content missing from output: %q", text)
	}
	if strings.Contains(text, "trackEverything") {
		t.Fatalf("script leaked into output: %q", text)
	}
	if strings.Contains(text, "All rights reserved") {
		t.Fatalf("footer leaked into output: %q", text)
	}

	// Heading and paragraphs must stay on separate blocks so the chunker sees
	// natural boundaries.
	if !strings.Contains(text, "\n") {
		t.Fatalf("structure flattened to a single line: %q", text)
	}
}

func TestExtractFallsBackToBody(t *testing.T) {
	server := serveHTML(t, `<html><body>
		<p>No article tag here, just a plain page with a reasonable amount of text in its body for reading.</p>
	</body></html>`)

	extractor := NewExtractor(5 * time.Second)

	text, err := extractor.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(text, "plain page") {
		t.Fatalf("body fallback missing content: %q", text)
	}
}

func TestExtractNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	extractor := NewExtractor(5 * time.Second)

	_, err := extractor.Extract(context.Background(), server.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 in error, got %d", fetchErr.StatusCode)
	}
}

func TestExtractNoContent(t *testing.T) {
	server := serveHTML(t, `<html><body><script>nothing()</script></body></html>`)

	extractor := NewExtractor(5 * time.Second)

	_, err := extractor.Extract(context.Background(), server.URL)
	if !errors.Is(err, ErrNoArticle) {
		t.Fatalf("expected ErrNoArticle, got %v", err)
	}
}

func TestExtractSendsBrowserHeaders(t *testing.T) {
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<html><body><p>Enough text in the body of this page to extract something readable from it.</p></body></html>`)
	}))
	t.Cleanup(server.Close)

	extractor := NewExtractor(5 * time.Second)

	if _, err := extractor.Extract(context.Background(), server.URL); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(gotUserAgent, "Mozilla") {
		t.Fatalf("expected a browser-like User-Agent, got %q", gotUserAgent)
	}
}
