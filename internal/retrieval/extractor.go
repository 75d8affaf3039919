package retrieval

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/jaytaylor/html2text"
)

// Candidate containers for the main article content, in preference order.
// Whatever matches first with enough text wins; otherwise we fall back to the
// whole body.
var articleSelectors = []string{
	"article",
	"main",
	"[role='main']",
	"#content",
	".post-content",
	".entry-content",
	".article-body",
}

// A container shorter than this is assumed to be navigation chrome rather
// than the article itself.
const minArticleChars = 140

// Extractor fetches a page and isolates its readable article content as
// lightly-marked-up text: headings, paragraphs, and lists survive, layout
// markup does not.
type Extractor struct {
	client  *http.Client
	timeout time.Duration
}

func NewExtractor(timeout time.Duration) *Extractor {
	client := retryablehttp.NewClient()
	client.Logger = nil

	return &Extractor{
		client:  client.StandardClient(),
		timeout: timeout,
	}
}

// Extract fetches the URL and returns the article body as text. It returns a
// *FetchError when the page cannot be fetched and ErrNoArticle when the page
// has no isolatable content.
func (e *Extractor) Extract(ctx context.Context, url string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	// Many servers refuse requests that don't look like they come from a
	// browser.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Referer", "https://www.google.com/")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	content, err := isolateArticle(doc)
	if err != nil {
		return "", err
	}

	text, err := html2text.FromString(content, html2text.Options{OmitLinks: true})
	if err != nil {
		return "", ErrNoArticle
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoArticle
	}

	return text, nil
}

// isolateArticle returns the HTML of the page's main content block.
func isolateArticle(doc *goquery.Document) (string, error) {
	doc.Find("script, style, noscript, nav, header, footer, aside, form").Remove()

	for _, selector := range articleSelectors {
		selection := doc.Find(selector).First()
		if selection.Length() == 0 {
			continue
		}

		if len(strings.TrimSpace(selection.Text())) < minArticleChars {
			continue
		}

		return goquery.OuterHtml(selection)
	}

	body := doc.Find("body").First()
	if body.Length() == 0 || strings.TrimSpace(body.Text()) == "" {
		return "", ErrNoArticle
	}

	return goquery.OuterHtml(body)
}
