// Package opengraph fetches the Open Graph metadata a page advertises about
// itself. It is the metadata collaborator of the ingestion pipeline: its
// output is serialized to text and chunked alongside the article body.
package opengraph

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hashicorp/go-retryablehttp"
)

// Data is the subset of Open Graph fields the application stores.
type Data struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Type        string `json:"type"`
	URL         string `json:"url"`
}

// Fetcher retrieves Open Graph metadata over HTTP.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

func NewFetcher(timeout time.Duration) *Fetcher {
	client := retryablehttp.NewClient()
	client.Logger = nil

	return &Fetcher{
		client:  client.StandardClient(),
		timeout: timeout,
	}
}

// Fetch loads the page and reads its og:* meta tags, falling back to the
// document title and description meta tag where og fields are missing.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Data, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching %v: status %v", url, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	data := &Data{
		Title:       metaProperty(doc, "og:title"),
		Description: metaProperty(doc, "og:description"),
		Image:       metaProperty(doc, "og:image"),
		Type:        metaProperty(doc, "og:type"),
		URL:         metaProperty(doc, "og:url"),
	}

	if data.Title == "" {
		data.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}

	if data.Description == "" {
		data.Description, _ = doc.Find(`meta[name="description"]`).First().Attr("content")
		data.Description = strings.TrimSpace(data.Description)
	}

	if data.URL == "" {
		data.URL = url
	}

	return data, nil
}

func metaProperty(doc *goquery.Document, property string) string {
	content, _ := doc.Find(fmt.Sprintf(`meta[property=%q]`, property)).First().Attr("content")
	return strings.TrimSpace(content)
}
