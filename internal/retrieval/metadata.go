package retrieval

import "strings"

// Metadata carries the Open Graph fields captured for a bookmark. It is
// serialized to flat text and pushed through the same chunking pipeline as the
// article body, so metadata and content share one chunk pool.
type Metadata struct {
	Title       string
	Description string
	Type        string
	Image       string
	URL         string
}

// Text serializes the metadata as key/value lines. Empty fields are omitted;
// an entirely empty Metadata serializes to "".
func (m Metadata) Text() string {
	var b strings.Builder

	write := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(value)
		b.WriteString("\n")
	}

	write("Title", m.Title)
	write("Description", m.Description)
	write("Type", m.Type)
	write("URL", m.URL)
	write("Image", m.Image)

	return b.String()
}
