package retrieval

import (
	"strings"
	"testing"
)

func TestMetadataText(t *testing.T) {
	meta := Metadata{
		Title:       "On Keeping Cats",
		Description: "An essay about cats as pets.",
		Type:        "article",
		URL:         "https://example.com/cats",
	}

	text := meta.Text()

	for _, want := range []string{
		"Title: On Keeping Cats",
		"Description: An essay about cats as pets.",
		"Type: article",
		"URL: https://example.com/cats",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("serialized metadata missing %q:\n%s", want, text)
		}
	}

	if strings.Contains(text, "Image:") {
		t.Errorf("empty field serialized:\n%s", text)
	}
}

func TestMetadataTextEmpty(t *testing.T) {
	if text := (Metadata{}).Text(); text != "" {
		t.Fatalf("empty metadata serialized to %q", text)
	}
}

func TestMetadataTextDeterministic(t *testing.T) {
	meta := Metadata{Title: "A", Description: "B", Type: "C", Image: "D", URL: "E"}

	if meta.Text() != meta.Text() {
		t.Fatal("metadata serialization is not deterministic")
	}
}
