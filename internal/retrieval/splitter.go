package retrieval

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]+`)

// Splitter splits text into chunks of at most chunkSize characters, preferring
// paragraph breaks, then sentence breaks, before cutting mid-sentence. Output
// depends only on the input, so re-ingesting the same text reproduces the same
// chunk boundaries.
type Splitter struct {
	chunkSize    int
	chunkOverlap int
}

// NewSplitter returns a new Splitter. chunkOverlap only applies to the
// mid-sentence cut, where neighbouring windows share a tail so no phrase is
// severed without context.
func NewSplitter(chunkSize, chunkOverlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("chunkSize must be greater than 0")
	}

	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, fmt.Errorf("chunkOverlap must be smaller than chunkSize")
	}

	return &Splitter{
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}, nil
}

// SplitText splits text into chunks. Empty input yields no chunks; no chunk is
// ever empty or longer than chunkSize characters.
func (s *Splitter) SplitText(t string) []string {
	chunks := make([]string, 0)

	var pending []string
	pendingLen := 0

	flush := func() {
		if len(pending) > 0 {
			chunks = append(chunks, strings.Join(pending, "\n\n"))
			pending = nil
			pendingLen = 0
		}
	}

	for _, paragraph := range splitParagraphs(t) {
		size := utf8.RuneCountInString(paragraph)

		if size > s.chunkSize {
			flush()
			chunks = append(chunks, s.splitParagraph(paragraph)...)
			continue
		}

		// +2 for the paragraph separator.
		if pendingLen > 0 && pendingLen+2+size > s.chunkSize {
			flush()
		}

		pending = append(pending, paragraph)
		pendingLen += size
		if len(pending) > 1 {
			pendingLen += 2
		}
	}

	flush()
	return chunks
}

// splitParagraph handles a single paragraph that is longer than chunkSize:
// pack whole sentences first, hard-cut only sentences that are themselves too
// long. A trailing fragment without terminal punctuation counts as a sentence,
// so no part of the paragraph is ever dropped.
func (s *Splitter) splitParagraph(paragraph string) []string {
	var sentences []string

	end := 0
	for _, match := range sentencePattern.FindAllStringIndex(paragraph, -1) {
		sentences = append(sentences, paragraph[match[0]:match[1]])
		end = match[1]
	}
	if tail := paragraph[end:]; strings.TrimSpace(tail) != "" {
		sentences = append(sentences, tail)
	}

	chunks := make([]string, 0)

	var pending []string
	pendingLen := 0

	flush := func() {
		if len(pending) > 0 {
			chunks = append(chunks, strings.Join(pending, " "))
			pending = nil
			pendingLen = 0
		}
	}

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		size := utf8.RuneCountInString(sentence)

		if size > s.chunkSize {
			flush()
			chunks = append(chunks, s.hardCut(sentence)...)
			continue
		}

		if pendingLen > 0 && pendingLen+1+size > s.chunkSize {
			flush()
		}

		pending = append(pending, sentence)
		pendingLen += size
		if len(pending) > 1 {
			pendingLen++
		}
	}

	flush()
	return chunks
}

// hardCut slices text into fixed windows of chunkSize runes, stepping by
// chunkSize-chunkOverlap so consecutive windows share a tail.
func (s *Splitter) hardCut(text string) []string {
	runes := []rune(text)
	chunks := make([]string, 0)

	step := s.chunkSize - s.chunkOverlap
	for i := 0; i < len(runes); i += step {
		end := i + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}

		chunk := strings.TrimSpace(string(runes[i:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}
	}

	return chunks
}

// splitParagraphs breaks text on blank lines and drops empty blocks.
func splitParagraphs(t string) []string {
	blocks := strings.Split(strings.ReplaceAll(t, "\r\n", "\n"), "\n\n")

	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block != "" {
			paragraphs = append(paragraphs, block)
		}
	}

	return paragraphs
}
