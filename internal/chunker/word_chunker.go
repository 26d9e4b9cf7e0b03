package chunker

import (
	"fmt"
	"strings"

	"studyqa/internal/domain"
)

// DefaultWindow is the number of words per chunk used when none is configured.
const DefaultWindow = 120

// WordChunker splits text into consecutive, non-overlapping word windows.
type WordChunker struct {
	window int
}

var _ domain.Chunker = (*WordChunker)(nil)

// NewWordChunker returns a chunker producing windows of window words.
func NewWordChunker(window int) (*WordChunker, error) {
	if window <= 0 {
		return nil, fmt.Errorf("%w: chunk window must be positive, got %d", domain.ErrConfiguration, window)
	}
	return &WordChunker{window: window}, nil
}

// Window returns the configured number of words per chunk.
func (c *WordChunker) Window() int { return c.window }

// Split groups the whitespace-separated words of text into windows.
// The final window may be shorter. Empty text yields no windows.
func (c *WordChunker) Split(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	out := make([]string, 0, (len(words)+c.window-1)/c.window)
	for i := 0; i < len(words); i += c.window {
		end := i + c.window
		if end > len(words) {
			end = len(words)
		}
		out = append(out, strings.Join(words[i:end], " "))
	}
	return out
}

// Chunk splits a document, keeping chunk order and the owning document id.
func (c *WordChunker) Chunk(document domain.Document) []domain.Chunk {
	windows := c.Split(document.Content)
	if len(windows) == 0 {
		return nil
	}
	chunks := make([]domain.Chunk, len(windows))
	for i, text := range windows {
		chunks[i] = domain.Chunk{
			DocumentID: document.ID,
			Index:      i,
			Text:       text,
		}
	}
	return chunks
}
