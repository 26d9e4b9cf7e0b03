package summarizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"studyqa/internal/textnorm"
)

const defaultMaxSentences = 5

var sentenceRe = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// stopwords never contribute to a sentence's weight.
var stopwords = toSet(
	"an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at",
	"by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "its", "this",
	"that", "these", "those", "from", "into", "about", "between", "through", "during", "before",
	"after", "than", "so", "such", "can", "will", "just", "should", "which", "when", "where",
	"each", "also", "has", "have", "not", "no", "do", "does",
)

// FrequencySummarizer picks the sentences whose content words recur most
// often in the answer. It is used for the "In simple terms" restatement.
type FrequencySummarizer struct{}

// NewFrequencySummarizer returns a FrequencySummarizer.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{}
}

type rankedSentence struct {
	pos    int
	weight float64
}

// Summarize returns the maxSentences heaviest sentences of text in their
// original order. Text without sentence punctuation is returned trimmed.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = defaultMaxSentences
	}
	sentences := sentenceRe.FindAllString(text, -1)
	if len(sentences) == 0 {
		return strings.TrimSpace(text), nil
	}

	words := make([][]string, len(sentences))
	counts := map[string]float64{}
	peak := 0.0
	for i, sent := range sentences {
		words[i] = contentWords(sent)
		for _, w := range words[i] {
			counts[w]++
			peak = math.Max(peak, counts[w])
		}
	}

	ranked := make([]rankedSentence, len(sentences))
	for i, ws := range words {
		ranked[i] = rankedSentence{pos: i}
		if len(ws) == 0 {
			continue
		}
		for _, w := range ws {
			ranked[i].weight += counts[w] / peak
		}
		// Long sentences would otherwise always win.
		ranked[i].weight /= math.Sqrt(float64(len(ws)))
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].weight > ranked[j].weight })

	keep := ranked[:min(maxSentences, len(ranked))]
	sort.Slice(keep, func(i, j int) bool { return keep[i].pos < keep[j].pos })

	parts := make([]string, len(keep))
	for i, r := range keep {
		parts[i] = strings.TrimSpace(sentences[r.pos])
	}
	return strings.Join(parts, " "), nil
}

func contentWords(sentence string) []string {
	var out []string
	for _, t := range textnorm.Tokens(sentence) {
		if _, skip := stopwords[t]; !skip {
			out = append(out, t)
		}
	}
	return out
}

func toSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
