// Package textnorm canonicalizes free text before it is indexed or queried.
package textnorm

import (
	"regexp"
	"strings"
)

// Punctuation is the ASCII punctuation set stripped by Normalize.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var (
	stripper = strings.NewReplacer(punctuationPairs()...)
	tokenRe  = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)
)

// Normalize lower-cases text and removes ASCII punctuation.
// It never fails; whitespace is preserved as-is.
func Normalize(text string) string {
	return stripper.Replace(strings.ToLower(text))
}

// Tokens returns the index terms of text: runs of two or more letters,
// digits or underscores in the normalized text.
func Tokens(text string) []string {
	return tokenRe.FindAllString(Normalize(text), -1)
}

func punctuationPairs() []string {
	pairs := make([]string, 0, 2*len(Punctuation))
	for _, r := range Punctuation {
		pairs = append(pairs, string(r), "")
	}
	return pairs
}
