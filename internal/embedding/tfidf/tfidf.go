package tfidf

import (
	"fmt"
	"math"
	"sort"

	"studyqa/internal/domain"
	"studyqa/internal/textnorm"
)

// Term is one non-zero dimension of a sparse vector.
type Term struct {
	Dim    int
	Weight float64
}

// Vector is a sparse TF-IDF vector ordered by ascending dimension.
type Vector []Term

// Dot returns the inner product of two vectors.
func (v Vector) Dot(o Vector) float64 {
	sum := 0.0
	i, j := 0, 0
	for i < len(v) && j < len(o) {
		switch {
		case v[i].Dim == o[j].Dim:
			sum += v[i].Weight * o[j].Weight
			i++
			j++
		case v[i].Dim < o[j].Dim:
			i++
		default:
			j++
		}
	}
	return sum
}

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, t := range v {
		sum += t.Weight * t.Weight
	}
	return math.Sqrt(sum)
}

// Vectorizer holds a fixed vocabulary and the IDF value of every term.
// It is immutable after Fit and safe for concurrent use.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// Fit builds the vocabulary and IDF values from the provided corpus.
func Fit(corpus []string) (*Vectorizer, error) {
	if len(corpus) == 0 {
		return nil, fmt.Errorf("%w: no documents to fit", domain.ErrEmptyCorpus)
	}
	// Build vocabulary and document frequencies
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, tok := range textnorm.Tokens(text) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	// Create stable ordering for vocabulary
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocabulary: make(map[string]int, len(terms)),
		idf:        make([]float64, len(terms)),
	}
	n := float64(len(corpus))
	for i, term := range terms {
		v.vocabulary[term] = i
		// Smoothed IDF
		v.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1.0
	}
	return v, nil
}

// Dimension returns the vocabulary size.
func (v *Vectorizer) Dimension() int { return len(v.idf) }

// Transform projects text into the fixed vocabulary and L2-normalizes it.
// Terms outside the vocabulary are ignored; text with no known terms
// yields an empty vector.
func (v *Vectorizer) Transform(text string) Vector {
	tf := make(map[int]int)
	total := 0
	for _, tok := range textnorm.Tokens(text) {
		if idx, ok := v.vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	if total == 0 {
		return nil
	}
	vec := make(Vector, 0, len(tf))
	for idx, count := range tf {
		tfv := float64(count) / float64(total)
		vec = append(vec, Term{Dim: idx, Weight: tfv * v.idf[idx]})
	}
	sort.Slice(vec, func(i, j int) bool { return vec[i].Dim < vec[j].Dim })
	// L2 normalize
	norm := vec.Norm()
	if norm > 0 {
		for i := range vec {
			vec[i].Weight /= norm
		}
	}
	return vec
}
