// Package index provides the per-source vector index: a TF-IDF vector
// space fitted once over a fixed corpus and scored against queries.
package index

import (
	"studyqa/internal/domain"
	"studyqa/internal/embedding/tfidf"
	"studyqa/internal/textnorm"
	"studyqa/internal/vectorstore"
	"studyqa/internal/vectorstore/memory"
)

// Index is immutable after Build and may be shared by concurrent queries.
type Index struct {
	vectorizer *tfidf.Vectorizer
	store      vectorstore.Storage
}

// Build fits a vector space over docs. Document i keeps index i.
// It fails with domain.ErrEmptyCorpus when docs is empty.
func Build(docs []string) (*Index, error) {
	normalized := make([]string, len(docs))
	for i, d := range docs {
		normalized[i] = textnorm.Normalize(d)
	}
	vz, err := tfidf.Fit(normalized)
	if err != nil {
		return nil, err
	}
	vectors := make([]tfidf.Vector, len(normalized))
	for i, d := range normalized {
		vectors[i] = vz.Transform(d)
	}
	st := memory.NewStorage()
	if err := st.Upsert(vectors); err != nil {
		return nil, err
	}
	return &Index{vectorizer: vz, store: st}, nil
}

// Score returns one match per document, ordered by descending cosine
// similarity with ties broken by ascending document index.
func (ix *Index) Score(query string) []domain.Match {
	return ix.store.Rank(ix.vectorizer.Transform(textnorm.Normalize(query)))
}

// Best returns the top match. ok is false only for an index with no documents.
func (ix *Index) Best(query string) (m domain.Match, ok bool) {
	res := ix.Score(query)
	if len(res) == 0 {
		return domain.Match{}, false
	}
	return res[0], true
}

// Len returns the number of indexed documents.
func (ix *Index) Len() int { return ix.store.Len() }

// VocabularySize returns the number of distinct terms in the vector space.
func (ix *Index) VocabularySize() int { return ix.vectorizer.Dimension() }
