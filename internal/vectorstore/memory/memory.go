package memory

import (
	"sort"
	"sync"

	"studyqa/internal/domain"
	"studyqa/internal/embedding/tfidf"
)

// Storage is a simple in-memory vector store using brute-force cosine similarity.
type Storage struct {
	mu      sync.RWMutex
	vectors []tfidf.Vector
}

func NewStorage() *Storage { return &Storage{} }

// Upsert appends vectors; their positions become the document indexes.
func (s *Storage) Upsert(vectors []tfidf.Vector) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vectors = append(s.vectors, vectors...)
	return nil
}

// Rank scores every stored vector against query and returns all of them,
// highest score first, ties by ascending index.
func (s *Storage) Rank(query tfidf.Vector) []domain.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	qn := query.Norm()
	matches := make([]domain.Match, len(s.vectors))
	for i, v := range s.vectors {
		matches[i] = domain.Match{Index: i, Score: cosine(query, qn, v)}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.vectors)
}

func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vectors = nil
	return nil
}

// cosine is clamped to [0,1]; weights are non-negative so only rounding
// can push it outside.
func cosine(q tfidf.Vector, qn float64, v tfidf.Vector) float64 {
	vn := v.Norm()
	if qn == 0 || vn == 0 {
		return 0
	}
	c := q.Dot(v) / (qn * vn)
	switch {
	case c < 0:
		return 0
	case c > 1:
		return 1
	}
	return c
}
