package vectorstore

import (
	"studyqa/internal/domain"
	"studyqa/internal/embedding/tfidf"
)

// Storage keeps one vector per indexed document and ranks queries against them.
type Storage interface {
	Upsert(vectors []tfidf.Vector) error
	Rank(query tfidf.Vector) []domain.Match
	Len() int
	Clear() error
}
