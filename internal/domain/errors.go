package domain

import "errors"

// Startup errors. Query handling never returns these; a query that
// cannot be answered produces a no-match outcome instead.
var (
	// ErrConfiguration indicates an invalid chunk window, threshold or
	// selection policy.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrEmptyCorpus indicates a source has no entries to index.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrMissingSourceDocument indicates document extraction produced no text.
	// The source is disabled rather than failing startup.
	ErrMissingSourceDocument = errors.New("source document missing or empty")

	// ErrInvalidDataset indicates the dataset file is unreadable or lacks
	// the question/answer columns.
	ErrInvalidDataset = errors.New("invalid dataset")
)
