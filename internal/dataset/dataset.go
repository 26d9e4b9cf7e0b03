// Package dataset loads the question/answer corpus from a CSV file.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"studyqa/internal/domain"
)

// Required column names, matched case-insensitively.
const (
	QuestionColumn = "question"
	AnswerColumn   = "answer"
)

// LoadFile reads the dataset at path. A missing or malformed file is an
// error; callers treat it as fatal.
func LoadFile(path string) ([]domain.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}
	defer f.Close()

	entries, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Load parses CSV with a header row containing question and answer
// columns in any position. Extra columns are ignored. Rows keep their order.
func Load(r io.Reader) ([]domain.Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", domain.ErrInvalidDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
	}

	qi, ai := -1, -1
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))) {
		case QuestionColumn:
			qi = i
		case AnswerColumn:
			ai = i
		}
	}
	if qi < 0 || ai < 0 {
		return nil, fmt.Errorf("%w: header must contain %q and %q columns", domain.ErrInvalidDataset, QuestionColumn, AnswerColumn)
	}

	var entries []domain.Entry
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDataset, err)
		}
		if qi >= len(rec) || ai >= len(rec) {
			return nil, fmt.Errorf("%w: row %d has %d fields", domain.ErrInvalidDataset, line, len(rec))
		}
		entries = append(entries, domain.Entry{
			Question: strings.TrimSpace(rec[qi]),
			Answer:   strings.TrimSpace(rec[ai]),
		})
	}
	return entries, nil
}

// Questions returns the question text of every entry, in order.
func Questions(entries []domain.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Question
	}
	return out
}
