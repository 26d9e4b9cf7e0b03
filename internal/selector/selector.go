// Package selector decides which source, if any, answers a query.
package selector

import (
	"fmt"

	"studyqa/internal/domain"
)

// Policy names how competing sources are compared.
type Policy string

const (
	// PolicySubjectOverride lets a specialized source answer queries of its
	// subject whenever it has any match, regardless of other scores.
	PolicySubjectOverride Policy = "subject_override"
	// PolicyMaxScore always picks the highest scoring source.
	PolicyMaxScore Policy = "max_score"
)

const (
	DefaultRejectThreshold = 0.2
	DefaultAcceptThreshold = 0.2
)

// Config holds the selection policy and thresholds.
type Config struct {
	Policy          Policy
	RejectThreshold float64
	// SpecializedSubjects maps a subject tag to the label of the source
	// that is authoritative for it.
	SpecializedSubjects map[string]string
}

// Validate reports threshold or policy values outside their domain.
func (c Config) Validate() error {
	switch c.Policy {
	case PolicySubjectOverride, PolicyMaxScore:
	default:
		return fmt.Errorf("%w: unknown selection policy %q (must be one of: %s, %s)",
			domain.ErrConfiguration, c.Policy, PolicySubjectOverride, PolicyMaxScore)
	}
	if c.RejectThreshold < 0 || c.RejectThreshold > 1 {
		return fmt.Errorf("%w: reject threshold %v outside [0,1]", domain.ErrConfiguration, c.RejectThreshold)
	}
	return nil
}

// Candidate is the best match of one source for the current query.
type Candidate struct {
	Source          string  `json:"source"`
	Score           float64 `json:"score"`
	Payload         string  `json:"-"`
	AcceptThreshold float64 `json:"accept_threshold"`
}

// Outcome is either a match or no match; no match is the normal result
// for questions outside the corpus.
type Outcome struct {
	Matched bool    `json:"matched"`
	Source  string  `json:"source,omitempty"`
	Payload string  `json:"payload,omitempty"`
	Score   float64 `json:"score"`
}

// NoMatch is the outcome when no source is confident enough.
var NoMatch = Outcome{}

// Selector applies a Config to per-source candidates.
type Selector struct {
	cfg Config
}

// New validates cfg and returns a Selector.
func New(cfg Config) (*Selector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Selector{cfg: cfg}, nil
}

// Policy returns the configured policy.
func (s *Selector) Policy() Policy { return s.cfg.Policy }

// Select picks the answering candidate. Candidates are considered in
// order, so equal scores resolve to the earlier one.
func (s *Selector) Select(candidates []Candidate, subject string) Outcome {
	if len(candidates) == 0 {
		return NoMatch
	}
	best := 0
	for i := 1; i < len(candidates); i++ {
		if candidates[i].Score > candidates[best].Score {
			best = i
		}
	}
	if candidates[best].Score < s.cfg.RejectThreshold {
		return NoMatch
	}

	if s.cfg.Policy == PolicySubjectOverride {
		if label, ok := s.cfg.SpecializedSubjects[subject]; ok {
			for _, c := range candidates {
				if c.Source == label && c.Score > 0 {
					return matched(c)
				}
			}
		}
	}

	winner := -1
	for i, c := range candidates {
		if c.Score < c.AcceptThreshold {
			continue
		}
		if winner < 0 || c.Score > candidates[winner].Score {
			winner = i
		}
	}
	if winner < 0 {
		return NoMatch
	}
	return matched(candidates[winner])
}

func matched(c Candidate) Outcome {
	return Outcome{Matched: true, Source: c.Source, Payload: c.Payload, Score: c.Score}
}
