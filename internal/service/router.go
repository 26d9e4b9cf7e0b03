package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"studyqa/internal/chunker"
	"studyqa/internal/classify"
	"studyqa/internal/composer"
	"studyqa/internal/config"
	"studyqa/internal/dataset"
	"studyqa/internal/domain"
	"studyqa/internal/extract"
	"studyqa/internal/index"
	"studyqa/internal/logging"
	"studyqa/internal/selector"
	"studyqa/internal/summarizer"
)

// Kind tells where a source's corpus came from.
type Kind string

const (
	KindDataset  Kind = "dataset"
	KindDocument Kind = "document"
)

// source is one searchable corpus. A nil index means the source is
// disabled; disabled sources are kept only for reporting.
type source struct {
	label    string
	subject  string
	kind     Kind
	path     string
	accept   float64
	index    *index.Index
	payloads []string
	err      error
}

// Deps are the collaborators of the router. Zero values are replaced by
// the default implementations.
type Deps struct {
	Logger     *slog.Logger
	Extractor  domain.TextExtractor
	Summarizer domain.Summarizer
}

// Router answers queries against every enabled source. All state is
// built in New and read-only afterwards.
type Router struct {
	sources  []*source
	active   []*source
	selector *selector.Selector
	composer *composer.Composer
	log      *slog.Logger
}

// Answer is the detailed result of a query.
type Answer struct {
	Query      string               `json:"query"`
	Text       string               `json:"text"`
	Meta       domain.QueryMeta     `json:"meta"`
	Outcome    selector.Outcome     `json:"outcome"`
	Candidates []selector.Candidate `json:"candidates"`
}

// SourceInfo describes a configured source for diagnostics.
type SourceInfo struct {
	Label      string `json:"label"`
	Subject    string `json:"subject,omitempty"`
	Kind       Kind   `json:"kind"`
	Path       string `json:"path"`
	Enabled    bool   `json:"enabled"`
	Size       int    `json:"size"`
	Vocabulary int    `json:"vocabulary"`
	Reason     string `json:"reason,omitempty"`
}

// New validates cfg and builds every source index. A missing, malformed
// or empty dataset is fatal; unusable documents only disable their source.
func New(cfg *config.AppConfig, deps Deps) (*Router, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.Extractor == nil {
		deps.Extractor = extract.New()
	}
	if deps.Summarizer == nil {
		deps.Summarizer = summarizer.NewFrequencySummarizer()
	}
	sel, err := selector.New(cfg.SelectorConfig())
	if err != nil {
		return nil, err
	}
	ch, err := chunker.NewWordChunker(cfg.Chunker.Window)
	if err != nil {
		return nil, err
	}

	r := &Router{
		selector: sel,
		composer: composer.New(deps.Summarizer),
		log:      deps.Logger,
	}

	primary, err := r.buildDataset(cfg.Dataset)
	if err != nil {
		return nil, err
	}
	r.add(primary)

	for _, d := range cfg.Documents {
		r.add(r.buildDocument(d, deps.Extractor, ch))
	}
	return r, nil
}

func (r *Router) add(s *source) {
	r.sources = append(r.sources, s)
	if s.index != nil {
		r.active = append(r.active, s)
	}
}

func (r *Router) buildDataset(dc config.DatasetConfig) (*source, error) {
	entries, err := dataset.LoadFile(dc.Path)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("dataset %s: %w", dc.Path, domain.ErrEmptyCorpus)
	}
	ix, err := index.Build(dataset.Questions(entries))
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", dc.Path, err)
	}
	answers := make([]string, len(entries))
	for i, e := range entries {
		answers[i] = e.Answer
	}
	r.log.Info("Indexed dataset",
		slog.String("source", dc.Label),
		slog.Int("entries", ix.Len()),
		slog.Int("vocabulary", ix.VocabularySize()))
	return &source{
		label:    dc.Label,
		kind:     KindDataset,
		path:     dc.Path,
		accept:   dc.AcceptThreshold,
		index:    ix,
		payloads: answers,
	}, nil
}

func (r *Router) buildDocument(dc config.DocumentConfig, ex domain.TextExtractor, ch *chunker.WordChunker) *source {
	s := &source{
		label:   dc.Label,
		subject: dc.Subject,
		kind:    KindDocument,
		path:    dc.Path,
		accept:  dc.AcceptThreshold,
	}
	text := ex.ExtractText(dc.Path)
	if strings.TrimSpace(text) == "" {
		s.err = fmt.Errorf("%s: %w", dc.Path, domain.ErrMissingSourceDocument)
		r.log.Warn("Source disabled", slog.String("source", dc.Label), slog.Any("error", s.err))
		return s
	}
	chunks := ch.Chunk(domain.Document{ID: dc.Label, Path: dc.Path, Content: text})
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	ix, err := index.Build(texts)
	if err != nil {
		s.err = fmt.Errorf("%s: %w", dc.Path, err)
		r.log.Warn("Source disabled", slog.String("source", dc.Label), slog.Any("error", s.err))
		return s
	}
	s.index = ix
	s.payloads = texts
	r.log.Info("Indexed document",
		slog.String("source", dc.Label),
		slog.Int("chunks", ix.Len()),
		slog.Int("vocabulary", ix.VocabularySize()))
	return s
}

// Answer returns the reply text for query. It never fails; queries that
// match nothing get the low-confidence message.
func (r *Router) Answer(query string) string {
	return r.Ask(query).Text
}

// Ask scores query against every enabled source and selects the reply.
func (r *Router) Ask(query string) Answer {
	meta := classify.Tag(query)
	candidates := make([]selector.Candidate, 0, len(r.active))
	for _, s := range r.active {
		best, ok := s.index.Best(query)
		if !ok {
			continue
		}
		best.Source = s.label
		candidates = append(candidates, selector.Candidate{
			Source:          best.Source,
			Score:           best.Score,
			Payload:         s.payloads[best.Index],
			AcceptThreshold: s.accept,
		})
		r.log.Debug("Scored source",
			slog.String("source", best.Source),
			slog.Int("best_index", best.Index),
			slog.Float64("score", best.Score))
	}

	out := r.selector.Select(candidates, meta.Subject)
	ans := Answer{Query: query, Meta: meta, Outcome: out, Candidates: candidates}
	if !out.Matched {
		ans.Text = r.composer.NoMatch()
		r.log.Debug("No confident match", slog.String("subject", meta.Subject))
		return ans
	}
	ans.Text = r.composer.Compose(out.Payload, meta, out.Source)
	r.log.Debug("Answered",
		slog.String("source", out.Source),
		slog.String("intent", string(meta.Intent)),
		slog.String("subject", meta.Subject),
		slog.Float64("score", out.Score))
	return ans
}

// Policy returns the active selection policy.
func (r *Router) Policy() selector.Policy { return r.selector.Policy() }

// Sources reports every configured source in selection order.
func (r *Router) Sources() []SourceInfo {
	out := make([]SourceInfo, len(r.sources))
	for i, s := range r.sources {
		info := SourceInfo{
			Label:   s.label,
			Subject: s.subject,
			Kind:    s.kind,
			Path:    s.path,
			Enabled: s.index != nil,
		}
		if s.index != nil {
			info.Size = s.index.Len()
			info.Vocabulary = s.index.VocabularySize()
		}
		if s.err != nil {
			info.Reason = reason(s.err)
		}
		out[i] = info
	}
	return out
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingSourceDocument):
		return "no text extracted"
	case errors.Is(err, domain.ErrEmptyCorpus):
		return "empty corpus"
	default:
		return err.Error()
	}
}
