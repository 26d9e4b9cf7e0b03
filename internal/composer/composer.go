// Package composer turns a retrieved answer into the text shown to the user.
package composer

import (
	"fmt"
	"strings"

	"studyqa/internal/domain"
	"studyqa/internal/emoji"
)

// Fixed sentences appended by the intent templates.
const (
	ReasonNote     = "This occurs due to system design and resource usage."
	ComparisonNote = "If you want, I can explain with a table."
	ExamTip        = "This concept is very important for exams."
)

// Composer formats answers. It holds no per-query state.
type Composer struct {
	summarizer domain.Summarizer
}

// New returns a Composer that uses summarizer for the plain-terms restatement.
func New(summarizer domain.Summarizer) *Composer {
	return &Composer{summarizer: summarizer}
}

// Header is the first line of every composed answer.
func Header(subject, source string) string {
	return fmt.Sprintf("[%s] · %s", subject, source)
}

// Compose renders raw under the template selected by meta.Intent.
func (c *Composer) Compose(raw string, meta domain.QueryMeta, source string) string {
	var b strings.Builder
	b.WriteString(Header(meta.Subject, source))
	b.WriteString("\n")

	switch meta.Intent {
	case domain.IntentDefinition:
		label(&b, "definition", "Definition:")
		b.WriteString(raw)
	case domain.IntentReason:
		label(&b, "reason", "Why does this happen?")
		b.WriteString(raw)
		b.WriteString("\n\n")
		b.WriteString(ReasonNote)
	case domain.IntentComparison:
		label(&b, "comparison", "Comparison Insight:")
		b.WriteString(raw)
		b.WriteString("\n\n")
		b.WriteString(ComparisonNote)
	default:
		key := "explanation"
		if meta.Intent == domain.IntentGeneral {
			key = "general"
		}
		label(&b, key, "Detailed Explanation:")
		b.WriteString(raw)
		c.elaborate(&b, raw, meta.Subject)
	}
	return b.String()
}

// NoMatch is the reply when no source is confident enough. It does not
// depend on corpus contents.
func (c *Composer) NoMatch() string {
	return fmt.Sprintf("I'm not confident about this question yet %s.\n"+
		"Please try rephrasing it or ask from your syllabus topics.", emoji.Get("unsure"))
}

func (c *Composer) elaborate(b *strings.Builder, raw, subject string) {
	plain := raw
	if c.summarizer != nil {
		if s, err := c.summarizer.Summarize(raw, 1); err == nil && s != "" {
			plain = s
		}
	}
	sections := []struct{ title, body string }{
		{"In simple terms", plain},
		{"Why it matters", fmt.Sprintf("It is one of the core ideas of %s and other topics build on it.", subject)},
		{"Example", "Try applying the idea to a small case from your notes and trace each step by hand."},
		{"Exam tip", fmt.Sprintf("%s %s", emoji.Get("tip"), ExamTip)},
	}
	for _, s := range sections {
		fmt.Fprintf(b, "\n\n%s: %s", s.title, s.body)
	}
}

func label(b *strings.Builder, key, text string) {
	b.WriteString(emoji.Get(key))
	b.WriteString(" ")
	b.WriteString(text)
	b.WriteString("\n")
}
