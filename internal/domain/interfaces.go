package domain

// Entry is one question/answer row of the study dataset.
// Its identity is the row index within the dataset.
type Entry struct {
	Question string
	Answer   string
}

// Document represents a single source document after text extraction.
type Document struct {
	ID      string
	Path    string
	Content string
}

// Chunk is a fixed-size word window of a document used for indexing.
type Chunk struct {
	DocumentID string
	Index      int
	Text       string
}

// Match is the similarity of a query to one indexed document. Source is
// the label of the owning source; indexes leave it empty and the router
// fills it in.
type Match struct {
	Index  int
	Score  float64
	Source string
}

// Intent is the coarse kind of question being asked.
type Intent string

const (
	IntentDefinition  Intent = "definition"
	IntentExplanation Intent = "explanation"
	IntentReason      Intent = "reason"
	IntentComparison  Intent = "comparison"
	IntentGeneral     Intent = "general"
)

// QueryMeta holds the tags derived from the raw query text.
type QueryMeta struct {
	Intent  Intent `json:"intent"`
	Subject string `json:"subject"`
}

// Speaker identifies who produced a conversation turn.
type Speaker string

const (
	SpeakerUser Speaker = "You"
	SpeakerBot  Speaker = "Bot"
)

// Turn is one message of the chat transcript.
type Turn struct {
	Speaker Speaker
	Message string
}

// Chunker splits documents into chunks suitable for retrieval indexing.
type Chunker interface {
	Chunk(document Document) []Chunk
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// TextExtractor returns the plain text of a document on disk.
// It returns an empty string when the file is absent or cannot be read.
type TextExtractor interface {
	ExtractText(path string) string
}
