// Package extract reads the plain text of study documents.
//
// PDF files are converted with the pdftotext tool from poppler. Every
// failure (missing file, missing tool, conversion error) yields an empty
// string so that the source is disabled instead of stopping startup.
package extract

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"studyqa/internal/domain"
)

// ErrPDFToolNotFound indicates pdftotext is not installed.
var ErrPDFToolNotFound = errors.New("pdftotext not found in PATH")

// DefaultTimeout bounds a single pdftotext run.
const DefaultTimeout = 60 * time.Second

// CommandRunner runs an external command and returns its stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Extractor implements domain.TextExtractor for .pdf, .txt and .md files.
type Extractor struct {
	runner   CommandRunner
	lookPath func(string) (string, error)
	timeout  time.Duration
}

var _ domain.TextExtractor = (*Extractor)(nil)

// New returns an Extractor that shells out to pdftotext.
func New() *Extractor {
	return NewWithRunner(execRunner{})
}

// NewWithRunner returns an Extractor using runner for PDF conversion.
func NewWithRunner(runner CommandRunner) *Extractor {
	return &Extractor{runner: runner, lookPath: exec.LookPath, timeout: DefaultTimeout}
}

// CheckAvailable reports whether pdftotext can be found.
func CheckAvailable() error {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return ErrPDFToolNotFound
	}
	return nil
}

// InstallInstructions describes how to install pdftotext.
func InstallInstructions() string {
	return "PDF sources need pdftotext (poppler):\n" +
		"  macOS:          brew install poppler\n" +
		"  Debian/Ubuntu:  apt install poppler-utils"
}

// ExtractText returns the text of the file at path, or "" if unavailable.
func (e *Extractor) ExtractText(path string) string {
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return e.pdfText(path)
	case ".txt", ".md":
		data, err := os.ReadFile(path)
		if err != nil {
			return ""
		}
		return string(data)
	default:
		return ""
	}
}

func (e *Extractor) pdfText(path string) string {
	if _, err := e.lookPath("pdftotext"); err != nil {
		return ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
	defer cancel()
	// "-" writes the text to stdout.
	out, err := e.runner.Run(ctx, "pdftotext", "-layout", "-enc", "UTF-8", path, "-")
	if err != nil {
		return ""
	}
	return string(out)
}
