// Package extract pulls the plain-text layer out of PDF source documents.
package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/abhisek/examgen/internal/examerr"
)

// sourceSeparator joins the texts of multiple source documents.
const sourceSeparator = "\n\n"

// Extractor reads whole documents into a single string.
type Extractor struct {
	open   Opener
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOpener replaces the PDF opener. Tests use it to inject fake documents.
func WithOpener(open Opener) Option {
	return func(e *Extractor) { e.open = open }
}

// WithLogger sets the logger used for per-page diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// New creates an Extractor backed by OpenPDF unless overridden.
func New(opts ...Option) *Extractor {
	e := &Extractor{open: OpenPDF, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Text returns the text of every page of the document at path, concatenated
// in page order.
//
// A missing path yields an examerr.NotFound error; any parser error (or
// parser panic on malformed input) yields examerr.ExtractionFailure.
func (e *Extractor) Text(path string) (text string, err error) {
	if serr := statFile(path); serr != nil {
		if errors.Is(serr, fs.ErrNotExist) {
			return "", examerr.WithPath(examerr.NotFound, "extract", path, serr)
		}
		return "", examerr.WithPath(examerr.ExtractionFailure, "extract", path, serr)
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = examerr.WithPath(examerr.ExtractionFailure, "extract", path,
				fmt.Errorf("parser panic: %v", r))
		}
	}()

	doc, closeFn, oerr := e.open(path)
	if oerr != nil {
		return "", examerr.WithPath(examerr.ExtractionFailure, "extract", path, oerr)
	}
	defer func() { _ = closeFn() }()

	text, err = concatPages(doc)
	if err != nil {
		return "", examerr.WithPath(examerr.ExtractionFailure, "extract", path, err)
	}

	e.logger.Debug("extracted document",
		slog.String("path", path),
		slog.Int("pages", doc.NumPage()),
		slog.Int("chars", len(text)),
	)
	return text, nil
}

// Sources extracts the primary document and any supplementary documents and
// joins the non-empty texts with a blank line.
//
// The primary document is mandatory: its failure is returned unchanged.
// Missing supplements are skipped with a warning; supplements that exist but
// cannot be parsed fail the whole call.
func (e *Extractor) Sources(primary string, supplements ...string) (string, error) {
	text, err := e.Text(primary)
	if err != nil {
		return "", err
	}

	parts := []string{}
	if strings.TrimSpace(text) != "" {
		parts = append(parts, text)
	}

	for _, path := range supplements {
		if path == "" {
			continue
		}
		s, err := e.Text(path)
		if err != nil {
			if examerr.Is(err, examerr.NotFound) {
				e.logger.Warn("supplementary document not found, skipping", slog.String("path", path))
				continue
			}
			return "", err
		}
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}

	return strings.Join(parts, sourceSeparator), nil
}

// concatPages joins page texts in page order.
func concatPages(doc Document) (string, error) {
	var b strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		t, err := doc.PageText(i)
		if err != nil {
			return "", err
		}
		b.WriteString(t)
	}
	return b.String(), nil
}
