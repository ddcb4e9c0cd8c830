package extract

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-pdf/fpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/examgen/internal/examerr"
)

// fakeDocument serves fixed page texts.
type fakeDocument struct {
	pages []string
	err   error
	// failAt is the 1-based page that returns err.
	failAt int
}

func (d *fakeDocument) NumPage() int { return len(d.pages) }

func (d *fakeDocument) PageText(i int) (string, error) {
	if d.err != nil && i == d.failAt {
		return "", d.err
	}
	return d.pages[i-1], nil
}

func fakeOpener(docs map[string]Document) Opener {
	return func(path string) (Document, func() error, error) {
		doc, ok := docs[filepath.Base(path)]
		if !ok {
			return nil, nil, errors.New("not a pdf")
		}
		return doc, func() error { return nil }, nil
	}
}

// touch creates a placeholder file so the existence check passes.
func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("%PDF-1.4"), 0o644))
	return p
}

func TestText_ConcatenatesPagesInOrder(t *testing.T) {
	dir := t.TempDir()
	path := touch(t, dir, "notes.pdf")

	e := New(WithOpener(fakeOpener(map[string]Document{
		"notes.pdf": &fakeDocument{pages: []string{"page one\n", "", "page three\n"}},
	})))

	text, err := e.Text(path)
	require.NoError(t, err)
	assert.Equal(t, "page one\npage three\n", text)
}

func TestText_MissingPathIsNotFound(t *testing.T) {
	opened := false
	e := New(WithOpener(func(string) (Document, func() error, error) {
		opened = true
		return nil, nil, errors.New("should not be called")
	}))

	_, err := e.Text(filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.True(t, examerr.Is(err, examerr.NotFound))
	assert.False(t, opened, "parser must not run for a missing file")
}

func TestText_DirectoryIsExtractionFailure(t *testing.T) {
	_, err := New().Text(t.TempDir())
	require.Error(t, err)
	assert.True(t, examerr.Is(err, examerr.ExtractionFailure))
}

func TestText_ParserErrors(t *testing.T) {
	dir := t.TempDir()
	bad := touch(t, dir, "bad.pdf")
	broken := touch(t, dir, "broken.pdf")
	panicky := touch(t, dir, "panicky.pdf")

	e := New(WithOpener(func(path string) (Document, func() error, error) {
		switch filepath.Base(path) {
		case "broken.pdf":
			return &fakeDocument{pages: []string{"a", "b"}, err: errors.New("bad xref"), failAt: 2}, func() error { return nil }, nil
		case "panicky.pdf":
			panic("malformed object stream")
		default:
			return nil, nil, errors.New("not a pdf")
		}
	}))

	for _, p := range []string{bad, broken, panicky} {
		_, err := e.Text(p)
		require.Error(t, err, p)
		assert.True(t, examerr.Is(err, examerr.ExtractionFailure), "path %s: %v", p, err)
	}
}

func TestSources_JoinsWithBlankLine(t *testing.T) {
	dir := t.TempDir()
	primary := touch(t, dir, "main.pdf")
	supp := touch(t, dir, "extra.pdf")
	missing := filepath.Join(dir, "gone.pdf")

	e := New(WithOpener(fakeOpener(map[string]Document{
		"main.pdf":  &fakeDocument{pages: []string{"main text"}},
		"extra.pdf": &fakeDocument{pages: []string{"extra text"}},
	})))

	text, err := e.Sources(primary, missing, supp, "")
	require.NoError(t, err)
	assert.Equal(t, "main text\n\nextra text", text)
}

func TestSources_PrimaryFailureIsReturned(t *testing.T) {
	e := New()
	_, err := e.Sources(filepath.Join(t.TempDir(), "absent.pdf"))
	assert.True(t, examerr.Is(err, examerr.NotFound))
}

func TestSources_BrokenSupplementFails(t *testing.T) {
	dir := t.TempDir()
	primary := touch(t, dir, "main.pdf")
	broken := touch(t, dir, "broken.pdf")

	e := New(WithOpener(fakeOpener(map[string]Document{
		"main.pdf": &fakeDocument{pages: []string{"main"}},
	})))

	_, err := e.Sources(primary, broken)
	assert.True(t, examerr.Is(err, examerr.ExtractionFailure))
}

func TestText_RealPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biology.pdf")

	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(40, 10, "Photosynthesis")
	doc.AddPage()
	doc.Cell(40, 10, "Chlorophyll")
	require.NoError(t, doc.OutputFileAndClose(path))

	text, err := New().Text(path)
	require.NoError(t, err)
	assert.Contains(t, text, "Photosynthesis")
	assert.Contains(t, text, "Chlorophyll")
	assert.Less(t, strings.Index(text, "Photosynthesis"), strings.Index(text, "Chlorophyll"))
}

