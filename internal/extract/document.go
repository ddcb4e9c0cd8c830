package extract

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// Document is a paged source of plain text.
type Document interface {
	// NumPage returns the number of pages.
	NumPage() int

	// PageText returns the text of page i (1-based). Pages with no text
	// layer return an empty string.
	PageText(i int) (string, error)
}

// Opener opens the document at path. The returned closer releases the
// underlying file.
type Opener func(path string) (Document, func() error, error)

// pdfDocument adapts a ledongthuc/pdf reader to Document.
type pdfDocument struct {
	r *pdf.Reader
}

// OpenPDF is the default Opener backed by github.com/ledongthuc/pdf.
func OpenPDF(path string) (Document, func() error, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open pdf: %w", err)
	}
	return &pdfDocument{r: r}, f.Close, nil
}

func (d *pdfDocument) NumPage() int {
	return d.r.NumPage()
}

func (d *pdfDocument) PageText(i int) (string, error) {
	p := d.r.Page(i)
	if p.V.IsNull() {
		return "", nil
	}

	// Font resource names are page-local, so each page resolves its own.
	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("read page %d: %w", i, err)
	}
	return text, nil
}

// statFile reports whether path names an existing regular file.
func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}
