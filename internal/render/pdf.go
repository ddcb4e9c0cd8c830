package render

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/text/encoding/charmap"

	"github.com/abhisek/examgen/internal/examerr"
)

// Page geometry in mm.
const (
	marginLeft   = 20.0
	marginTop    = 20.0
	marginRight  = 20.0
	marginBottom = 20.0
	optionIndent = 8.0
)

const utf8Family = "examfont"

// PDFWriter draws entries onto A4 pages and persists the document
// atomically: the PDF is written to a temporary file next to the target,
// validated, then renamed into place.
type PDFWriter struct {
	validate func(path string) error
}

// NewPDFWriter returns a writer that validates output with pdfcpu.
func NewPDFWriter() *PDFWriter {
	return &PDFWriter{validate: validatePDF}
}

var disableConfigDir sync.Once

func validatePDF(path string) error {
	disableConfigDir.Do(api.DisableConfigDir)
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return api.ValidateFile(path, conf)
}

// Write renders entries to path and returns the page count. Any failure
// leaves path untouched.
func (w *PDFWriter) Write(entries []Entry, path string, opts Options) (int, error) {
	doc, err := w.layout(entries, opts)
	if err != nil {
		return 0, err
	}
	pages := doc.PageCount()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, examerr.WithPath(examerr.PersistenceFailure, "create output dir", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".examgen-*.pdf")
	if err != nil {
		return 0, examerr.WithPath(examerr.PersistenceFailure, "create temp file", path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if err := doc.Output(tmp); err != nil {
		tmp.Close()
		return 0, examerr.WithPath(examerr.PersistenceFailure, "write pdf", path, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, examerr.WithPath(examerr.PersistenceFailure, "write pdf", path, err)
	}

	if w.validate != nil {
		if err := w.validate(tmpName); err != nil {
			return 0, examerr.WithPath(examerr.PersistenceFailure, "validate pdf", path, err)
		}
	}

	if err := os.Rename(tmpName, path); err != nil {
		return 0, examerr.WithPath(examerr.PersistenceFailure, "rename pdf", path, err)
	}
	committed = true

	slog.Debug("pdf written", "path", path, "pages", pages, "entries", len(entries))
	return pages, nil
}

// layout builds the in-memory document.
func (w *PDFWriter) layout(entries []Entry, opts Options) (*fpdf.Fpdf, error) {
	date := opts.Date
	if date.IsZero() {
		date = time.Now()
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginLeft, marginTop, marginRight)
	doc.SetAutoPageBreak(true, marginBottom)
	doc.SetCreator("examgen", false)
	doc.SetCreationDate(date)

	family := "Helvetica"
	tr := doc.UnicodeTranslatorFromDescriptor("")
	if opts.FontPath == "" {
		if r, ok := firstUnencodable(opts.Title, entries); ok {
			return nil, examerr.New(examerr.InvalidConfiguration, "layout pdf",
				fmt.Errorf("text contains %q which the built-in font cannot draw; set a UTF-8 font with EXAMGEN_FONT or --font", r))
		}
	} else {
		font, err := os.ReadFile(opts.FontPath)
		if err != nil {
			return nil, examerr.WithPath(examerr.InvalidConfiguration, "load font", opts.FontPath, err)
		}
		doc.AddUTF8FontFromBytes(utf8Family, "", font)
		doc.AddUTF8FontFromBytes(utf8Family, "B", font)
		if doc.Err() {
			return nil, examerr.WithPath(examerr.InvalidConfiguration, "load font", opts.FontPath, doc.Error())
		}
		family = utf8Family
		tr = func(s string) string { return s }
	}
	doc.SetTitle(opts.Title, true)

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont(family, "", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 10, date.Format("2006-01-02"), "", 0, "L", false, 0, "")
		doc.SetX(marginLeft)
		doc.CellFormat(0, 10, fmt.Sprintf("Page %d", doc.PageNo()), "", 0, "R", false, 0, "")
	})

	doc.AddPage()

	doc.SetFont(family, "B", 18)
	doc.SetTextColor(0, 0, 0)
	doc.MultiCell(0, 10, tr(opts.Title), "", "C", false)
	doc.Ln(6)

	for _, e := range entries {
		drawEntry(doc, family, tr, e, opts)
	}

	if doc.Err() {
		return nil, examerr.New(examerr.PersistenceFailure, "layout pdf", doc.Error())
	}
	return doc, nil
}

// firstUnencodable returns the first rune of the title or entries outside
// Windows-1252, the encoding of the core PDF fonts.
func firstUnencodable(title string, entries []Entry) (rune, bool) {
	check := func(s string) (rune, bool) {
		for _, r := range s {
			if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
				return r, true
			}
		}
		return 0, false
	}
	if r, ok := check(title); ok {
		return r, true
	}
	for _, e := range entries {
		if r, ok := check(e.Text); ok {
			return r, true
		}
	}
	return 0, false
}

func drawEntry(doc *fpdf.Fpdf, family string, tr func(string) string, e Entry, opts Options) {
	doc.SetTextColor(0, 0, 0)
	switch e.Style {
	case StyleQuestion:
		doc.Ln(2)
		doc.SetFont(family, "B", 12)
		doc.MultiCell(0, 7, tr(e.Text), "", "L", false)
	case StyleOption:
		doc.SetFont(family, "", 11)
		doc.SetX(marginLeft + optionIndent)
		doc.MultiCell(0, 6, tr(e.Text), "", "L", false)
	case StyleAnswer:
		c := opts.AnswerColor
		doc.SetFont(family, "B", 11)
		doc.SetTextColor(c.R, c.G, c.B)
		doc.MultiCell(0, 6, tr(e.Text), "", "L", false)
	case StyleAnswerKey:
		doc.SetFont(family, "", 12)
		doc.MultiCell(0, 7, tr(e.Text), "", "L", false)
	case StyleSpacer:
		doc.Ln(4)
	default:
		doc.SetFont(family, "", 11)
		doc.MultiCell(0, 6, tr(e.Text), "", "L", false)
	}
	if e.SpaceAfter > 0 {
		doc.Ln(e.SpaceAfter)
	}
}
