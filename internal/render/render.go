package render

// Result describes one written document.
type Result struct {
	Path      string
	Pages     int
	Questions int
	Answers   int
}

// Render plans text and writes it to path as a PDF.
func Render(text, path string, opts Options) (Result, error) {
	return NewPDFWriter().Render(text, path, opts)
}

// Render plans text and writes it to path with w.
func (w *PDFWriter) Render(text, path string, opts Options) (Result, error) {
	entries := Plan(text, opts)

	pages, err := w.Write(entries, path, opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{Path: path, Pages: pages}
	for _, e := range entries {
		switch e.Kind {
		case QuestionHeader:
			res.Questions++
		case Answer:
			res.Answers++
		}
	}
	return res, nil
}
