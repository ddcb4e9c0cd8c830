package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeRawPDF writes a minimal PDF built from the given object bodies,
// numbered from 1, with a correct cross-reference table.
func writeRawPDF(t *testing.T, path string, objects []string) {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(objects))
	for i, body := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
}

func stream(content string) string {
	return fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content)
}

// Both pages name their font /F1, but the names point at different fonts:
// page 1 remaps "A" to "B" through a Differences array, page 2 does not.
func TestPageText_FontNamesArePageLocal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fonts.pdf")
	content := "BT /F1 12 Tf 10 100 Td (A) Tj ET"
	writeRawPDF(t, path, []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R 4 0 R] /Count 2 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] /Resources << /Font << /F1 5 0 R >> >> /Contents 7 0 R >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 200 200] /Resources << /Font << /F1 6 0 R >> >> /Contents 8 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding << /Type /Encoding /Differences [65 /B] >> >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
		stream(content),
		stream(content),
	})

	doc, closer, err := OpenPDF(path)
	require.NoError(t, err)
	defer closer()
	require.Equal(t, 2, doc.NumPage())

	first, err := doc.PageText(1)
	require.NoError(t, err)
	assert.Equal(t, "B", first)

	second, err := doc.PageText(2)
	require.NoError(t, err)
	assert.Equal(t, "A", second)
}
