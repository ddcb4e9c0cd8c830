package theme

import (
	"strings"
	"testing"

	"github.com/abhisek/examgen/internal/render"
)

func TestDocumentContainsEntries(t *testing.T) {
	entries := render.Plan("1. Q1\nA) x\nANSWER: A", render.DefaultOptions())
	out := Document("Biology", entries)

	for _, want := range []string{"Biology", "1. Q1", "A) x", "ANSWER: A"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestDocumentEmpty(t *testing.T) {
	out := Document("Empty", nil)
	if !strings.Contains(out, "(no content)") {
		t.Errorf("expected placeholder, got:\n%s", out)
	}
}

func TestSummary(t *testing.T) {
	entries := render.Plan("1. Q1\nANSWER: A\n2. Q2", render.DefaultOptions())
	out := Summary(entries)
	if !strings.Contains(out, "2 questions, 1 answer") {
		t.Errorf("Summary = %q", out)
	}
}
