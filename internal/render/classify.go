// Package render lays generated exam text out as PDF documents.
//
// Rendering is two steps. Plan classifies each line and turns it into a
// styled Entry; a PDFWriter draws the entries onto paginated A4 pages.
package render

import (
	"strings"
	"unicode"
)

// Kind is the role of one exam text line.
type Kind int

const (
	Blank Kind = iota
	QuestionHeader
	Option
	Answer
	Body
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case QuestionHeader:
		return "question"
	case Option:
		return "option"
	case Answer:
		return "answer"
	default:
		return "body"
	}
}

// Classified is a line together with its role.
type Classified struct {
	Kind Kind

	// Line is the input with surrounding whitespace removed.
	Line string

	// Text is the question text of a header, without its number and any
	// true/false marker.
	Text string

	// TrueFalse is set on headers that carried a true/false marker.
	TrueFalse bool

	// Decimal is set on headers whose leading number runs into a decimal
	// fraction, as in "2.5 liters". Their Line is kept as written.
	Decimal bool

	// Value is the text after the "ANSWER:" label.
	Value string
}

const answerLabel = "ANSWER:"

var optionPrefixes = []string{"A)", "B)", "C)", "D)", "A.", "B.", "C.", "D."}

// Longer markers first so "true / false:" is not cut at "true".
var trueFalseMarkers = []string{
	"true / false:",
	"true or false:",
	"true/false:",
	"true / false",
	"true or false",
	"true/false",
}

type rule struct {
	kind  Kind
	match func(line string) bool
}

// rules are evaluated top to bottom; the first match wins.
var rules = []rule{
	{QuestionHeader, isQuestionHeader},
	{Option, isOption},
	{Answer, IsAnswerLine},
	{Blank, func(l string) bool { return l == "" }},
}

// Classify assigns a line its role.
func Classify(line string) Classified {
	l := strings.TrimSpace(line)
	c := Classified{Kind: Body, Line: l}

	for _, r := range rules {
		if r.match(l) {
			c.Kind = r.kind
			break
		}
	}

	switch c.Kind {
	case QuestionHeader:
		c.Text, c.TrueFalse = questionText(l)
		dot := strings.IndexByte(l, '.')
		c.Decimal = dot+1 < len(l) && unicode.IsDigit(rune(l[dot+1]))
	case Answer:
		c.Value = strings.TrimSpace(l[len(answerLabel):])
	}
	return c
}

// isQuestionHeader matches a leading digit with the first "." in the first
// three characters, as in "1." or "12.".
func isQuestionHeader(l string) bool {
	if l == "" || !unicode.IsDigit(rune(l[0])) {
		return false
	}
	dot := strings.IndexByte(l, '.')
	return dot > 0 && dot < 3
}

func isOption(l string) bool {
	for _, p := range optionPrefixes {
		if strings.HasPrefix(l, p) {
			return true
		}
	}
	return false
}

// IsAnswerLine reports whether the trimmed line starts with "ANSWER:" in
// any letter case.
func IsAnswerLine(line string) bool {
	l := strings.TrimSpace(line)
	return len(l) >= len(answerLabel) && strings.EqualFold(l[:len(answerLabel)], answerLabel)
}

func questionText(l string) (string, bool) {
	rest := strings.TrimSpace(l[strings.IndexByte(l, '.')+1:])
	lower := strings.ToLower(rest)
	for _, m := range trueFalseMarkers {
		if strings.HasPrefix(lower, m) {
			rest = strings.TrimLeft(rest[len(m):], " :-")
			return rest, true
		}
	}
	return rest, false
}
