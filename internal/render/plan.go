package render

import (
	"fmt"
	"strings"
	"time"
)

// Mode selects which document is being rendered.
type Mode int

const (
	// Combined renders questions and answers together.
	Combined Mode = iota
	// QuestionsOnly renders the question sheet of a split exam.
	QuestionsOnly
	// AnswersOnly renders the answer key of a split exam.
	AnswersOnly
)

func (m Mode) String() string {
	switch m {
	case QuestionsOnly:
		return "questions"
	case AnswersOnly:
		return "answers"
	default:
		return "combined"
	}
}

// Style is the visual treatment of an entry.
type Style int

const (
	StyleBody Style = iota
	StyleQuestion
	StyleOption
	StyleAnswer    // answer line in a combined or question document
	StyleAnswerKey // "Question n: x" line in an answer key
	StyleSpacer
)

// Color is an RGB triple, 0-255 per channel.
type Color struct {
	R, G, B int
}

// Options controls planning and drawing.
type Options struct {
	Title string
	Mode  Mode

	// BlankSpacing turns blank lines into vertical space instead of
	// dropping them.
	BlankSpacing bool

	// AnswerColor highlights answer lines outside answer-only documents.
	AnswerColor Color

	// FontPath names a UTF-8 TrueType font. Empty uses core Helvetica with
	// cp1252 encoding.
	FontPath string

	// Date is stamped in every page footer. Zero means now.
	Date time.Time
}

// DefaultTitle is used when no title is configured.
const DefaultTitle = "GENERATED MOCK EXAM"

// DefaultOptions returns combined-mode options with the default title and
// a red answer highlight.
func DefaultOptions() Options {
	return Options{
		Title:       DefaultTitle,
		Mode:        Combined,
		AnswerColor: Color{R: 200, G: 30, B: 30},
	}
}

// Entry is one styled block of output.
type Entry struct {
	Kind  Kind
	Style Style
	Text  string

	// SpaceAfter is extra vertical space in mm below the entry.
	SpaceAfter float64
}

const answerSpacing = 4.0

// Plan classifies every line of text and returns the entries to draw.
//
// Question headers are renumbered from a running counter. In AnswersOnly
// mode an answer becomes "Question n: value", where n is the number of
// headers seen so far; when no header came since the previous answer the
// counter advances, so a bare answer stream numbers 1..k.
func Plan(text string, opts Options) []Entry {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var (
		entries    []Entry
		n          int
		headerSeen bool
	)
	for _, raw := range strings.Split(text, "\n") {
		c := Classify(raw)
		switch c.Kind {
		case QuestionHeader:
			n++
			headerSeen = true
			text := fmt.Sprintf("%d. %s", n, c.Text)
			if c.Decimal {
				text = c.Line
			}
			entries = append(entries, Entry{Kind: QuestionHeader, Style: StyleQuestion, Text: text})
			if c.TrueFalse {
				entries = append(entries, Entry{Kind: Option, Style: StyleOption, Text: "True / False"})
			}
		case Option:
			entries = append(entries, Entry{Kind: Option, Style: StyleOption, Text: c.Line})
		case Answer:
			if opts.Mode == AnswersOnly {
				if !headerSeen {
					n++
				}
				headerSeen = false
				entries = append(entries, Entry{Kind: Answer, Style: StyleAnswerKey, Text: fmt.Sprintf("Question %d: %s", n, c.Value), SpaceAfter: answerSpacing})
			} else {
				entries = append(entries, Entry{Kind: Answer, Style: StyleAnswer, Text: c.Line, SpaceAfter: answerSpacing})
			}
		case Blank:
			if opts.BlankSpacing {
				entries = append(entries, Entry{Kind: Blank, Style: StyleSpacer})
			}
		default:
			entries = append(entries, Entry{Kind: Body, Style: StyleBody, Text: c.Line})
		}
	}
	return entries
}
