// Package theme styles exam previews in the terminal.
package theme

import (
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/examgen/internal/render"
)

// Color palette
var (
	Primary = lipgloss.Color("#8B5CF6") // Vivid Purple
	Accent  = lipgloss.Color("#F97316") // Orange
	Success = lipgloss.Color("#22C55E") // Green
	Error   = lipgloss.Color("#F43F5E") // Rose
	Text    = lipgloss.Color("#F8FAFC") // White
	TextDim = lipgloss.Color("#94A3B8") // Slate
	Border  = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	Question = lipgloss.NewStyle().
			Bold(true).
			Foreground(Text).
			MarginTop(1)

	Option = lipgloss.NewStyle().
		Foreground(TextDim).
		PaddingLeft(4)

	Answer = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	AnswerKey = lipgloss.NewStyle().
			Foreground(Success)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// StyleFor returns the terminal style for a planned entry style.
func StyleFor(s render.Style) lipgloss.Style {
	switch s {
	case render.StyleQuestion:
		return Question
	case render.StyleOption:
		return Option
	case render.StyleAnswer:
		return Answer
	case render.StyleAnswerKey:
		return AnswerKey
	default:
		return Body
	}
}

// Document renders a title and its entries as one styled block.
func Document(title string, entries []render.Entry) string {
	var b strings.Builder
	b.WriteString(Title.Render(title))
	b.WriteString("\n")
	if len(entries) == 0 {
		b.WriteString(Hint.Render("(no content)"))
		b.WriteString("\n")
		return b.String()
	}
	for _, e := range entries {
		if e.Style == render.StyleSpacer {
			b.WriteString("\n")
			continue
		}
		b.WriteString(StyleFor(e.Style).Render(e.Text))
		b.WriteString("\n")
		if e.SpaceAfter > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Summary renders a one-line count of questions and answers.
func Summary(entries []render.Entry) string {
	var q, a int
	for _, e := range entries {
		switch e.Kind {
		case render.QuestionHeader:
			q++
		case render.Answer:
			a++
		}
	}
	return Hint.Render(strings.Join([]string{
		plural(q, "question"),
		plural(a, "answer"),
	}, ", "))
}

func plural(n int, word string) string {
	s := strconv.Itoa(n) + " " + word
	if n != 1 {
		s += "s"
	}
	return s
}
