package render

import "strings"

// Line is one input line and its zero-based position in the source text.
type Line struct {
	Index int
	Text  string
}

// Partition holds the two streams produced by splitting exam text.
type Partition struct {
	Questions []Line
	Answers   []Line
}

// PartitionLines routes each answer line to Answers and every other line to
// Questions. Both streams keep source order.
func PartitionLines(text string) Partition {
	var p Partition
	for i, l := range strings.Split(text, "\n") {
		if IsAnswerLine(l) {
			p.Answers = append(p.Answers, Line{Index: i, Text: l})
		} else {
			p.Questions = append(p.Questions, Line{Index: i, Text: l})
		}
	}
	return p
}

// Split returns the question stream and the answer stream of text.
func Split(text string) (questions, answers string) {
	p := PartitionLines(text)
	return joinLines(p.Questions), joinLines(p.Answers)
}

func joinLines(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = l.Text
	}
	return strings.Join(parts, "\n")
}
