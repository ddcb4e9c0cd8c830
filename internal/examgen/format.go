package examgen

import (
	"fmt"
	"strings"
)

// Exam is the structured form of a generated exam.
type Exam struct {
	Questions []Question `json:"questions"`
}

// Question is one structured exam question.
type Question struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

var optionLetters = []string{"A", "B", "C", "D"}

// FormatExam writes a structured exam in the numbered line layout the
// renderer understands.
func FormatExam(exam Exam) string {
	var b strings.Builder
	for i, q := range exam.Questions {
		if i > 0 {
			b.WriteString("\n")
		}
		text := strings.TrimSpace(q.Text)
		if q.Kind == KindTrueFalse {
			fmt.Fprintf(&b, "%d. True/False: %s\n", i+1, text)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, text)
		}
		if q.Kind == KindMultipleChoice {
			for j, opt := range q.Options {
				if j >= len(optionLetters) {
					break
				}
				fmt.Fprintf(&b, "%s) %s\n", optionLetters[j], strings.TrimSpace(opt))
			}
		}
		fmt.Fprintf(&b, "ANSWER: %s\n", strings.TrimSpace(q.Answer))
	}
	return b.String()
}
