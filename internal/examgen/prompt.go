package examgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are an experienced teacher writing a mock exam from study material.

Rules:
- Base every question strictly on the provided source text.
- Number every question as "1.", "2.", "3." and so on, at the start of its line.
- Follow the exact per-question layout you are given. Do not add commentary.
- Every question is followed by exactly one line "ANSWER: X".
- Do not write a title, a "Mock Exam" heading, an "Instructions" block, section headings such as "Multiple Choice", or "---" separator lines.`

// BuildPrompt constructs the user message for one exam request.
func BuildPrompt(text string, spec Spec) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a mock exam with %d questions in total:\n", spec.Total())
	fmt.Fprintf(&b, "- %d multiple choice questions\n", spec.MultipleChoice)
	fmt.Fprintf(&b, "- %d fill in the blank questions\n", spec.FillInBlank)
	fmt.Fprintf(&b, "- %d true/false questions\n", spec.TrueFalse)

	b.WriteString("\nLayout for each question type:\n")
	b.WriteString("Multiple choice: a numbered question line, then exactly four options on their own lines:\n")
	b.WriteString("1. <question>\nA) <option>\nB) <option>\nC) <option>\nD) <option>\nANSWER: <letter>\n\n")
	b.WriteString("Fill in the blank: a numbered statement containing ____ where the missing word goes:\n")
	b.WriteString("2. <statement with ____>\nANSWER: <missing word>\n\n")
	b.WriteString("True/false: a numbered line starting with \"True/False:\":\n")
	b.WriteString("3. True/False: <statement>\nANSWER: <True or False>\n\n")

	b.WriteString("Do not include any headers such as \"Mock Exam\", \"Instructions\" or \"Multiple Choice\", and no \"---\" lines.\n")
	fmt.Fprintf(&b, "Write the whole exam in %s. Keep the labels \"ANSWER:\" and \"True/False:\" and the option letters as shown.\n", languageOrDefault(spec.Language))

	b.WriteString("\nSource text:\n")
	b.WriteString(text)

	return b.String()
}

func languageOrDefault(lang string) string {
	if strings.TrimSpace(lang) == "" {
		return DefaultLanguage
	}
	return lang
}
