package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/examgen/internal/examerr"
	"github.com/abhisek/examgen/internal/render"
	"github.com/abhisek/examgen/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview <exam.txt|->",
	Short: "Show how an exam text will be laid out (no LLM, no database)",
	Long: `Classify every line of an exam text and print it with terminal styling.

This is a stateless tool: nothing is generated or written. Use "-" to read
the exam from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Bool("split", false, "Show the question sheet and the answer key separately")
	previewCmd.Flags().String("title", render.DefaultTitle, "Exam title")
}

func runPreview(cmd *cobra.Command, args []string) error {
	split, _ := cmd.Flags().GetBool("split")
	title, _ := cmd.Flags().GetString("title")

	text, err := readExamText(cmd, args[0])
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	opts := render.DefaultOptions()
	opts.Title = title

	if !split {
		entries := render.Plan(text, opts)
		fmt.Fprint(w, theme.Document(opts.Title, entries))
		fmt.Fprintln(w, theme.Summary(entries))
		return nil
	}

	questions, answers := render.Split(text)

	opts.Mode = render.QuestionsOnly
	qEntries := render.Plan(questions, opts)
	fmt.Fprint(w, theme.Document(opts.Title, qEntries))
	fmt.Fprintln(w, theme.Summary(qEntries))
	fmt.Fprintln(w)

	opts.Mode = render.AnswersOnly
	aEntries := render.Plan(answers, opts)
	fmt.Fprint(w, theme.Document(opts.Title+" - ANSWER KEY", aEntries))
	fmt.Fprintln(w, theme.Summary(aEntries))
	return nil
}

// readExamText reads path, or standard input when path is "-".
func readExamText(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", examerr.WithPath(examerr.NotFound, "read exam text", path, err)
		}
		return "", fmt.Errorf("read exam text: %w", err)
	}
	return string(data), nil
}
