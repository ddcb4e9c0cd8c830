package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/examgen/internal/app"
	"github.com/abhisek/examgen/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render <exam.txt|->",
	Short: "Render an existing exam text to PDF without calling an LLM",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	f := renderCmd.Flags()
	f.String("out", app.DefaultOutputDir, "Output directory")
	f.String("title", render.DefaultTitle, "Exam title")
	f.Bool("split", false, "Write questions and answer key to separate files")
	f.Bool("no-timestamp", false, "Do not append the current time to output file names")
	f.String("font", "", "UTF-8 TrueType font for the PDF")
	f.Bool("blank-spacing", false, "Keep blank lines as vertical space")
}

func runRender(cmd *cobra.Command, args []string) error {
	text, err := readExamText(cmd, args[0])
	if err != nil {
		return err
	}

	f := cmd.Flags()
	cfg := app.DefaultConfig()
	cfg.OutputDir, _ = f.GetString("out")
	cfg.Title, _ = f.GetString("title")
	cfg.Split, _ = f.GetBool("split")
	cfg.FontPath, _ = f.GetString("font")
	cfg.BlankSpacing, _ = f.GetBool("blank-spacing")
	if noTS, _ := f.GetBool("no-timestamp"); noTS {
		cfg.Timestamp = false
	}

	docs, err := app.RenderExam(render.NewPDFWriter(), text, cfg, time.Now())
	for _, d := range docs {
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d pages, %d questions, %d answers)\n", d.Path, d.Pages, d.Questions, d.Answers)
	}
	return err
}
