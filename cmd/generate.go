package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/examgen/internal/app"
	"github.com/abhisek/examgen/internal/examerr"
	"github.com/abhisek/examgen/internal/examgen"
	"github.com/abhisek/examgen/internal/extract"
	"github.com/abhisek/examgen/internal/llm"
	"github.com/abhisek/examgen/internal/store"
	"github.com/abhisek/examgen/internal/ui/components"
)

var generateCmd = &cobra.Command{
	Use:   "generate [primary.pdf [supplement.pdf ...]]",
	Short: "Generate a mock exam PDF (default command)",
	Args:  cobra.MaximumNArgs(3),
	RunE:  runGenerate,
}

func init() {
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("input", "", "Primary PDF (overrides EXAMGEN_INPUT)")
	f.StringSlice("supplement", nil, "Supplementary PDF, up to two (overrides EXAMGEN_SUPPLEMENT_1/2)")
	f.String("out", "", "Output directory (overrides EXAMGEN_OUTPUT_DIR, default \"output\")")
	f.String("title", "", "Exam title (overrides EXAMGEN_TITLE)")
	f.String("split", "", "Write questions and answer key to separate files; give a value as --split=false (overrides EXAMGEN_SPLIT)")
	f.Lookup("split").NoOptDefVal = "true"
	f.Int("mcq", 0, "Number of multiple choice questions (overrides EXAMGEN_MCQ_COUNT)")
	f.Int("fib", 0, "Number of fill in the blank questions (overrides EXAMGEN_FIB_COUNT)")
	f.Int("tf", 0, "Number of true/false questions (overrides EXAMGEN_TF_COUNT)")
	f.String("language", "", "Exam language (overrides EXAMGEN_LANGUAGE, default English)")
	f.Bool("structured", false, "Request JSON output validated against the exam schema")
	f.Bool("no-timestamp", false, "Do not append the run time to output file names")
	f.Bool("save-text", false, "Also save the generated exam text")
	f.String("font", "", "UTF-8 TrueType font for the PDF (overrides EXAMGEN_FONT)")
	f.Bool("blank-spacing", false, "Keep blank lines as vertical space")
}

// flagEnv maps generate flags onto the environment keys they override.
var flagEnv = []struct {
	flag string
	key  string
}{
	{"input", app.EnvInput},
	{"out", app.EnvOutputDir},
	{"title", app.EnvTitle},
	{"split", app.EnvSplit},
	{"mcq", examgen.EnvMultipleChoice},
	{"fib", examgen.EnvFillInBlank},
	{"tf", examgen.EnvTrueFalse},
	{"language", examgen.EnvLanguage},
	{"structured", app.EnvStructured},
	{"save-text", app.EnvSaveText},
	{"font", app.EnvFont},
}

// envOverlay returns a lookup that prefers changed flags and positional
// arguments over the process environment.
func envOverlay(cmd *cobra.Command, args []string) (func(string) (string, bool), error) {
	over := map[string]string{}
	flags := cmd.Flags()

	for _, fe := range flagEnv {
		if f := flags.Lookup(fe.flag); f != nil && f.Changed {
			over[fe.key] = f.Value.String()
		}
	}
	if noTS, _ := flags.GetBool("no-timestamp"); noTS {
		over[app.EnvTimestamp] = "false"
	}

	// A bare --split takes no value, so "--split false in.pdf" reads "false"
	// as the input path.
	if flags.Changed("split") && len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		if _, err := app.ParseSplit(args[0]); err == nil {
			if _, statErr := os.Stat(args[0]); statErr != nil {
				return nil, examerr.New(examerr.InvalidConfiguration, "parse arguments",
					fmt.Errorf("%q looks like a split value, not an input file; use --split=%s", args[0], args[0]))
			}
		}
	}

	var supplements []string
	if len(args) > 0 {
		over[app.EnvInput] = args[0]
		supplements = append(supplements, args[1:]...)
	}
	if flags.Changed("supplement") {
		extra, _ := flags.GetStringSlice("supplement")
		supplements = append(supplements, extra...)
	}
	if len(supplements) > 2 {
		return nil, examerr.New(examerr.InvalidConfiguration, "parse arguments",
			fmt.Errorf("at most 2 supplementary documents, got %d", len(supplements)))
	}
	if len(args) > 1 || flags.Changed("supplement") {
		for i, key := range []string{app.EnvSupplement1, app.EnvSupplement2} {
			over[key] = ""
			if i < len(supplements) {
				over[key] = supplements[i]
			}
		}
	}

	return func(key string) (string, bool) {
		if v, ok := over[key]; ok {
			return v, true
		}
		return os.LookupEnv(key)
	}, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	lookup, err := envOverlay(cmd, args)
	if err != nil {
		return err
	}
	cfg, err := app.ConfigFromEnv(lookup)
	if err != nil {
		return err
	}
	cfg.BlankSpacing, _ = cmd.Flags().GetBool("blank-spacing")
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.CheckInput(); err != nil {
		return err
	}

	// Without a database the run proceeds unrecorded.
	var (
		eventRepo  store.EventRepo
		runnerOpts []app.RunnerOption
	)
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory {
		st, err := openStore(cmd)
		if err != nil {
			slog.Warn("run history disabled", "error", err)
		} else {
			defer st.Close()
			eventRepo = st.EventRepo()
			runnerOpts = append(runnerOpts, app.WithRunRepo(st.RunRepo()))
		}
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return examerr.New(examerr.InvalidConfiguration, "configure LLM provider", err)
	}

	runner := app.NewRunner(extract.New(), examgen.New(provider, cfg.Generator), runnerOpts...)

	inputs := append([]string{cfg.Input}, cfg.Supplements...)
	fmt.Printf("Reading %s\n", strings.Join(inputs, ", "))
	fmt.Printf("Generating %d questions (%d multiple choice, %d fill in the blank, %d true/false) in %s with %s...\n",
		cfg.Spec.Total(), cfg.Spec.MultipleChoice, cfg.Spec.FillInBlank, cfg.Spec.TrueFalse,
		cfg.Spec.Language, provider.ModelID())

	var out *app.Outcome
	run := func(ctx context.Context) error {
		var err error
		out, err = runner.Run(ctx, cfg)
		return err
	}
	if showSpinner(cmd) {
		err = components.RunWithSpinner(ctx, os.Stdout, "Waiting for "+provider.ModelID(), run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return err
	}

	if out.TextPath != "" {
		fmt.Printf("Exam text saved to %s\n", out.TextPath)
	}
	for _, d := range out.Documents {
		fmt.Printf("Saved %s (%d pages, %d questions, %d answers)\n", d.Path, d.Pages, d.Questions, d.Answers)
	}
	return nil
}

// showSpinner reports whether stdout is a terminal and debug logging is off.
func showSpinner(cmd *cobra.Command) bool {
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
