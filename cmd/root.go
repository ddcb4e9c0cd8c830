package cmd

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/examgen/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "examgen [primary.pdf [supplement.pdf ...]]",
	Short: "Generate mock exams from PDF study material",
	Long: `examgen extracts the text of one to three PDF documents, asks an LLM to
write a mock exam from it, and renders the exam as a PDF. With --split the
questions and the answer key go to separate files.

Question counts come from --mcq/--fib/--tf or EXAMGEN_MCQ_COUNT,
EXAMGEN_FIB_COUNT and EXAMGEN_TF_COUNT.`,
	Args:              cobra.MaximumNArgs(3),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runGenerate,
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EXAMGEN_DB env var)")
	rootCmd.PersistentFlags().Bool("no-history", false, "Do not record runs or LLM calls")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	addGenerateFlags(rootCmd)

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then EXAMGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database named by the flags.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(dbPath)
}
