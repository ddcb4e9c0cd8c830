package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/examgen/internal/extract"
)

var extractCmd = &cobra.Command{
	Use:   "extract <primary.pdf> [supplement.pdf ...]",
	Short: "Print the text extracted from PDF documents",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := extract.New().Sources(args[0], args[1:]...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}
