package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/pmquiz/internal/answerkey"
)

var answerKeyCmd = &cobra.Command{
	Use:   "answer-key",
	Short: "Export the solution of every question as a spreadsheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("out")

		b, err := openBank()
		if err != nil {
			return err
		}
		data, err := answerkey.Export(b)
		if err != nil {
			return err
		}
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Answer key for %d questions written to %s\n", b.Len(), outPath)
		return nil
	},
}

func init() {
	answerKeyCmd.Flags().String("out", "answer-key.xlsx", "Output file")
}
