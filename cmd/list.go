package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/pmquiz/internal/bank"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all questions (optionally filtered by kind)",
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("kind")

		b, err := openBank()
		if err != nil {
			return err
		}

		var qs []bank.Question
		for _, q := range b.All() {
			if kind == "" || string(q.Kind) == kind {
				qs = append(qs, q)
			}
		}
		if kind != "" && len(qs) == 0 {
			return fmt.Errorf("no questions found for kind %q", kind)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%4s  %-16s  %s\n", "ID", "Kind", "Title")
		fmt.Fprintln(out, strings.Repeat("─", 60))
		for _, q := range qs {
			fmt.Fprintf(out, "%4d  %-16s  %s\n", q.ID, q.Kind, q.Title)
		}

		fmt.Fprintf(out, "\n%d questions\n", len(qs))
		return nil
	},
}

func init() {
	listCmd.Flags().String("kind", "", "Filter by kind (multiple, matching or image-matching)")
}
