package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/pmquiz/internal/bank"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a question bank and report every defect",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		b, err := openBank()
		if err != nil {
			var verr *bank.ValidationError
			if errors.As(err, &verr) {
				for _, issue := range verr.Issues {
					fmt.Fprintln(out, "✗", issue)
				}
				return fmt.Errorf("%d issues found in %s", len(verr.Issues), bankSource())
			}
			return err
		}

		counts := b.CountByKind()
		fmt.Fprintf(out, "✓ %s: %d questions", bankSource(), b.Len())
		for _, k := range bank.AllKinds() {
			fmt.Fprintf(out, ", %d %s", counts[k], k)
		}
		fmt.Fprintln(out)
		return nil
	},
}
