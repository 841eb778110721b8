package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/pmquiz/internal/assets"
	"github.com/abhisek/pmquiz/internal/bank"
	"github.com/abhisek/pmquiz/internal/quiz"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one question with shuffled options (no answers checked)",
	Long: `Print a question the way a fresh mount would present it: options
shuffled and image references resolved against the base URL.

Pass --answers to also print the solution.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().Bool("answers", false, "Also print the solution")
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid question id %q", args[0])
	}
	withAnswers, _ := cmd.Flags().GetBool("answers")

	b, err := openBank()
	if err != nil {
		return err
	}
	q, err := b.Get(id)
	if err != nil {
		return err
	}

	w, err := quiz.Mount(q, quiz.NewRand(cfg.Seed))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	res := assets.New(cfg.BaseURL)
	fmt.Fprintf(out, "── %s ── (%s)\n", q.Title, bank.KindDisplayName(q.Kind))

	switch w := w.(type) {
	case *quiz.MultipleChoice:
		mc := w.Question()
		printPrompt(out, mc.Prompt, mc.Statements, mc.Image, res)
		for _, o := range w.Options() {
			fmt.Fprintf(out, "  [ ] %s\n", o.Text)
		}
		if withAnswers {
			fmt.Fprintf(out, "\nRespuesta correcta: %s\n", w.CorrectText())
		}

	case *quiz.Matching:
		m := w.Question()
		printPrompt(out, m.Prompt, nil, m.Image, res)
		for _, row := range m.Left {
			fmt.Fprintf(out, "  %s. %s\n", row.ID, row.Text)
		}
		fmt.Fprintln(out, "\nOpciones:")
		for _, o := range w.Choices() {
			fmt.Fprintf(out, "  - %s\n", o.Text)
		}
		if withAnswers {
			fmt.Fprintln(out, "\nSolución:")
			for _, row := range m.Left {
				fmt.Fprintf(out, "  %s → %s\n", row.ID, w.SolutionText(row.ID))
			}
		}

	case *quiz.ImageMatching:
		im := w.Question()
		printPrompt(out, im.Prompt, nil, "", res)
		for i, img := range im.Images {
			line := fmt.Sprintf("  Figura %d: %s", i+1, res.Resolve(img.Src))
			if withAnswers {
				line += " → " + w.CorrectText(img.ID)
			}
			fmt.Fprintln(out, line)
		}
		fmt.Fprintln(out, "\nTipos:")
		for _, o := range w.Options() {
			fmt.Fprintf(out, "  - %s\n", o.Text)
		}
	}
	return nil
}

func printPrompt(out io.Writer, prompt string, statements []string, image string, res assets.Resolver) {
	if prompt != "" {
		fmt.Fprintln(out, prompt)
	}
	for _, s := range statements {
		fmt.Fprintf(out, "  • %s\n", s)
	}
	if image != "" {
		fmt.Fprintf(out, "Imagen: %s\n", res.Resolve(image))
	}
	fmt.Fprintln(out)
}
