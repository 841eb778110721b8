package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/pmquiz/internal/bank"
	"github.com/abhisek/pmquiz/internal/config"
)

// cfg is loaded once per invocation, before any command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pmquiz",
	Short: "Study quiz for a project-management course",
	Long:  "Página de Estudio – Gestión de Proyectos: a terminal quiz with multiple-choice, matching and image-labeling questions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(config.DefaultOptions(cmd.Flags()))
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(answerKeyCmd)
	rootCmd.AddCommand(serveAssetsCmd)
	rootCmd.AddCommand(versionCmd)
}

// openBank returns the bank selected by --bank / PMQUIZ_BANK, or the
// embedded bank.
func openBank() (*bank.Bank, error) {
	return bank.Open(cfg.Bank)
}
