package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pmquiz/internal/app"
	"github.com/abhisek/pmquiz/internal/assets"
	"github.com/abhisek/pmquiz/internal/logger"
	"github.com/abhisek/pmquiz/internal/quiz"
	"github.com/abhisek/pmquiz/internal/screens/question"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the question list directly, skipping the splash",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, true)
	},
}

// runApp loads the bank, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	log, err := logger.ForTUI(cfg)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	b, err := openBank()
	if err != nil {
		return err
	}
	log.Info("question bank loaded",
		zap.String("source", bankSource()),
		zap.Int("questions", b.Len()),
	)

	return app.Run(app.Options{
		Bank: b,
		Env: question.Env{
			Assets: assets.New(cfg.BaseURL),
			Rand:   quiz.NewRand(cfg.Seed),
			Log:    log,
		},
		SkipWelcome: skipWelcome,
	})
}

func bankSource() string {
	if cfg.Bank == "" {
		return "embedded"
	}
	return cfg.Bank
}
