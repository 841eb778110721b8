package logger

import (
	"go.uber.org/zap"

	"github.com/abhisek/pmquiz/internal/config"
)

// New builds the logger for command-line use.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Production() {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}

// ForTUI builds a logger that stays off the terminal while the TUI owns it.
// Logs go to cfg.LogFile when set and are discarded otherwise.
func ForTUI(cfg *config.Config) (*zap.Logger, error) {
	if cfg.LogFile == "" {
		return zap.NewNop(), nil
	}

	zc := zap.NewDevelopmentConfig()
	if cfg.Production() {
		zc = zap.NewProductionConfig()
	}
	zc.OutputPaths = []string{cfg.LogFile}
	zc.ErrorOutputPaths = []string{cfg.LogFile}
	return zc.Build()
}
