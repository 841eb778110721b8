package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the app reads.
const EnvPrefix = "PMQUIZ"

// Config holds application configuration loaded from files, the environment and flags.
type Config struct {
	Env     string `mapstructure:"env"`      // current environment (local, production)
	BaseURL string `mapstructure:"base_url"` // prefix for image references
	Bank    string `mapstructure:"bank"`     // optional question bank file, embedded bank when empty
	Seed    uint64 `mapstructure:"seed"`     // shuffle seed, random when zero
	LogFile string `mapstructure:"log_file"` // log destination while the TUI runs
}

// Production reports whether the app runs in the production environment.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// Options controls where Load looks for configuration.
type Options struct {
	// Flags are bound on top of every other source. Only flags that were
	// explicitly set override lower layers.
	Flags *pflag.FlagSet

	// DotEnv files are loaded into the process environment first.
	// Missing files are skipped.
	DotEnv []string

	// ConfigPaths are searched for pmquiz.yaml.
	ConfigPaths []string
}

// DefaultOptions reads .env and pmquiz.yaml from the working directory or ./config.
func DefaultOptions(flags *pflag.FlagSet) Options {
	return Options{
		Flags:       flags,
		DotEnv:      []string{".env"},
		ConfigPaths: []string{".", "./config"},
	}
}

// Load reads configuration with precedence flag > env > file > default.
func Load(opts Options) (*Config, error) {
	for _, f := range opts.DotEnv {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetConfigName("pmquiz")
	v.SetConfigType("yaml")
	for _, p := range opts.ConfigPaths {
		v.AddConfigPath(p)
	}

	v.SetDefault("env", "local")
	v.SetDefault("base_url", "/")
	v.SetDefault("bank", "")
	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if len(opts.ConfigPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var fileLookupErr viper.ConfigFileNotFoundError
			if !errors.As(err, &fileLookupErr) {
				return nil, fmt.Errorf("error loading config file: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for key, name := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag --%s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "/"
	}
	return &cfg, nil
}

// flagKeys maps configuration keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"env":      "env",
	"base_url": "base-url",
	"bank":     "bank",
	"seed":     "seed",
	"log_file": "log-file",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("env", "", "Environment name, 'production' switches to JSON logs (overrides PMQUIZ_ENV)")
	fs.String("base-url", "", "Base URL prefixed to image references (overrides PMQUIZ_BASE_URL)")
	fs.String("bank", "", "Path to a question bank YAML file (overrides PMQUIZ_BANK)")
	fs.Uint64("seed", 0, "Shuffle seed for reproducible sessions (overrides PMQUIZ_SEED)")
	fs.String("log-file", "", "Write logs to this file while the quiz runs (overrides PMQUIZ_LOG_FILE)")
}
