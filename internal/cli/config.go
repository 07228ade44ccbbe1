package cli

import (
	"io"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// EnvPrefix is prepended to every configuration variable name.
const EnvPrefix = "FIELDCHECK_"

// Config holds settings read from FIELDCHECK_* environment variables.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Format    string `env:"FORMAT" envDefault:"json"`
	EnvFile   string `env:"ENV_FILE"`
}

// LoadConfig parses the environment. When FIELDCHECK_ENV_FILE names a dotenv
// file its variables fill in whatever the environment does not set. The
// process environment is never modified.
func LoadConfig(opts ...config.Option) (Config, error) {
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)

	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	if cfg.EnvFile == "" {
		return cfg, nil
	}

	vars, err := config.ReadEnv(cfg.EnvFile)
	if err != nil {
		return Config{}, err
	}
	maps.Copy(vars, config.Environment(opts...))

	cfg = Config{}
	if err := config.Load(&cfg, append(opts, config.WithEnvironment(vars))...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger builds the command logger writing to w.
func NewLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	return logger.New(
		logger.WithOutput(w),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("fieldcheck")),
	), nil
}
