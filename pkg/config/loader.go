package config

import (
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option tunes how Load reads the environment.
type Option func(*env.Options)

// WithPrefix prepends prefix to every `env` tag of the target struct.
func WithPrefix(prefix string) Option {
	return func(o *env.Options) { o.Prefix = prefix }
}

// WithEnvironment replaces the process environment with the given map.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) { o.Environment = vars }
}

// LoadEnv reads the given .env files into the process environment without
// overriding variables that are already set. Missing files are an error.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ReadEnv parses the given .env files into a map without touching the
// process environment. Later files win over earlier ones.
func ReadEnv(paths ...string) (map[string]string, error) {
	if len(paths) == 0 {
		return map[string]string{}, nil
	}
	vars, err := godotenv.Read(paths...)
	if err != nil {
		return nil, errors.Join(ErrLoadingEnvFile, err)
	}
	return vars, nil
}

// Environment returns a copy of the variables Load would see with opts:
// the map given to WithEnvironment, or the process environment.
func Environment(opts ...Option) map[string]string {
	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Environment != nil {
		return maps.Clone(o.Environment)
	}
	return env.ToMap(os.Environ())
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// Load parses environment variables into v according to its field tags.
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
