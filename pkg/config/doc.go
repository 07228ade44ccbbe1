// Package config loads command configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for optional `.env` files and
// `github.com/caarlos0/env/v11` for parsing the environment into a struct
// annotated with `env` tags:
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FIELDCHECK_")); err != nil {
//	    return err
//	}
//
// Values already present in the process environment win over values read from
// `.env` files. Every call parses the environment again; nothing is cached.
package config
