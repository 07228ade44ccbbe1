package cli_test

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/internal/cli"
	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

type result struct {
	code   int
	stdout string
	stderr string
	logs   string
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	cfg, err := cli.LoadConfig(config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)

	logs := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(logs), logger.WithTextFormatter())

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	code := cli.Run(context.Background(), cfg, log, args, strings.NewReader(stdin), stdout, stderr)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String(), logs: logs.String()}
}

func TestRun(t *testing.T) {
	t.Run("prints narrowed integer", func(t *testing.T) {
		res := execute(t, `{"age": 30}`, "age", "--as", "int")
		assert.Equal(t, cli.ExitOK, res.code)
		assert.Equal(t, "30\n", res.stdout)
		assert.Empty(t, res.stderr)
	})

	t.Run("absent optional field prints null", func(t *testing.T) {
		res := execute(t, `{}`, "age", "--as", "int?")
		assert.Equal(t, cli.ExitOK, res.code)
		assert.Equal(t, "null\n", res.stdout)
	})

	t.Run("wrong type exits invalid", func(t *testing.T) {
		res := execute(t, `{"flag": "yes"}`, "flag", "--as", "bool")
		assert.Equal(t, cli.ExitInvalid, res.code)
		assert.Empty(t, res.stdout)
		assert.Equal(t, "\"flag\" must be a boolean.\n", res.stderr)
		assert.Contains(t, res.logs, "field rejected")
		assert.Contains(t, res.logs, "validation.kind=wrong_type")
	})

	t.Run("non-empty flag rejects empty string", func(t *testing.T) {
		res := execute(t, `{"name": ""}`, "name", "--as", "string", "--non-empty")
		assert.Equal(t, cli.ExitInvalid, res.code)
		assert.Equal(t, "\"name\" cannot be an empty string.\n", res.stderr)
	})

	t.Run("empty string accepted without non-empty flag", func(t *testing.T) {
		res := execute(t, `{"name": ""}`, "name", "--as", "string")
		assert.Equal(t, cli.ExitOK, res.code)
		assert.Equal(t, "\n", res.stdout)
	})

	t.Run("required is the default accessor", func(t *testing.T) {
		res := execute(t, `{}`, "missing")
		assert.Equal(t, cli.ExitInvalid, res.code)
		assert.Equal(t, "\"missing\" cannot be null.\n", res.stderr)
	})

	t.Run("reads yaml file", func(t *testing.T) {
		res := execute(t, "", "age", "--as", "int", "--input", "testdata/user.yaml", "--format", "yaml")
		assert.Equal(t, cli.ExitOK, res.code)
		assert.Equal(t, "30\n", res.stdout)
	})

	t.Run("float is not an integer", func(t *testing.T) {
		res := execute(t, `{"age": 30.0}`, "age", "--as", "int")
		assert.Equal(t, cli.ExitInvalid, res.code)
		assert.Equal(t, "\"age\" must be an integer.\n", res.stderr)
	})

	t.Run("unknown accessor is a usage error", func(t *testing.T) {
		res := execute(t, `{}`, "age", "--as", "float")
		assert.Equal(t, cli.ExitError, res.code)
		assert.Contains(t, res.stderr, "unknown accessor")
	})

	t.Run("missing field argument", func(t *testing.T) {
		res := execute(t, `{}`)
		assert.Equal(t, cli.ExitError, res.code)
	})

	t.Run("malformed document", func(t *testing.T) {
		res := execute(t, `{"age":`, "age")
		assert.Equal(t, cli.ExitError, res.code)
		assert.Contains(t, res.stderr, "failed to decode document")
	})

	t.Run("trailing data", func(t *testing.T) {
		res := execute(t, `{"age": 30} {"age": "x"} garbage`, "age", "--as", "int")
		assert.Equal(t, cli.ExitError, res.code)
		assert.Empty(t, res.stdout)
		assert.Contains(t, res.stderr, "unexpected data after JSON object")
	})

	t.Run("missing input file", func(t *testing.T) {
		res := execute(t, "", "age", "--input", "testdata/nope.json")
		assert.Equal(t, cli.ExitError, res.code)
		assert.Contains(t, res.stderr, "open input")
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := cli.LoadConfig(config.WithEnvironment(map[string]string{}))
		require.NoError(t, err)
		assert.Equal(t, cli.Config{LogLevel: "warn", LogFormat: "text", Format: "json"}, cfg)
	})

	t.Run("reads prefixed variables", func(t *testing.T) {
		cfg, err := cli.LoadConfig(config.WithEnvironment(map[string]string{
			"FIELDCHECK_FORMAT":     "yaml",
			"FIELDCHECK_LOG_LEVEL":  "debug",
			"FIELDCHECK_LOG_FORMAT": "json",
		}))
		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.Format)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
	})

	t.Run("env file supplies settings", func(t *testing.T) {
		t.Setenv("FIELDCHECK_ENV_FILE", "testdata/fieldcheck.env")
		t.Setenv("FIELDCHECK_FORMAT", "")
		t.Setenv("FIELDCHECK_LOG_LEVEL", "")
		require.NoError(t, unsetenv("FIELDCHECK_FORMAT", "FIELDCHECK_LOG_LEVEL"))

		cfg, err := cli.LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.Format)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("env file applies to an injected environment", func(t *testing.T) {
		before, hadBefore := os.LookupEnv("FIELDCHECK_FORMAT")

		cfg, err := cli.LoadConfig(config.WithEnvironment(map[string]string{
			"FIELDCHECK_ENV_FILE":  "testdata/fieldcheck.env",
			"FIELDCHECK_LOG_LEVEL": "error",
		}))
		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.Format)
		assert.Equal(t, "error", cfg.LogLevel, "explicit variables win over the env file")
		assert.Equal(t, "text", cfg.LogFormat)

		after, hadAfter := os.LookupEnv("FIELDCHECK_FORMAT")
		assert.Equal(t, hadBefore, hadAfter)
		assert.Equal(t, before, after)
	})

	t.Run("missing env file", func(t *testing.T) {
		_, err := cli.LoadConfig(config.WithEnvironment(map[string]string{
			"FIELDCHECK_ENV_FILE": "testdata/missing.env",
		}))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})
}

func TestNewLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := cli.NewLogger(cli.Config{LogLevel: "debug", LogFormat: "text"}, buf)
	require.NoError(t, err)
	log.Debug("hello")
	assert.Contains(t, buf.String(), "component=fieldcheck")

	_, err = cli.NewLogger(cli.Config{LogLevel: "loud", LogFormat: "text"}, buf)
	assert.ErrorIs(t, err, logger.ErrInvalidLevel)

	_, err = cli.NewLogger(cli.Config{LogLevel: "info", LogFormat: "xml"}, buf)
	assert.ErrorIs(t, err, logger.ErrInvalidFormat)
}
