// Package cli implements the fieldcheck command: read one field from a JSON
// or YAML document and validate it with pkg/validator.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/fieldkit/internal/document"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/validator"
)

// Exit codes returned by Run and Main.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitError   = 2
)

var exampleUsage = strings.TrimSpace(`
  echo '{"age": 30}' | fieldcheck age --as int
  fieldcheck name --as string --non-empty --input user.yaml --format yaml
  fieldcheck nickname --as 'string?' --input user.json
`)

type options struct {
	as       string
	nonEmpty bool
	input    string
	format   string
}

// NewCommand builds the root cobra command. Results go to the command's
// output stream and validation failures are returned as errors.
func NewCommand(cfg Config, log *slog.Logger) *cobra.Command {
	opts := options{format: cfg.Format}

	cmd := &cobra.Command{
		Use:           "fieldcheck <field>",
		Short:         "Validate a single field of a JSON or YAML document",
		Long:          "Read a document, look up a top-level field and print its value narrowed to the requested type.\nAbsent fields are treated as null.",
		Example:       exampleUsage,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, log, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.as, "as", string(AccessRequired), "accessor: "+accessorList())
	flags.BoolVar(&opts.nonEmpty, "non-empty", false, "reject an empty string before the accessor runs")
	flags.StringVarP(&opts.input, "input", "i", "-", "document path, - for stdin")
	flags.StringVarP(&opts.format, "format", "f", opts.format, "document format: json or yaml")

	return cmd
}

func run(cmd *cobra.Command, log *slog.Logger, opts options, field string) error {
	accessor, err := ParseAccessor(opts.as)
	if err != nil {
		return err
	}
	format, err := document.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	doc, err := readDocument(cmd.InOrStdin(), opts.input, format)
	if err != nil {
		return err
	}
	log.Debug("document decoded",
		slog.String("input", opts.input),
		slog.String("format", string(format)),
		slog.Int("fields", len(doc)),
	)

	f := validator.From(field, document.Lookup(doc, field))
	if opts.nonEmpty {
		if f, err = f.RequireNonEmptyString(); err != nil {
			log.Warn("field rejected", logger.Validation(err))
			return err
		}
	}

	out, err := accessor.Apply(f)
	if err != nil {
		log.Warn("field rejected", logger.Validation(err))
		return err
	}

	log.Debug("field accepted", logger.Field(field), slog.String("as", string(accessor)))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func readDocument(stdin io.Reader, path string, format document.Format) (map[string]any, error) {
	if path == "" || path == "-" {
		return document.Decode(stdin, format)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	return document.Decode(file, format)
}

// Run executes the command with explicit streams and returns the exit code:
// ExitInvalid for validation failures, ExitError for everything else.
func Run(ctx context.Context, cfg Config, log *slog.Logger, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := NewCommand(cfg, log)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(stderr, err)
	if validator.IsValidationError(err) {
		return ExitInvalid
	}
	return ExitError
}

// Main loads configuration from the environment and runs the command.
func Main(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return ExitError
	}

	log, err := NewLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "logger: %v\n", err)
		return ExitError
	}

	return Run(ctx, cfg, log, args, stdin, stdout, stderr)
}
