package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	datalake "github.com/miorlan/datalake-validator"
	"github.com/spf13/cobra"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// exitError несет код выхода; сообщение уже выведено пользователю
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// options - значения флагов командной строки
type options struct {
	dataLakeRoot string
	openAPISpec  string
	file         string
	logLevel     string
	quiet        bool
	listSchemas  bool
	report       string
	allErrors    bool
}

// run выполняет команду и возвращает код выхода процесса
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	// Ошибки разбора флагов
	fmt.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
	return exitUsage
}

// newRootCommand создает команду datalake-validator
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "datalake-validator --data-lake-root DIR --openapi-spec PATH|URL",
		Short: "Validate JSON files in Ed-Fi data lake against OpenAPI schemas",
		Long: `Validate JSON files in Ed-Fi data lake against OpenAPI schemas.

The schema of each file is inferred from its location:
<root>/<namespace>/<entityType>/.../<file>.json is checked against
<namespacePrefix>_<singular(entityType)>, e.g. ed-fi/students/s.json
against edFi_student.`,
		Example: `  # Validate using local OpenAPI spec
  datalake-validator --data-lake-root /path/to/datalake --openapi-spec /path/to/spec.json

  # Validate using remote OpenAPI spec
  datalake-validator --data-lake-root /path/to/datalake --openapi-spec https://api.ed-fi.org/spec.json

  # Validate single file
  datalake-validator --data-lake-root /path/to/datalake --openapi-spec spec.json --file ed-fi/students/student-1.json`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context(), opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVar(&opts.dataLakeRoot, "data-lake-root", "", "Root directory of the data lake containing JSON files")
	flags.StringVar(&opts.openAPISpec, "openapi-spec", "", "Path or URL to the OpenAPI specification file (JSON or YAML)")
	flags.StringVar(&opts.file, "file", "", "Validate a specific file (relative to the data lake root) instead of all files")
	flags.StringVar(&opts.logLevel, "log-level", "INFO", "Set the logging level: DEBUG, INFO, WARNING, ERROR")
	flags.BoolVar(&opts.quiet, "quiet", false, "Only output summary, suppress detailed results")
	flags.BoolVar(&opts.listSchemas, "list-schemas", false, "List available schemas and exit")
	flags.StringVar(&opts.report, "report", "", "Also write results and summary to this file (YAML for .yaml/.yml, JSON otherwise)")
	flags.BoolVar(&opts.allErrors, "all-errors", false, "Report every schema violation per file instead of the first one")

	for _, name := range []string{"data-lake-root", "openapi-spec"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}

	return cmd
}

// parseLogLevel переводит уровни командной строки в slog
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING", "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q (choose from DEBUG, INFO, WARNING, ERROR)", level)
}

// runValidate выполняет проверку и печатает результаты
func runValidate(ctx context.Context, opts *options, stdout, stderr io.Writer) error {
	level, err := parseLogLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if _, err := os.Stat(opts.dataLakeRoot); err != nil {
		fmt.Fprintf(stdout, "Error: Data lake root directory does not exist: %s\n", opts.dataLakeRoot)
		return &exitError{code: exitFailure}
	}

	logger.Info("initializing Ed-Fi JSON validator")
	v, err := datalake.New(ctx, opts.dataLakeRoot, opts.openAPISpec,
		datalake.WithLogger(logger),
		datalake.WithAllErrors(opts.allErrors),
	)
	if err != nil {
		return fail(ctx, logger, stdout, err)
	}

	if opts.listSchemas {
		printSchemas(stdout, v.AvailableSchemas())
		return nil
	}

	var (
		results []datalake.ValidationResult
		summary datalake.Summary
	)
	if opts.file != "" {
		path := opts.file
		if !filepath.IsAbs(path) {
			path = filepath.Join(opts.dataLakeRoot, path)
		}
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(stdout, "Error: File does not exist: %s\n", path)
			return &exitError{code: exitFailure}
		}
		results, summary, err = validateSingle(ctx, v, path)
	} else {
		results, summary, err = v.ValidateAll(ctx)
	}
	if err != nil {
		return fail(ctx, logger, stdout, err)
	}

	if !opts.quiet {
		printResults(stdout, results)
	}
	printSummary(stdout, summary)

	if opts.report != "" {
		if err := writeReport(opts.report, results, summary); err != nil {
			return fail(ctx, logger, stdout, err)
		}
		logger.Info("report written", "path", opts.report)
	}

	if summary.InvalidFiles > 0 {
		return &exitError{code: exitFailure}
	}
	return nil
}

// fileValidator проверяет один документ
type fileValidator interface {
	ValidateFile(ctx context.Context, path string) datalake.ValidationResult
}

// validateSingle проверяет один файл; прерывание возвращается как ошибка без сводки
func validateSingle(ctx context.Context, v fileValidator, path string) ([]datalake.ValidationResult, datalake.Summary, error) {
	results := []datalake.ValidationResult{v.ValidateFile(ctx, path)}
	if err := ctx.Err(); err != nil {
		return nil, datalake.Summary{}, err
	}
	return results, datalake.NewSummary(results), nil
}

// fail печатает фатальную ошибку; прерывание сообщается отдельно
func fail(ctx context.Context, logger *slog.Logger, stdout io.Writer, err error) error {
	if ctx.Err() != nil {
		fmt.Fprintln(stdout, "\nValidation interrupted by user")
		return &exitError{code: exitFailure}
	}
	logger.Error("validation failed", "error", err)
	fmt.Fprintf(stdout, "Error: %v\n", err)
	return &exitError{code: exitFailure}
}
