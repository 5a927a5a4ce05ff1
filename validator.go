// Package datalake validates Ed-Fi data lake JSON documents against the
// component schemas of an OpenAPI specification.
//
// Each document's schema is inferred from its location under the data lake
// root: <root>/<namespace>/<entityType>/.../<file>.json maps to
// <namespacePrefix>_<singular(entityType)>, e.g. ed-fi/students/s.json is
// checked against edFi_student.
package datalake

import (
	"context"
	"log/slog"
	"time"

	"github.com/miorlan/datalake-validator/internal/domain"
	"github.com/miorlan/datalake-validator/internal/infrastructure"
	"github.com/miorlan/datalake-validator/internal/naming"
	"github.com/miorlan/datalake-validator/internal/usecase"
)

// ValidationResult is the outcome of validating one document.
type ValidationResult = domain.ValidationResult

// Summary aggregates the outcome of a validation run.
type Summary = domain.Summary

// NewSummary computes a Summary over results.
func NewSummary(results []ValidationResult) Summary {
	return domain.NewSummary(results)
}

// Option represents a configuration option for the validator
type Option func(*Config)

// Config holds the configuration for the validator
type Config struct {
	HTTPTimeout       time.Duration
	Logger            *slog.Logger
	IrregularPlurals  map[string]string
	NamespacePrefixes map[string]string
	AllErrors         bool
}

// WithHTTPTimeout sets the timeout for fetching a specification over HTTP
func WithHTTPTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.HTTPTimeout = timeout
	}
}

// WithLogger sets the structured logger. Logging is disabled by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithIrregularPlurals adds plural → singular entries consulted before the
// suffix rules, e.g. {"people": "person"}.
func WithIrregularPlurals(irregular map[string]string) Option {
	return func(c *Config) {
		c.IrregularPlurals = irregular
	}
}

// WithNamespacePrefixes adds directory → schema prefix mappings, e.g.
// {"ed-fi": "edFi"}. Unmapped namespaces are used verbatim.
func WithNamespacePrefixes(prefixes map[string]string) Option {
	return func(c *Config) {
		c.NamespacePrefixes = prefixes
	}
}

// WithAllErrors reports every schema violation in a document instead of the first one
func WithAllErrors(all bool) Option {
	return func(c *Config) {
		c.AllErrors = all
	}
}

// defaultConfig returns the default configuration
func defaultConfig() *Config {
	return &Config{
		HTTPTimeout: infrastructure.DefaultHTTPTimeout,
	}
}

// Validator validates the documents of one data lake against one specification.
// The schema table is loaded once in New and never changes afterwards.
type Validator struct {
	useCase      *usecase.ValidateUseCase
	table        *infrastructure.SchemaTable
	dataLakeRoot string
	specLocation string
}

// New loads the OpenAPI specification from specLocation (a local path or an
// http(s) URL) and returns a Validator for the data lake at dataLakeRoot.
// A specification that cannot be fetched or parsed is a fatal error.
//
// Example:
//
//	v, err := datalake.New(ctx, "/data/lake", "https://api.ed-fi.org/v7.1/api/metadata/data/v3/resources/swagger.json")
//	if err != nil {
//		return err
//	}
//	results, summary, err := v.ValidateAll(ctx)
func New(ctx context.Context, dataLakeRoot, specLocation string, opts ...Option) (*Validator, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	var logger domain.Logger = infrastructure.NopLogger{}
	if config.Logger != nil {
		logger = infrastructure.NewSlogAdapter(config.Logger)
	}

	fileLoader := infrastructure.NewFileLoaderWithTimeout(config.HTTPTimeout)
	parser := infrastructure.NewParser()

	table, err := infrastructure.LoadSchemaTable(ctx, fileLoader, parser, specLocation, logger)
	if err != nil {
		return nil, err
	}

	useCase := usecase.NewValidateUseCase(
		dataLakeRoot,
		fileLoader,
		parser,
		infrastructure.NewFileWalker(logger),
		naming.NewResolver(config.NamespacePrefixes, config.IrregularPlurals),
		infrastructure.NewSchemaValidator(table, config.AllErrors),
		logger,
	)

	return &Validator{
		useCase:      useCase,
		table:        table,
		dataLakeRoot: dataLakeRoot,
		specLocation: specLocation,
	}, nil
}

// ValidateAll validates every .json file under the data lake root in
// directory-walk order. A cancelled context stops the run and returns
// ctx.Err() without results.
func (v *Validator) ValidateAll(ctx context.Context) ([]ValidationResult, Summary, error) {
	return v.useCase.ValidateAll(ctx)
}

// ValidateFile validates a single document. Failures are reported in the
// result, never as an error.
func (v *Validator) ValidateFile(ctx context.Context, path string) ValidationResult {
	return v.useCase.ValidateFile(ctx, path)
}

// AvailableSchemas returns the sorted names of all component schemas.
func (v *Validator) AvailableSchemas() []string {
	return v.table.Names()
}

// DataLakeRoot returns the root directory the validator was created with.
func (v *Validator) DataLakeRoot() string {
	return v.dataLakeRoot
}

// SpecLocation returns the specification path or URL the validator was created with.
func (v *Validator) SpecLocation() string {
	return v.specLocation
}

// ValidateAll is a shortcut for New followed by (*Validator).ValidateAll.
func ValidateAll(ctx context.Context, dataLakeRoot, specLocation string, opts ...Option) ([]ValidationResult, Summary, error) {
	v, err := New(ctx, dataLakeRoot, specLocation, opts...)
	if err != nil {
		return nil, Summary{}, err
	}
	return v.ValidateAll(ctx)
}
