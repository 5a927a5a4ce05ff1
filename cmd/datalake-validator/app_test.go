package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	datalake "github.com/miorlan/datalake-validator"
	"github.com/miorlan/datalake-validator/internal/domain"
	"github.com/miorlan/datalake-validator/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, ctx context.Context, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(ctx, args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_ValidateAll(t *testing.T) {
	root := testutil.NewDataLake(t)
	spec := testutil.WriteSpecJSON(t)

	code, out, logs := runCLI(t, context.Background(), "--data-lake-root", root, "--openapi-spec", spec)

	assert.Equal(t, exitFailure, code)
	assert.Contains(t, out, "VALIDATION RESULTS")
	assert.Contains(t, out, "✓ VALID FILES (3):")
	assert.Contains(t, out, "✗ INVALID FILES (1):")
	assert.Contains(t, out, filepath.Join(root, "ed-fi", "students", "student-2.json")+" → edFi_student")
	assert.Contains(t, out, "    ERROR: Schema validation failed:")
	assert.Contains(t, out, "Total files processed: 4")
	assert.Contains(t, out, "Success rate: 75.0%")
	assert.Contains(t, logs, "level=INFO")
}

func TestRun_AllValid(t *testing.T) {
	root := testutil.NewDataLake(t)
	require.NoError(t, os.Remove(filepath.Join(root, "ed-fi", "students", "student-2.json")))

	code, out, _ := runCLI(t, context.Background(),
		"--data-lake-root", root, "--openapi-spec", testutil.WriteSpecYAML(t), "--quiet", "--log-level", "error")

	assert.Equal(t, exitOK, code)
	assert.NotContains(t, out, "VALIDATION RESULTS")
	assert.Contains(t, out, "VALIDATION SUMMARY")
	assert.Contains(t, out, "Success rate: 100.0%")
}

func TestRun_SingleFile(t *testing.T) {
	root := testutil.NewDataLake(t)
	spec := testutil.WriteSpecJSON(t)

	code, out, _ := runCLI(t, context.Background(),
		"--data-lake-root", root, "--openapi-spec", spec, "--file", filepath.Join("ed-fi", "students", "student-1.json"))
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Total files processed: 1")
	assert.Contains(t, out, "Success rate: 100.0%")

	code, out, _ = runCLI(t, context.Background(),
		"--data-lake-root", root, "--openapi-spec", spec, "--file", filepath.Join("ed-fi", "students", "nope.json"))
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, out, "Error: File does not exist: "+filepath.Join(root, "ed-fi", "students", "nope.json"))
}

func TestRun_ListSchemas(t *testing.T) {
	code, out, _ := runCLI(t, context.Background(),
		"--data-lake-root", t.TempDir(), "--openapi-spec", testutil.WriteSpecJSON(t), "--list-schemas")

	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Available schemas (4):\n  edFi_academicWeek\n  edFi_schoolReference\n  edFi_student\n  tpdm_candidate\n")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	missingRoot := filepath.Join(dir, "missing")
	missingSpec := filepath.Join(dir, "missing.json")

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
		wantErr  string
	}{
		{
			name:     "missing data lake root",
			args:     []string{"--data-lake-root", missingRoot, "--openapi-spec", missingSpec},
			wantCode: exitFailure,
			wantOut:  "Error: Data lake root directory does not exist: " + missingRoot,
		},
		{
			name:     "missing spec",
			args:     []string{"--data-lake-root", dir, "--openapi-spec", missingSpec},
			wantCode: exitFailure,
			wantOut:  "Error: failed to load OpenAPI specification",
		},
		{
			name:     "required flags",
			args:     []string{"--data-lake-root", dir},
			wantCode: exitUsage,
			wantErr:  `required flag(s) "openapi-spec" not set`,
		},
		{
			name:     "bad log level",
			args:     []string{"--data-lake-root", dir, "--openapi-spec", missingSpec, "--log-level", "TRACE"},
			wantCode: exitUsage,
			wantErr:  "invalid log level",
		},
		{
			name:     "positional argument",
			args:     []string{"--data-lake-root", dir, "--openapi-spec", missingSpec, "extra"},
			wantCode: exitUsage,
			wantErr:  "unknown command",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, context.Background(), tt.args...)
			assert.Equal(t, tt.wantCode, code)
			assert.Contains(t, out, tt.wantOut)
			assert.Contains(t, errOut, tt.wantErr)
		})
	}
}

func TestRun_Interrupted(t *testing.T) {
	root := testutil.NewDataLake(t)
	spec := testutil.WriteSpecJSON(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	code, out, _ := runCLI(t, ctx, "--data-lake-root", root, "--openapi-spec", spec)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, out, "Validation interrupted by user")
	assert.NotContains(t, out, "VALIDATION SUMMARY")
}

// cancellingValidator имитирует прерывание во время проверки файла
type cancellingValidator struct {
	cancel context.CancelFunc
}

func (c *cancellingValidator) ValidateFile(ctx context.Context, path string) datalake.ValidationResult {
	c.cancel()
	return domain.NewInvalidResult(path, "edFi_student", "Unexpected error: "+ctx.Err().Error())
}

func TestValidateSingle_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results, summary, err := validateSingle(ctx, &cancellingValidator{cancel: cancel}, "/lake/ed-fi/students/a.json")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)
	assert.Equal(t, datalake.Summary{}, summary)

	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	failErr := fail(ctx, logger, &out, err)

	var exitErr *exitError
	require.ErrorAs(t, failErr, &exitErr)
	assert.Equal(t, exitFailure, exitErr.code)
	assert.Contains(t, out.String(), "Validation interrupted by user")
	assert.NotContains(t, out.String(), "Unexpected error")
}

func TestValidateSingle(t *testing.T) {
	root := testutil.NewDataLake(t)
	v, err := datalake.New(context.Background(), root, testutil.WriteSpecJSON(t))
	require.NoError(t, err)

	results, summary, err := validateSingle(context.Background(), v, filepath.Join(root, "ed-fi", "students", "student-2.json"))
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, datalake.Summary{TotalFiles: 1, InvalidFiles: 1}, summary)
}

func TestRun_VersionAndHelp(t *testing.T) {
	code, out, _ := runCLI(t, context.Background(), "--version")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "version "+version)

	code, out, _ = runCLI(t, context.Background(), "--help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, out, "Validate JSON files in Ed-Fi data lake")
	assert.Contains(t, out, "--data-lake-root")
	assert.Contains(t, out, "--openapi-spec")
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "WARNING", want: slog.LevelWarn},
		{in: "Error", want: slog.LevelError},
		{in: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
