package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewValidResult(t *testing.T) {
	r := NewValidResult("/path/to/file.json", "edFi_student")

	assert.Equal(t, "/path/to/file.json", r.FilePath)
	assert.Equal(t, "edFi_student", r.SchemaName)
	assert.True(t, r.IsValid)
	assert.Empty(t, r.Errors)
	assert.NotNil(t, r.Errors)
}

func TestNewInvalidResult(t *testing.T) {
	errs := []string{"Missing required field", "Invalid format"}
	r := NewInvalidResult("/path/to/file.json", "edFi_student", errs...)

	assert.False(t, r.IsValid)
	assert.Equal(t, errs, r.Errors)

	errs[0] = "changed"
	assert.Equal(t, "Missing required field", r.Errors[0])
}

func TestNewSummary(t *testing.T) {
	tests := []struct {
		name    string
		results []ValidationResult
		want    Summary
	}{
		{
			name:    "empty",
			results: nil,
			want:    Summary{},
		},
		{
			name: "three of four valid",
			results: []ValidationResult{
				NewValidResult("a.json", "edFi_academicWeek"),
				NewValidResult("b.json", "edFi_student"),
				NewInvalidResult("c.json", "edFi_student", "boom"),
				NewValidResult("d.json", "tpdm_candidate"),
			},
			want: Summary{TotalFiles: 4, ValidFiles: 3, InvalidFiles: 1, SuccessRate: 75.0},
		},
		{
			name: "all invalid",
			results: []ValidationResult{
				NewInvalidResult("a.json", UnknownSchema, "Cannot determine schema from file path"),
			},
			want: Summary{TotalFiles: 1, ValidFiles: 0, InvalidFiles: 1, SuccessRate: 0},
		},
		{
			name: "single valid",
			results: []ValidationResult{
				NewValidResult("a.json", "edFi_student"),
			},
			want: Summary{TotalFiles: 1, ValidFiles: 1, InvalidFiles: 0, SuccessRate: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewSummary(tt.results))
		})
	}
}

func TestErrDocumentInvalid_Error(t *testing.T) {
	err := &ErrDocumentInvalid{Schema: "edFi_student", Messages: []string{"a", "b"}}
	assert.Equal(t, "a; b", err.Error())
}
