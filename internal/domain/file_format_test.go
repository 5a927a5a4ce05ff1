package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		filePath string
		want     FileFormat
	}{
		{
			name:     "YAML file with .yaml extension",
			filePath: "test.yaml",
			want:     FormatYAML,
		},
		{
			name:     "YAML file with .yml extension",
			filePath: "test.yml",
			want:     FormatYAML,
		},
		{
			name:     "JSON file",
			filePath: "test.json",
			want:     FormatJSON,
		},
		{
			name:     "JSON file with upper case extension",
			filePath: "/lake/ed-fi/students/STUDENT-1.JSON",
			want:     FormatJSON,
		},
		{
			name:     "JSON file with mixed case extension",
			filePath: "student.Json",
			want:     FormatJSON,
		},
		{
			name:     "File without extension",
			filePath: "test",
			want:     FormatUnknown,
		},
		{
			name:     "JSON suffix without dot",
			filePath: "notjson",
			want:     FormatUnknown,
		},
		{
			name:     "Backup of JSON file",
			filePath: "student.json.bak",
			want:     FormatUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.filePath))
		})
	}
}

func TestIsJSONFile(t *testing.T) {
	assert.True(t, IsJSONFile("a/b/c.json"))
	assert.True(t, IsJSONFile("a/b/c.JSON"))
	assert.False(t, IsJSONFile("a/b/c.yaml"))
	assert.False(t, IsJSONFile("a/b/json"))
}
