// Package testutil provides data lake and OpenAPI fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

// SampleOpenAPISpec returns a small Ed-Fi style OpenAPI document with
// edFi_academicWeek, edFi_student, tpdm_candidate and edFi_schoolReference.
func SampleOpenAPISpec() map[string]interface{} {
	return map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":   "Ed-Fi API",
			"version": "1.0.0",
		},
		"components": map[string]interface{}{
			"schemas": map[string]interface{}{
				"edFi_academicWeek": map[string]interface{}{
					"required": []interface{}{
						"weekIdentifier",
						"beginDate",
						"endDate",
						"totalInstructionalDays",
						"schoolReference",
					},
					"type": "object",
					"properties": map[string]interface{}{
						"id": map[string]interface{}{"type": "string", "description": ""},
						"weekIdentifier": map[string]interface{}{
							"maxLength":          80,
							"minLength":          5,
							"type":               "string",
							"description":        "The school label for the week.",
							"x-Ed-Fi-isIdentity": true,
						},
						"beginDate":              map[string]interface{}{"type": "string", "format": "date"},
						"endDate":                map[string]interface{}{"type": "string", "format": "date"},
						"totalInstructionalDays": map[string]interface{}{"type": "integer"},
						"schoolReference": map[string]interface{}{
							"$ref": "#/components/schemas/edFi_schoolReference",
						},
					},
				},
				"edFi_student": map[string]interface{}{
					"required": []interface{}{"birthDate", "firstName", "lastSurname", "studentUniqueId"},
					"type":     "object",
					"properties": map[string]interface{}{
						"id": map[string]interface{}{"type": "string", "description": ""},
						"studentUniqueId": map[string]interface{}{
							"maxLength":          32,
							"type":               "string",
							"description":        "A unique alphanumeric code assigned to a student.",
							"x-Ed-Fi-isIdentity": true,
						},
						"birthDate":   map[string]interface{}{"type": "string", "format": "date"},
						"firstName":   map[string]interface{}{"type": "string"},
						"lastSurname": map[string]interface{}{"type": "string"},
					},
				},
				"tpdm_candidate": map[string]interface{}{
					"required": []interface{}{"candidateIdentifier", "birthDate", "firstName", "lastSurname"},
					"type":     "object",
					"properties": map[string]interface{}{
						"id": map[string]interface{}{"type": "string", "description": ""},
						"candidateIdentifier": map[string]interface{}{
							"maxLength":          32,
							"minLength":          1,
							"type":               "string",
							"description":        "A unique alphanumeric code assigned to a candidate.",
							"x-Ed-Fi-isIdentity": true,
						},
						"birthDate":   map[string]interface{}{"type": "string", "format": "date"},
						"firstName":   map[string]interface{}{"type": "string"},
						"lastSurname": map[string]interface{}{"type": "string"},
					},
				},
				"edFi_schoolReference": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"schoolId": map[string]interface{}{"type": "integer"},
					},
					"required": []interface{}{"schoolId"},
				},
			},
		},
	}
}

// ValidAcademicWeek returns an academic week document conforming to edFi_academicWeek.
func ValidAcademicWeek() map[string]interface{} {
	return map[string]interface{}{
		"id":                     "week-001",
		"weekIdentifier":         "Week 1 Fall 2023",
		"beginDate":              "2023-09-01",
		"endDate":                "2023-09-05",
		"totalInstructionalDays": 5,
		"schoolReference": map[string]interface{}{
			"schoolId": 123,
		},
	}
}

// ValidStudent returns a student document conforming to edFi_student.
func ValidStudent() map[string]interface{} {
	return map[string]interface{}{
		"id":              "student-001",
		"studentUniqueId": "ST12345",
		"birthDate":       "2010-05-15",
		"firstName":       "Jane",
		"lastSurname":     "Doe",
	}
}

// InvalidStudent returns a student document missing the required lastSurname.
func InvalidStudent() map[string]interface{} {
	return map[string]interface{}{
		"id":              "student-002",
		"studentUniqueId": "ST67890",
		"birthDate":       "2011-03-20",
		"firstName":       "John",
	}
}

// ValidCandidate returns a candidate document conforming to tpdm_candidate.
func ValidCandidate() map[string]interface{} {
	return map[string]interface{}{
		"id":                  "candidate-001",
		"candidateIdentifier": "CD12345",
		"birthDate":           "1990-01-01",
		"firstName":           "Teacher",
		"lastSurname":         "Candidate",
	}
}

// WriteJSON encodes v as JSON into path, creating parent directories.
func WriteJSON(t testing.TB, path string, v interface{}) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to encode %s: %v", path, err)
	}
	WriteFile(t, path, data)
}

// WriteFile writes raw data into path, creating parent directories.
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

// NewDataLake creates the four-file data lake used across tests:
//
//	ed-fi/academicWeeks/academicWeek-1.json  valid
//	ed-fi/students/student-1.json            valid
//	ed-fi/students/student-2.json            missing lastSurname
//	tpdm/candidates/candidate-1.json         valid
func NewDataLake(t testing.TB) string {
	t.Helper()
	root := t.TempDir()
	WriteJSON(t, filepath.Join(root, "ed-fi", "academicWeeks", "academicWeek-1.json"), ValidAcademicWeek())
	WriteJSON(t, filepath.Join(root, "ed-fi", "students", "student-1.json"), ValidStudent())
	WriteJSON(t, filepath.Join(root, "ed-fi", "students", "student-2.json"), InvalidStudent())
	WriteJSON(t, filepath.Join(root, "tpdm", "candidates", "candidate-1.json"), ValidCandidate())
	return root
}

// WriteSpecJSON writes SampleOpenAPISpec as JSON and returns its path.
func WriteSpecJSON(t testing.TB) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "openapi.json")
	WriteJSON(t, path, SampleOpenAPISpec())
	return path
}

// WriteSpecYAML writes SampleOpenAPISpec as YAML and returns its path.
func WriteSpecYAML(t testing.TB) string {
	t.Helper()
	data, err := yaml.Marshal(SampleOpenAPISpec())
	if err != nil {
		t.Fatalf("failed to encode spec as YAML: %v", err)
	}
	path := filepath.Join(t.TempDir(), "openapi.yaml")
	WriteFile(t, path, data)
	return path
}
