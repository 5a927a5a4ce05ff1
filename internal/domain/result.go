package domain

import "strings"

// UnknownSchema используется, когда имя схемы не удалось вывести из пути
const UnknownSchema = "unknown"

// ValidationResult - результат проверки одного файла
type ValidationResult struct {
	FilePath   string   `json:"file_path" yaml:"file_path"`
	SchemaName string   `json:"schema_name" yaml:"schema_name"`
	IsValid    bool     `json:"is_valid" yaml:"is_valid"`
	Errors     []string `json:"errors" yaml:"errors"`
}

// NewValidResult создает успешный результат
func NewValidResult(filePath, schemaName string) ValidationResult {
	return ValidationResult{
		FilePath:   filePath,
		SchemaName: schemaName,
		IsValid:    true,
		Errors:     []string{},
	}
}

// NewInvalidResult создает результат с ошибками
func NewInvalidResult(filePath, schemaName string, errs ...string) ValidationResult {
	return ValidationResult{
		FilePath:   filePath,
		SchemaName: schemaName,
		IsValid:    false,
		Errors:     append([]string{}, errs...),
	}
}

// Summary - агрегированная статистика прогона
type Summary struct {
	TotalFiles   int     `json:"total_files" yaml:"total_files"`
	ValidFiles   int     `json:"valid_files" yaml:"valid_files"`
	InvalidFiles int     `json:"invalid_files" yaml:"invalid_files"`
	SuccessRate  float64 `json:"success_rate" yaml:"success_rate"`
}

// NewSummary считает статистику только по переданным результатам
func NewSummary(results []ValidationResult) Summary {
	s := Summary{TotalFiles: len(results)}
	for _, r := range results {
		if r.IsValid {
			s.ValidFiles++
		}
	}
	s.InvalidFiles = s.TotalFiles - s.ValidFiles
	if s.TotalFiles > 0 {
		s.SuccessRate = float64(s.ValidFiles) / float64(s.TotalFiles) * 100
	}
	return s
}

// ErrDocumentInvalid - документ не прошел структурную проверку схемы
type ErrDocumentInvalid struct {
	Schema   string
	Messages []string
}

func (e *ErrDocumentInvalid) Error() string {
	return strings.Join(e.Messages, "; ")
}
