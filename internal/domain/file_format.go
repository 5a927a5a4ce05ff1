package domain

import (
	"path/filepath"

	"golang.org/x/text/cases"
)

// FileFormat представляет формат файла
type FileFormat string

const (
	FormatYAML    FileFormat = "yaml"
	FormatJSON    FileFormat = "json"
	FormatUnknown FileFormat = ""
)

// DetectFormat определяет формат файла по расширению без учета регистра
func DetectFormat(filePath string) FileFormat {
	// Caser хранит состояние, поэтому создается на каждый вызов
	switch cases.Fold().String(filepath.Ext(filePath)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatUnknown
}

// IsJSONFile сообщает, относится ли файл к документам озера данных
func IsJSONFile(filePath string) bool {
	return DetectFormat(filePath) == FormatJSON
}
