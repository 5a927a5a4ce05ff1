package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/miorlan/datalake-validator/internal/domain"
)

const errCannotDetermineSchema = "Cannot determine schema from file path"

// ValidateUseCase реализует проверку файлов озера данных по схемам OpenAPI
type ValidateUseCase struct {
	dataLakeRoot string
	fileLoader   domain.FileLoader
	parser       domain.Parser
	walker       domain.FileWalker
	namer        domain.SchemaNamer
	validator    domain.SchemaValidator
	logger       domain.Logger
}

// NewValidateUseCase создает новый экземпляр ValidateUseCase
func NewValidateUseCase(
	dataLakeRoot string,
	fileLoader domain.FileLoader,
	parser domain.Parser,
	walker domain.FileWalker,
	namer domain.SchemaNamer,
	validator domain.SchemaValidator,
	logger domain.Logger,
) *ValidateUseCase {
	return &ValidateUseCase{
		dataLakeRoot: dataLakeRoot,
		fileLoader:   fileLoader,
		parser:       parser,
		walker:       walker,
		namer:        namer,
		validator:    validator,
		logger:       logger,
	}
}

// ValidateAll проверяет все JSON-файлы озера данных в порядке обхода.
// Отмена контекста прерывает прогон без сводки.
func (uc *ValidateUseCase) ValidateAll(ctx context.Context) ([]domain.ValidationResult, domain.Summary, error) {
	files, err := uc.walker.Walk(ctx, uc.dataLakeRoot)
	if err != nil {
		return nil, domain.Summary{}, fmt.Errorf("failed to walk data lake: %w", err)
	}

	uc.logger.Info("starting validation of all JSON files", "count", len(files))

	results := make([]domain.ValidationResult, 0, len(files))
	for _, file := range files {
		// Проверяем контекст между файлами
		if err := ctx.Err(); err != nil {
			return nil, domain.Summary{}, err
		}
		results = append(results, uc.ValidateFile(ctx, file))
	}
	// Прерывание во время последнего файла тоже не дает сводки
	if err := ctx.Err(); err != nil {
		return nil, domain.Summary{}, err
	}

	summary := domain.NewSummary(results)
	uc.logger.Info("validation complete",
		"valid", summary.ValidFiles,
		"total", summary.TotalFiles,
		"success_rate", fmt.Sprintf("%.1f%%", summary.SuccessRate),
	)
	return results, summary, nil
}

// ValidateFile проверяет один файл. Любая ошибка превращается в невалидный
// результат и не влияет на остальные файлы.
func (uc *ValidateUseCase) ValidateFile(ctx context.Context, filePath string) domain.ValidationResult {
	schemaName, ok := uc.namer.SchemaName(uc.dataLakeRoot, filePath)
	if !ok {
		return uc.invalid(filePath, domain.UnknownSchema, errCannotDetermineSchema)
	}

	if !uc.validator.HasSchema(schemaName) {
		return uc.invalid(filePath, schemaName, (&domain.ErrSchemaNotFound{Name: schemaName}).Error())
	}

	data, err := uc.fileLoader.Load(ctx, filePath)
	if err != nil {
		return uc.invalid(filePath, schemaName, fmt.Sprintf("Unexpected error: %v", err))
	}

	var document interface{}
	if err := uc.parser.Unmarshal(data, &document, domain.FormatJSON); err != nil {
		return uc.invalid(filePath, schemaName, "Invalid JSON format: "+describeJSONError(data, err))
	}

	if err := uc.validator.Validate(schemaName, document); err != nil {
		var invalid *domain.ErrDocumentInvalid
		if errors.As(err, &invalid) {
			messages := make([]string, 0, len(invalid.Messages))
			for _, m := range invalid.Messages {
				messages = append(messages, "Schema validation failed: "+m)
			}
			return uc.invalid(filePath, schemaName, messages...)
		}
		return uc.invalid(filePath, schemaName, fmt.Sprintf("Schema validation failed: %v", err))
	}

	uc.logger.Debug("validated successfully", "file", filePath, "schema", schemaName)
	return domain.NewValidResult(filePath, schemaName)
}

func (uc *ValidateUseCase) invalid(filePath, schemaName string, errs ...string) domain.ValidationResult {
	for _, e := range errs {
		uc.logger.Error("validation failed", "file", filePath, "schema", schemaName, "error", e)
	}
	return domain.NewInvalidResult(filePath, schemaName, errs...)
}

// describeJSONError добавляет строку и колонку к синтаксическим ошибкам JSON
func describeJSONError(data []byte, err error) string {
	var syntaxErr *json.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return err.Error()
	}
	end := int(syntaxErr.Offset - 1)
	if end < 0 {
		end = 0
	}
	if end > len(data) {
		end = len(data)
	}

	// Колонка и позиция считаются в символах, а не в байтах
	line, column := 1, 1
	for i := 0; i < end; {
		r, size := utf8.DecodeRune(data[i:])
		i += size
		if r == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return fmt.Sprintf("%v: line %d column %d (char %d)", err, line, column, utf8.RuneCount(data[:end]))
}
