package infrastructure

import (
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/miorlan/datalake-validator/internal/domain"
)

// SchemaValidator реализует структурную проверку документов по схемам таблицы
type SchemaValidator struct {
	table     *SchemaTable
	allErrors bool
}

// NewSchemaValidator создает новый валидатор.
// allErrors собирает все нарушения вместо первого найденного.
func NewSchemaValidator(table *SchemaTable, allErrors bool) *SchemaValidator {
	return &SchemaValidator{table: table, allErrors: allErrors}
}

// HasSchema сообщает, есть ли схема в таблице
func (v *SchemaValidator) HasSchema(name string) bool {
	return v.table.Has(name)
}

// Validate проверяет документ по схеме name
func (v *SchemaValidator) Validate(name string, document interface{}) (err error) {
	schema, err := v.table.Lookup(name)
	if err != nil {
		return err
	}

	// kin-openapi разыменовывает несвязанные ссылки в required без проверки на nil
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("schema %s could not be evaluated: %v", name, r)
		}
	}()

	opts := []openapi3.SchemaValidationOption{
		openapi3.SetSchemaErrorMessageCustomizer(schemaErrorMessage),
	}
	if v.allErrors {
		opts = append(opts, openapi3.MultiErrors())
	}

	if visitErr := schema.VisitJSON(document, opts...); visitErr != nil {
		return &domain.ErrDocumentInvalid{Schema: name, Messages: errorMessages(visitErr)}
	}
	return nil
}

// schemaErrorMessage формирует короткое сообщение без дампа схемы и значения
func schemaErrorMessage(err *openapi3.SchemaError) string {
	var b strings.Builder
	if pointer := err.JSONPointer(); len(pointer) > 0 {
		fmt.Fprintf(&b, "Error at %q: ", "/"+strings.Join(pointer, "/"))
	}
	switch {
	case err.Reason != "":
		b.WriteString(err.Reason)
	case err.Origin != nil:
		b.WriteString(err.Origin.Error())
	default:
		fmt.Fprintf(&b, "doesn't match schema %q", err.SchemaField)
	}
	return b.String()
}

// errorMessages раскрывает MultiError в плоский список сообщений
func errorMessages(err error) []string {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var messages []string
		for _, e := range multi {
			messages = append(messages, errorMessages(e)...)
		}
		return messages
	}
	return []string{err.Error()}
}
