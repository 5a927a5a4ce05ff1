package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/miorlan/datalake-validator/internal/domain"
)

// SchemaTable - таблица схем из components/schemas, неизменяемая после загрузки
type SchemaTable struct {
	schemas    openapi3.Schemas
	unresolved []string
}

// NewSchemaTable связывает внутренние $ref и возвращает готовую таблицу
func NewSchemaTable(schemas openapi3.Schemas) *SchemaTable {
	if schemas == nil {
		schemas = openapi3.Schemas{}
	}
	t := &SchemaTable{schemas: schemas}
	t.bindRefs()
	return t
}

// LoadSchemaTable загружает спецификацию (файл или URL) и извлекает из нее схемы
func LoadSchemaTable(ctx context.Context, loader domain.FileLoader, parser domain.Parser, location string, logger domain.Logger) (*SchemaTable, error) {
	source := "file"
	if IsURL(location) {
		source = "URL"
	}
	logger.Info("loading OpenAPI specification", "source", source, "location", location)

	data, err := loader.Load(ctx, location)
	if err != nil {
		return nil, &domain.ErrSpecLoad{Location: location, Err: err}
	}

	var root map[string]interface{}
	if err := parser.Unmarshal(data, &root, domain.FormatUnknown); err != nil {
		return nil, &domain.ErrSpecLoad{Location: location, Err: err}
	}

	schemas, err := extractSchemas(root)
	if err != nil {
		return nil, &domain.ErrSpecLoad{Location: location, Err: err}
	}

	table := NewSchemaTable(schemas)
	logger.Info("loaded schemas from OpenAPI specification", "count", table.Len())
	if refs := table.UnresolvedRefs(); len(refs) > 0 {
		logger.Warn("schema references that cannot be resolved", "count", len(refs), "refs", refs)
	}
	return table, nil
}

// extractSchemas читает components.schemas; отсутствие секции - пустая таблица
func extractSchemas(root map[string]interface{}) (openapi3.Schemas, error) {
	components, ok := root["components"].(map[string]interface{})
	if !ok {
		return openapi3.Schemas{}, nil
	}
	raw, ok := components["schemas"]
	if !ok || raw == nil {
		return openapi3.Schemas{}, nil
	}
	if _, ok := raw.(map[string]interface{}); !ok {
		return nil, fmt.Errorf("components.schemas must be a mapping, got %T", raw)
	}

	data, err := json.Marshal(normalizeYAML(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to encode components.schemas: %w", err)
	}

	var schemas openapi3.Schemas
	if err := json.Unmarshal(data, &schemas); err != nil {
		return nil, fmt.Errorf("failed to decode components.schemas: %w", err)
	}
	return schemas, nil
}

// normalizeYAML приводит ключи вида map[interface{}]interface{} к строкам,
// чтобы результат YAML-разбора кодировался в JSON
func normalizeYAML(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = normalizeYAML(item)
		}
		return out
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeYAML(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = normalizeYAML(item)
		}
		return out
	default:
		return v
	}
}

// Names возвращает имена схем в отсортированном порядке
func (t *SchemaTable) Names() []string {
	names := make([]string, 0, len(t.schemas))
	for name := range t.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len возвращает количество схем
func (t *SchemaTable) Len() int {
	return len(t.schemas)
}

// Has сообщает, есть ли схема с таким именем
func (t *SchemaTable) Has(name string) bool {
	_, ok := t.schemas[name]
	return ok
}

// Lookup возвращает схему по имени, проходя по цепочке алиасов
func (t *SchemaTable) Lookup(name string) (*openapi3.Schema, error) {
	ref, ok := t.schemas[name]
	if !ok {
		return nil, &domain.ErrSchemaNotFound{Name: name}
	}
	if ref == nil {
		return nil, &domain.ErrInvalidReference{Ref: schemaRefPrefix + name}
	}
	return t.resolve(ref)
}

// UnresolvedRefs возвращает ссылки, которые не удалось связать при загрузке
func (t *SchemaTable) UnresolvedRefs() []string {
	return append([]string(nil), t.unresolved...)
}
