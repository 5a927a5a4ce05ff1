package infrastructure

import (
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/miorlan/datalake-validator/internal/domain"
)

const schemaRefPrefix = "#/components/schemas/"

// schemaRefName извлекает имя схемы из внутренней ссылки
func schemaRefName(ref string) (string, bool) {
	if !strings.HasPrefix(ref, schemaRefPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(ref, schemaRefPrefix)
	if name == "" || strings.Contains(name, "/") {
		return "", false
	}
	// JSON Pointer escaping
	name = strings.ReplaceAll(name, "~1", "/")
	name = strings.ReplaceAll(name, "~0", "~")
	return name, true
}

// resolve проходит по цепочке $ref до первой схемы с телом.
// Цепочка, вернувшаяся к уже пройденному имени, - ErrCircularReference.
func (t *SchemaTable) resolve(ref *openapi3.SchemaRef) (*openapi3.Schema, error) {
	seen := make(map[string]struct{})
	var chain []string

	for ref.Value == nil {
		name, ok := schemaRefName(ref.Ref)
		if !ok {
			return nil, &domain.ErrInvalidReference{Ref: ref.Ref}
		}
		chain = append(chain, ref.Ref)
		if _, loop := seen[name]; loop {
			return nil, &domain.ErrCircularReference{Path: strings.Join(chain, " -> ")}
		}
		seen[name] = struct{}{}

		next, ok := t.schemas[name]
		if !ok || next == nil {
			return nil, &domain.ErrInvalidReference{Ref: ref.Ref}
		}
		ref = next
	}
	return ref.Value, nil
}

// bindRefs проставляет Value для всех внутренних ссылок таблицы.
// Каждая схема обходится один раз, поэтому рекурсивные схемы допустимы.
func (t *SchemaTable) bindRefs() {
	visited := make(map[*openapi3.Schema]struct{})
	unresolved := make(map[string]struct{})

	for _, name := range t.Names() {
		t.bindRef(t.schemas[name], visited, unresolved)
	}

	t.unresolved = make([]string, 0, len(unresolved))
	for ref := range unresolved {
		t.unresolved = append(t.unresolved, ref)
	}
	sort.Strings(t.unresolved)
}

func (t *SchemaTable) bindRef(ref *openapi3.SchemaRef, visited map[*openapi3.Schema]struct{}, unresolved map[string]struct{}) {
	if ref == nil {
		return
	}
	if ref.Value == nil && ref.Ref != "" {
		schema, err := t.resolve(ref)
		if err != nil {
			unresolved[ref.Ref] = struct{}{}
			return
		}
		ref.Value = schema
	}
	t.bindSchema(ref.Value, visited, unresolved)
}

func (t *SchemaTable) bindSchema(schema *openapi3.Schema, visited map[*openapi3.Schema]struct{}, unresolved map[string]struct{}) {
	if schema == nil {
		return
	}
	if _, ok := visited[schema]; ok {
		return
	}
	visited[schema] = struct{}{}

	for _, prop := range schema.Properties {
		t.bindRef(prop, visited, unresolved)
	}
	t.bindRef(schema.Items, visited, unresolved)
	t.bindRef(schema.AdditionalProperties.Schema, visited, unresolved)
	t.bindRef(schema.Not, visited, unresolved)
	for _, group := range []openapi3.SchemaRefs{schema.AllOf, schema.AnyOf, schema.OneOf} {
		for _, item := range group {
			t.bindRef(item, visited, unresolved)
		}
	}
}
