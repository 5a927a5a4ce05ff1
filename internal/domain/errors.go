package domain

import "fmt"

// ErrCircularReference - цепочка $ref-алиасов замыкается сама на себя и не приводит к схеме
type ErrCircularReference struct {
	Path string
}

func (e *ErrCircularReference) Error() string {
	return fmt.Sprintf("circular reference detected: %s", e.Path)
}

// ErrInvalidReference - ссылка не указывает на схему из components/schemas
type ErrInvalidReference struct {
	Ref string
}

func (e *ErrInvalidReference) Error() string {
	return fmt.Sprintf("invalid reference: %s", e.Ref)
}

// ErrSchemaNotFound - выведенное из пути имя схемы отсутствует в спецификации
type ErrSchemaNotFound struct {
	Name string
}

func (e *ErrSchemaNotFound) Error() string {
	return fmt.Sprintf("Schema '%s' not found in OpenAPI specification", e.Name)
}

// ErrSpecParse - спецификация не разбирается ни как JSON, ни как YAML
type ErrSpecParse struct {
	YAMLErr error
}

func (e *ErrSpecParse) Error() string {
	return fmt.Sprintf("failed to parse OpenAPI spec as either JSON or YAML. YAML error: %v", e.YAMLErr)
}

func (e *ErrSpecParse) Unwrap() error {
	return e.YAMLErr
}

// ErrSpecLoad - фатальная ошибка инициализации: спецификацию не удалось загрузить
type ErrSpecLoad struct {
	Location string
	Err      error
}

func (e *ErrSpecLoad) Error() string {
	return fmt.Sprintf("failed to load OpenAPI specification %s: %v", e.Location, e.Err)
}

func (e *ErrSpecLoad) Unwrap() error {
	return e.Err
}
