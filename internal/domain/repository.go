package domain

import "context"

// FileLoader loads files from filesystem or URL
type FileLoader interface {
	Load(ctx context.Context, path string) ([]byte, error)
}

// FileWriter writes files to filesystem
type FileWriter interface {
	Write(path string, data []byte) error
}

// Parser decodes and encodes JSON/YAML documents
type Parser interface {
	Unmarshal(data []byte, v interface{}, format FileFormat) error
	Marshal(v interface{}, format FileFormat) ([]byte, error)
}

// FileWalker enumerates data lake documents under a root directory
type FileWalker interface {
	Walk(ctx context.Context, root string) ([]string, error)
}

// SchemaNamer infers a schema name from a document location
type SchemaNamer interface {
	SchemaName(root, filePath string) (string, bool)
}

// SchemaValidator validates parsed documents against named schemas
type SchemaValidator interface {
	HasSchema(name string) bool
	Validate(name string, document interface{}) error
}

// Logger is a minimal structured logger, compatible with log/slog
type Logger interface {
	Debug(msg string, attrs ...any)
	Info(msg string, attrs ...any)
	Warn(msg string, attrs ...any)
	Error(msg string, attrs ...any)
	With(attrs ...any) Logger
}
