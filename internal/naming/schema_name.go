package naming

import (
	"path/filepath"
	"strings"
)

// DefaultNamespacePrefixes maps namespace directories to schema name
// prefixes. Namespaces not listed are used verbatim.
var DefaultNamespacePrefixes = map[string]string{
	"ed-fi": "edFi",
}

// Resolver infers schema names from paths laid out as
// <root>/<namespace>/<entityType>/.../<file>.json.
type Resolver struct {
	Prefixes     map[string]string
	Singularizer *Singularizer
}

// NewResolver returns a Resolver with the default tables extended by the
// given prefixes and irregular plurals.
func NewResolver(prefixes, irregular map[string]string) *Resolver {
	merged := make(map[string]string, len(DefaultNamespacePrefixes)+len(prefixes))
	for k, v := range DefaultNamespacePrefixes {
		merged[k] = v
	}
	for k, v := range prefixes {
		merged[k] = v
	}
	return &Resolver{
		Prefixes:     merged,
		Singularizer: NewSingularizer(irregular),
	}
}

// SchemaName returns the schema name for filePath relative to root.
// ok is false when the file is not at least two segments below root or lies
// outside of it.
func (r *Resolver) SchemaName(root, filePath string) (name string, ok bool) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	absFile, err := filepath.Abs(filePath)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absRoot, absFile)
	if err != nil {
		return "", false
	}
	return r.SchemaNameFromRelative(rel)
}

// SchemaNameFromRelative is SchemaName for a path already relative to the
// data lake root.
func (r *Resolver) SchemaNameFromRelative(rel string) (string, bool) {
	rel = filepath.Clean(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", false
	}

	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) < 2 {
		return "", false
	}

	return r.Compose(parts[0], parts[1]), true
}

// Compose builds "<prefix>_<singular entity>" for a namespace and a plural
// entity directory.
func (r *Resolver) Compose(namespace, entityType string) string {
	prefix, ok := r.Prefixes[namespace]
	if !ok {
		prefix = namespace
	}
	return prefix + "_" + r.Singularizer.Singular(entityType)
}
