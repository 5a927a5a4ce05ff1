package infrastructure

import (
	"encoding/json"

	"github.com/miorlan/datalake-validator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Parser реализует парсинг YAML и JSON
type Parser struct{}

// NewParser создает новый парсер
func NewParser() domain.Parser {
	return &Parser{}
}

// Unmarshal парсит данные в зависимости от формата
func (p *Parser) Unmarshal(data []byte, v interface{}, format domain.FileFormat) error {
	switch format {
	case domain.FormatJSON:
		return json.Unmarshal(data, v)
	case domain.FormatYAML:
		return yaml.Unmarshal(data, v)
	default:
		return p.unmarshalJSONThenYAML(data, v)
	}
}

// Marshal сериализует данные в зависимости от формата
func (p *Parser) Marshal(v interface{}, format domain.FileFormat) ([]byte, error) {
	switch format {
	case domain.FormatYAML:
		return yaml.Marshal(v)
	default:
		return json.MarshalIndent(v, "", "  ")
	}
}

// unmarshalJSONThenYAML сначала пробует строгий JSON, затем YAML
func (p *Parser) unmarshalJSONThenYAML(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err == nil {
		return nil
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return &domain.ErrSpecParse{YAMLErr: err}
	}
	return nil
}
