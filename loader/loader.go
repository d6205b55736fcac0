// Package loader reads graph descriptions from YAML sources and hands
// them over as plain nested mappings. It does no validation of its own;
// the graph load pipeline owns that.
package loader

import (
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// ParseFile reads and parses a YAML graph description from disk.
func ParseFile(path string) (map[string]interface{}, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, err
	}
	return k.Raw(), nil
}

// Parse parses a YAML graph description from raw bytes.
func Parse(data []byte) (map[string]interface{}, error) {
	return yaml.Parser().Unmarshal(data)
}
