package store

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// SourceConfig describes one upstream vulnerability database: where to fetch
// record details from and which payload schema it speaks.
type SourceConfig struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"` // "nvd" or "osv"
	BaseURL string `yaml:"base_url"`
}

// SourceRegistry is the set of configured upstream sources.
type SourceRegistry struct {
	Sources []SourceConfig `yaml:"sources"`
}

// DefaultSourceRegistry returns the built-in source set used when no config
// file is present.
func DefaultSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		Sources: []SourceConfig{
			{Name: "nvd", Kind: "nvd", BaseURL: "https://services.nvd.nist.gov/rest/json/cves/2.0?cveId="},
			{Name: "osv", Kind: "osv", BaseURL: "https://api.osv.dev/v1/vulns/"},
		},
	}
}

// LoadSourceRegistry reads the source config from a yaml file. A missing file
// is not an error; the defaults apply.
func LoadSourceRegistry(path string) (*SourceRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSourceRegistry(), nil
		}
		return nil, fmt.Errorf("failed to read source config %s: %w", path, err)
	}

	var registry SourceRegistry
	if err := yaml.Unmarshal(data, &registry); err != nil {
		return nil, fmt.Errorf("failed to parse source config %s: %w", path, err)
	}
	if len(registry.Sources) == 0 {
		return DefaultSourceRegistry(), nil
	}
	return &registry, nil
}

// Lookup finds a source by name, case-insensitively.
func (r *SourceRegistry) Lookup(name string) (SourceConfig, bool) {
	for _, src := range r.Sources {
		if strings.EqualFold(src.Name, name) {
			return src, true
		}
	}
	return SourceConfig{}, false
}
