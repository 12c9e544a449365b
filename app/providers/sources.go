package providers

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Source is a supplementary RSS/Atom news source declared in the sources
// file.
type Source struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type sourcesFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads the YAML sources file. An absent file means no extra
// sources, which is not an error.
func LoadSources(path string) ([]Source, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file: %w", err)
	}

	var parsed sourcesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse sources file: %w", err)
	}

	sources := make([]Source, 0, len(parsed.Sources))
	for i, source := range parsed.Sources {
		if source.URL == "" {
			return nil, fmt.Errorf("source at index %d has no url", i)
		}
		sources = append(sources, source)
	}

	return sources, nil
}
