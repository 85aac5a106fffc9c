package ancestry

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config carries the namespace selection for an ancestry computation.
type Config struct {
	// AllowedNamespaces lists the namespace names trusted for identity
	// matching, in preference order. Empty means every namespace of each
	// release's tree.
	AllowedNamespaces []string `yaml:"allowedNamespaces"`
	// IndexNamespace optionally names the namespace downstream generators
	// index traced elements by.
	IndexNamespace string `yaml:"indexNamespace,omitempty"`
}

// DefaultConfig returns the conventional namespace selection.
func DefaultConfig() *Config {
	return &Config{
		AllowedNamespaces: []string{"mojang", "spigot", "searge", "intermediary"},
	}
}

// LoadConfig reads a YAML config from the given URL.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", URL, err)
	}
	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", URL, err)
	}
	return config, nil
}
