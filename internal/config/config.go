// Package config handles configuration loading for the retviz server.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Data   DataConfig   `yaml:"data"`
	Cache  CacheConfig  `yaml:"cache"`
	Render RenderConfig `yaml:"render"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
	Title       string   `yaml:"title"`
}

// DatasetConfig describes one configured dataset.
type DatasetConfig struct {
	Profile   string `yaml:"profile"`
	TablePath string `yaml:"table_path"`
}

// DataConfig contains the configured datasets. The first dataset in YAML
// order is the default unless default_dataset overrides it.
type DataConfig struct {
	DefaultDataset string
	Datasets       map[string]DatasetConfig
	datasetOrder   []string
}

// CacheConfig contains caching settings.
type CacheConfig struct {
	ChartSizeMB     int `yaml:"chart_size_mb"`
	ChartTTLMinutes int `yaml:"chart_ttl_minutes"`
	SpecEntries     int `yaml:"spec_entries"`
}

// RenderConfig contains rendering settings.
type RenderConfig struct {
	Width           int    `yaml:"width"`
	Height          int    `yaml:"height"`
	FontPath        string `yaml:"font_path"`
	DefaultColormap string `yaml:"default_colormap"`
}

// DatasetIDs returns all dataset IDs in config order.
func (d *DataConfig) DatasetIDs() []string {
	return d.datasetOrder
}

// UnmarshalYAML decodes the data section while preserving the declaration
// order of the dataset entries. default_dataset is the only recognized
// scalar key; every mapping key is a dataset ID.
func (d *DataConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("data section must be a mapping")
	}

	d.Datasets = make(map[string]DatasetConfig)
	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]

		if keyNode.Value == "default_dataset" {
			if err := valNode.Decode(&d.DefaultDataset); err != nil {
				return fmt.Errorf("default_dataset: %w", err)
			}
			continue
		}

		var ds DatasetConfig
		if err := valNode.Decode(&ds); err != nil {
			return fmt.Errorf("dataset %q: %w", keyNode.Value, err)
		}
		if ds.Profile == "" {
			ds.Profile = keyNode.Value
		}
		d.Datasets[keyNode.Value] = ds
		d.datasetOrder = append(d.datasetOrder, keyNode.Value)
	}

	if d.DefaultDataset == "" && len(d.datasetOrder) > 0 {
		d.DefaultDataset = d.datasetOrder[0]
	}
	if d.DefaultDataset != "" {
		if _, ok := d.Datasets[d.DefaultDataset]; !ok {
			return fmt.Errorf("default_dataset %q is not a configured dataset", d.DefaultDataset)
		}
	}
	return nil
}

// Load reads configuration from a YAML file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults for missing values
	applyDefaults(&cfg)

	return &cfg, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8080,
			CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Cache: CacheConfig{
			ChartSizeMB:     256,
			ChartTTLMinutes: 10,
			SpecEntries:     4096,
		},
		Render: RenderConfig{
			Width:           880,
			Height:          620,
			DefaultColormap: "bone",
		},
	}
}

func applyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaults.Server.Port
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = defaults.Server.CORSOrigins
	}
	if cfg.Cache.ChartSizeMB == 0 {
		cfg.Cache.ChartSizeMB = defaults.Cache.ChartSizeMB
	}
	if cfg.Cache.ChartTTLMinutes == 0 {
		cfg.Cache.ChartTTLMinutes = defaults.Cache.ChartTTLMinutes
	}
	if cfg.Cache.SpecEntries == 0 {
		cfg.Cache.SpecEntries = defaults.Cache.SpecEntries
	}
	if cfg.Render.Width == 0 {
		cfg.Render.Width = defaults.Render.Width
	}
	if cfg.Render.Height == 0 {
		cfg.Render.Height = defaults.Render.Height
	}
	if cfg.Render.DefaultColormap == "" {
		cfg.Render.DefaultColormap = defaults.Render.DefaultColormap
	}
}
