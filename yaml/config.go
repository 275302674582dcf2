// Package yaml loads and saves server configuration files.
package yaml

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/pagesearch"
	"gopkg.in/yaml.v3"
)

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr         string `yaml:"addr"`
	Title        string `yaml:"title"`
	BaseURL      string `yaml:"base_url,omitempty"`
	ShutdownSecs int    `yaml:"shutdown_secs"`
	RateLimit    int    `yaml:"rate_limit"`
	RateBurst    int    `yaml:"rate_burst"`
}

// SourceConfig selects where the server loads its corpus from.
type SourceConfig struct {
	Type   string `yaml:"type"`
	Path   string `yaml:"path,omitempty"`
	URL    string `yaml:"url,omitempty"`
	DB     string `yaml:"db,omitempty"`
	Corpus string `yaml:"corpus,omitempty"`
}

// SearchConfig configures snippet extraction.
type SearchConfig struct {
	SnippetLength int `yaml:"snippet_length"`
}

// Config is the root server configuration structure.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Source SourceConfig `yaml:"source"`
	Search SearchConfig `yaml:"search"`
}

// Load reads a config from a specified path. If the file does not exist,
// returns defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, pagesearch.Errorf(pagesearch.EUNAVAILABLE, "config file %q unavailable: %s", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, pagesearch.Errorf(pagesearch.EINVALID, "config file %q: %s", path, err)
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate reports whether the config describes a usable corpus source.
func (c *Config) Validate() error {
	switch c.Source.Type {
	case "file":
		if c.Source.Path == "" {
			return pagesearch.Errorf(pagesearch.EINVALID, "source type \"file\" requires a path")
		}
	case "http":
		if c.Source.URL == "" {
			return pagesearch.Errorf(pagesearch.EINVALID, "source type \"http\" requires a url")
		}
	case "sqlite":
		if c.Source.DB == "" {
			return pagesearch.Errorf(pagesearch.EINVALID, "source type \"sqlite\" requires a db path")
		}
		if c.Source.Corpus == "" {
			return pagesearch.Errorf(pagesearch.EINVALID, "source type \"sqlite\" requires a corpus name")
		}
	default:
		return pagesearch.Errorf(pagesearch.EINVALID, "unknown source type %q", c.Source.Type)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:         ":8080",
			Title:        "Informe Estratégico",
			ShutdownSecs: 10,
			RateLimit:    5,
			RateBurst:    10,
		},
		Source: SourceConfig{
			Type: "file",
			Path: "parsed_strategy.json",
		},
		Search: SearchConfig{
			SnippetLength: pagesearch.DefaultSnippetLength,
		},
	}
}

func applyConfigDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.Title == "" {
		cfg.Server.Title = "Informe Estratégico"
	}
	if cfg.Server.ShutdownSecs == 0 {
		cfg.Server.ShutdownSecs = 10
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = 5
	}
	if cfg.Server.RateBurst == 0 {
		cfg.Server.RateBurst = 10
	}
	if cfg.Source.Type == "" {
		cfg.Source.Type = "file"
	}
	if cfg.Source.Type == "file" && cfg.Source.Path == "" {
		cfg.Source.Path = "parsed_strategy.json"
	}
	if cfg.Search.SnippetLength == 0 {
		cfg.Search.SnippetLength = pagesearch.DefaultSnippetLength
	}
}
