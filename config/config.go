package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/archit-tiwari-26/timetable3.0/core/provision"
	"github.com/archit-tiwari-26/timetable3.0/infra/api"
	"github.com/archit-tiwari-26/timetable3.0/infra/metrics"
)

// Config is the root configuration of the client.
type Config struct {
	API       api.Config       `json:"api"`
	Metrics   metrics.Config   `json:"metrics"`
	Provision provision.Config `json:"provision"`
	Export    ExportConfig     `json:"export"`
}

// Load reads the configuration file at path, applies TT_ environment
// overrides, defaults and validation.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides, e.g. TT_API__BASE_URL.
	if err := k.Load(env.Provider("TT_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "tt_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.API.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Export.SetDefaults()
	if err := cfg.API.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Export.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration without reading any file, used when no
// config file exists next to the binary.
func Default() *Config {
	var cfg Config
	cfg.API.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Export.SetDefaults()
	return &cfg
}
