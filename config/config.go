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

	"github.com/kilianp07/pmrs/core/band"
)

// EnvPrefix prefixes environment overrides. Nested keys use "__", for
// example PMRS_SCHEDULE__DAYS=21.
const EnvPrefix = "PMRS_"

type Config struct {
	Schedule  ScheduleConfig `json:"schedule"`
	Logging   LoggingConfig  `json:"logging"`
	Metrics   MetricsConfig  `json:"metrics"`
	Bands     []band.Band    `json:"bands"`
	BandsFile string         `json:"bands_file"`
}

// Load reads the configuration file at path, applies environment overrides
// and defaults, then validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
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
	}
	// Optional environment overrides
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.SetDefaults()
	return &cfg
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Schedule.SetDefaults()
	c.Logging.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Schedule.Validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	for _, b := range c.Bands {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("bands: %w", err)
		}
	}
	return nil
}

// BandRegistry builds the band registry: builtin bands, then the profiles file,
// then inline bands. Later entries replace earlier ones with the same name.
func (c Config) BandRegistry() (*band.Registry, error) {
	reg := band.Default()
	if c.BandsFile != "" {
		bands, err := band.LoadFile(c.BandsFile)
		if err != nil {
			return nil, fmt.Errorf("load bands file: %w", err)
		}
		for _, b := range bands {
			if err := reg.Register(b); err != nil {
				return nil, err
			}
		}
	}
	for _, b := range c.Bands {
		if err := reg.Register(b); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Registry builds the band registry like BandRegistry and also requires the
// schedule band to be registered.
func (c Config) Registry() (*band.Registry, error) {
	reg, err := c.BandRegistry()
	if err != nil {
		return nil, err
	}
	if _, err := reg.Get(c.Schedule.Band); err != nil {
		return nil, fmt.Errorf("schedule.band: %w", err)
	}
	return reg, nil
}
