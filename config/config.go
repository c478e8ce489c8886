package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the session configuration. Everything here is presentation or
// world-building; nothing in it can change per-tick physics, so two
// sessions with the same seed stay comparable regardless of config.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Audio  AudioConfig  `yaml:"audio"`
	Render RenderConfig `yaml:"render"`
}

type WorldConfig struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`
}

type AudioConfig struct {
	Muted bool `yaml:"muted"`
}

type RenderConfig struct {
	HUD bool `yaml:"hud"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  256,
			Height: 96,
			Seed:   1,
		},
		Render: RenderConfig{HUD: true},
	}
}

// Load reads a yaml config file. A missing file is not an error; the
// defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.World.Width < 32 || c.World.Height < 24 {
		return fmt.Errorf("world size %dx%d below minimum 32x24", c.World.Width, c.World.Height)
	}
	return nil
}
