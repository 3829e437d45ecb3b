package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultConfigPath = "./config.yaml"

// Load reads the full configuration from a YAML file and the environment,
// then validates it. Priority: ENV > YAML > env-default tags.
//
// The file is CONFIG_PATH when set (and must then exist), otherwise
// ./config.yaml when present. Without a file only ENV and defaults apply.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// LoadDatabase reads only the database section. Operational commands that
// never serve HTTP use it so they do not need auth or mail settings.
func LoadDatabase() (DatabaseConfig, error) {
	var cfg struct {
		Database DatabaseConfig `yaml:"database"`
	}
	if err := read(&cfg); err != nil {
		return DatabaseConfig{}, err
	}
	return cfg.Database, nil
}

func read(dst any) error {
	path, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit || path == "" {
		path, explicit = defaultConfigPath, false
	}

	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, dst); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, os.ErrNotExist):
		return fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(dst); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
