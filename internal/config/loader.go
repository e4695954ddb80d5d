package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads the server configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The YAML file path is determined by CONFIG_PATH env (fallback "./config.yaml").
// If the file does not exist and CONFIG_PATH was not set explicitly,
// configuration is loaded from ENV + defaults only.
func Load() (*Config, error) {
	var cfg Config
	if err := read(&cfg, "CONFIG_PATH", "./config.yaml"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// LoadClient reads the console configuration the same way as Load, from
// CONSOLE_CONFIG_PATH (fallback "./console.yaml").
func LoadClient() (*ClientConfig, error) {
	var cfg ClientConfig
	if err := read(&cfg, "CONSOLE_CONFIG_PATH", "./console.yaml"); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func read(cfg any, pathEnv, fallback string) error {
	path := os.Getenv(pathEnv)
	explicitPath := path != ""
	if !explicitPath {
		path = fallback
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return fmt.Errorf("config: file %s: %w", path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	}
	return nil
}
