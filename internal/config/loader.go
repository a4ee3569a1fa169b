package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// defaultPaths are tried in order when CONFIG_PATH is unset. The .env file
// carries over deployments that only ever had environment files.
var defaultPaths = []string{"./config.yaml", "./config.yml", "./.env"}

// Load reads configuration with priority ENV > file > env-default tags.
// CONFIG_PATH names the file explicitly and must exist; otherwise the first
// of defaultPaths that exists is used, and with none present only ENV and
// defaults apply.
func Load() (*Config, error) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return LoadFile(path)
	}

	for _, path := range defaultPaths {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return validated(&cfg)
}

// LoadFile reads path (YAML or .env, by extension) overlaid with ENV.
func LoadFile(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: file %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return validated(&cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}
