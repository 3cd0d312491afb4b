// SPDX-License-Identifier: MIT
// Package: lvlsig/indicator

package indicator

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvLogLevel is the environment variable that overrides the
// configured log level, typically set from a .env file.
const EnvLogLevel = "LVLSIG_LOG_LEVEL"

// LoadConfig reads a YAML indicator configuration. A .env file in the
// working directory is loaded first, best effort, so EnvLogLevel can
// override Config.Log.Level without editing the YAML. Definition
// semantics are validated later by New, not here.
func LoadConfig(path string) (Config, error) {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("indicator: read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("indicator: parse config: %w", err)
	}

	if lvl := os.Getenv(EnvLogLevel); lvl != "" {
		cfg.Log.Level = lvl
	}
	return cfg, nil
}
