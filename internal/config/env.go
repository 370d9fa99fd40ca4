package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "ZONECTL_"

// DotEnvFile is read, when present, before the environment is parsed.
// Variables already set in the process environment win.
var DotEnvFile = ".env"

// ApplyEnv overlays ZONECTL_ variables onto cfg. Unset variables leave the
// field untouched.
func ApplyEnv(cfg *Config) error {
	if DotEnvFile != "" {
		if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", DotEnvFile, err)
		}
	}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}
