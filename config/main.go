package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const resolverConfigPath = "resolvers.yaml"

// Load reads .env (if any), the environment and resolvers.yaml.
func Load() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed loading .env: %w", err)
	}
	if err := LoadEnv(); err != nil {
		return err
	}
	return LoadResolverConfigs(resolverConfigPath)
}
