package config

import (
	"fmt"
	"maps"
	"os"

	"snaptikbot/models"

	"gopkg.in/yaml.v3"
)

var resolverConfigs = make(map[string]*models.ResolverConfig)

func LoadResolverConfigs(configPath string) error {
	configs := make(map[string]*models.ResolverConfig)

	_, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		resolverConfigs = configs
		return nil
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed reading config file: %w", err)
	}

	var rawConfig map[string]*models.ResolverConfig
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed parsing config file: %w", err)
	}
	maps.Copy(configs, rawConfig)
	resolverConfigs = configs

	return nil
}

func GetResolverConfig(codeName string) *models.ResolverConfig {
	if config, exists := resolverConfigs[codeName]; exists {
		return config
	}
	return nil
}

func IsResolverDisabled(codeName string) bool {
	config := GetResolverConfig(codeName)
	return config != nil && config.IsDisabled
}
