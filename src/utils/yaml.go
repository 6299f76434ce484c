package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"option-terminal/src/eventmodels"
)

// LoadSolverConfig reads solver constants from a YAML file. An empty path
// returns the defaults.
func LoadSolverConfig(path string) (eventmodels.SolverConfig, error) {
	if path == "" {
		return eventmodels.NewSolverConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return eventmodels.SolverConfig{}, fmt.Errorf("LoadSolverConfig: failed to read %s: %v", path, err)
	}

	var yamlConfig eventmodels.SolverConfigYAML
	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return eventmodels.SolverConfig{}, fmt.Errorf("LoadSolverConfig: error unmarshalling %s: %v", path, err)
	}

	cfg := yamlConfig.ToSolverConfig()
	if err := cfg.Validate(); err != nil {
		return eventmodels.SolverConfig{}, fmt.Errorf("LoadSolverConfig: %w", err)
	}

	return cfg, nil
}
