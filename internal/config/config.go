/*
PURPOSE:
  Defines the experiment configuration structure and loading logic.
  One YAML file (experiment_config.yml) carries every global setting the
  pipeline helpers share: folder layout, dataset ids, classifier ids and
  the free-form AutoML setup parameters.

REQUIREMENTS:
  User-specified:
  - Single source of truth for folder locations (original data, synthetic
    data, results, serialized artifacts).
  - Notebooks run from subdirectories, so the parent directory must be
    searched for the config file as well.

  Implementation-discovered:
  - Needs YAML parsing with defaults that survive a partial file.
  - Setup parameters stay a free-form map; their semantics belong to the
    AutoML layer, not to this repository.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli
  - Dependencies: gopkg.in/yaml.v3

ERROR HANDLING:
  - Returns explicit error if a named config file is unreadable or invalid.
  - A missing default file is not an error; defaults apply.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults should match the repository's conventional folder layout.

USAGE:
  cfg, err := config.Load("experiment_config.yml")
  err = cfg.Save("experiment_config.yml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load() defaults.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update when the experiment grows new global settings.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Folders names the directories the experiment reads from and writes to.
type Folders struct {
	DataDir      string `yaml:"data_dir"`
	SyntheticDir string `yaml:"sd_dir"`
	ResultsDir   string `yaml:"results_dir"`
	ArtifactsDir string `yaml:"artifacts_dir"`
}

// Config represents the full experiment configuration.
type Config struct {
	Folders Folders `yaml:"folders"`
	// Datasets lists the original data ids under study (e.g. D1, D2).
	Datasets []string `yaml:"datasets"`
	// Models lists classifier short names; see report.ModelFullName.
	Models []string `yaml:"models"`
	// SetupParams is passed through to the AutoML setup call verbatim.
	SetupParams map[string]any `yaml:"setup_params"`
	Seed        int            `yaml:"seed"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Folders: Folders{
			DataDir:      "data/original",
			SyntheticDir: "data/synthetic",
			ResultsDir:   "results",
			ArtifactsDir: "artifacts",
		},
		Datasets: []string{"D1", "D2", "D3"},
		Models:   []string{"lr", "knn", "rf", "xgboost", "lightgbm"},
		Seed:     42,
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches the working directory and its parent, the
// two places the experiment notebooks run from.
// If no file is found, the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		defaults := []string{"experiment_config.yml", "../experiment_config.yml"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
