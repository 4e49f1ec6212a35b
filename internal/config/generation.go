package config

import (
	"errors"
	"os"
	"strings"

	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/apperrors"
	"github.com/rakhaalif/Casecraft-Agent-For-Quality-Assurance/internal/bdd"
	"go.yaml.in/yaml/v3"
)

const DefaultGenConfigPath = ".casecraft/config.yml"

// GenConfig represents generation defaults stored in .casecraft/config.yml.
// Fields are flat to match the YAML layout.
type GenConfig struct {
	MaxCases int    `yaml:"maxCases"`
	Category string `yaml:"category"`
	Username string `yaml:"username"`
}

// DefaultGenConfig returns the default generation configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		MaxCases: bdd.DefaultMaxCases,
		Category: string(bdd.CategoryFunctional),
		Username: "QA_Bot",
	}
}

// LoadGenConfig loads generation config from the given path.
// If the file does not exist, it returns defaults with loaded=false.
func LoadGenConfig(path string) (GenConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultGenConfig(), false, nil
		}
		return GenConfig{}, false, apperrors.Wrap("config.LoadGenConfig", err)
	}

	cfg := DefaultGenConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GenConfig{}, true, apperrors.Wrap("config.LoadGenConfig", err)
	}

	if err := cfg.Validate(); err != nil {
		return GenConfig{}, true, err
	}

	return cfg, true, nil
}

// SaveGenConfig writes generation config to the given path.
func SaveGenConfig(path string, cfg GenConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return apperrors.Wrap("config.SaveGenConfig", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.Wrap("config.SaveGenConfig", err)
	}

	return nil
}

// Validate checks generation config values.
func (c GenConfig) Validate() error {
	v := NewValidator()

	if c.MaxCases < 0 || c.MaxCases > bdd.MaxCaseLimit {
		v.AddError("maxCases", "must be between 0 and 50 (0 means default)")
	}
	if !bdd.Category(c.Category).IsValid() {
		v.AddError("category", "must be functional or visual")
	}
	if strings.TrimSpace(c.Username) == "" {
		v.AddError("username", "is required")
	}

	if v.HasErrors() {
		return apperrors.Wrap("config.ValidateGenConfig", v.Error())
	}

	return nil
}
