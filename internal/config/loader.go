package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default returns the built-in interview configuration. Used as the
// base for Load and on its own when no config file is present, so the
// interview can always start.
func Default() *Config {
	return &Config{
		Validation: ValidationConfig{
			MinChars:       10,
			MinAlphaRun:    3,
			MaxRepeatRatio: 0.8,
			MinTokens:      5,
		},
		Languages: []string{"English", "Spanish", "French", "German", "Hindi"},
		Storage: StorageConfig{
			BaseDir: "candidate_data",
		},
		Questions: QuestionsConfig{
			BankFile: "config/fallback_questions.yaml",
		},
	}
}

// Load loads the interview configuration from a YAML file.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filename, err)
	}

	config := Default()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("error parsing YAML: %w", err)
	}

	err = validateConfig(config)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// validateConfig checks for values the engine cannot work with.
func validateConfig(config *Config) error {
	if config.Validation.MinChars <= 0 {
		return fmt.Errorf("validation.min_chars must be greater than 0")
	}

	if config.Validation.MinAlphaRun <= 0 {
		return fmt.Errorf("validation.min_alpha_run must be greater than 0")
	}

	if config.Validation.MaxRepeatRatio <= 0 || config.Validation.MaxRepeatRatio > 1 {
		return fmt.Errorf("validation.max_repeat_ratio must be in (0, 1], got %g",
			config.Validation.MaxRepeatRatio)
	}

	if config.Validation.MinTokens <= 0 {
		return fmt.Errorf("validation.min_tokens must be greater than 0")
	}

	if len(config.Languages) == 0 {
		return fmt.Errorf("at least one interview language must be configured")
	}

	for i, lang := range config.Languages {
		if lang == "" {
			return fmt.Errorf("language %d must not be empty", i)
		}
	}

	if config.Storage.BaseDir == "" {
		return fmt.Errorf("storage.base_dir must not be empty")
	}

	return nil
}
