package config

// Config is the interview configuration loaded from YAML.
type Config struct {
	Validation ValidationConfig `yaml:"validation"`
	Languages  []string         `yaml:"languages"`
	Storage    StorageConfig    `yaml:"storage"`
	Questions  QuestionsConfig  `yaml:"questions"`
}

// ValidationConfig holds the tunable thresholds for the heuristic
// answer pre-check. Chosen defaults are documented in Default and
// exercised by the validator tests.
type ValidationConfig struct {
	MinChars       int     `yaml:"min_chars"`
	MinAlphaRun    int     `yaml:"min_alpha_run"`
	MaxRepeatRatio float64 `yaml:"max_repeat_ratio"`
	MinTokens      int     `yaml:"min_tokens"`
}

// StorageConfig controls where candidate records are written.
type StorageConfig struct {
	BaseDir string `yaml:"base_dir"`
}

// QuestionsConfig points at the optional fallback question bank.
type QuestionsConfig struct {
	BankFile string `yaml:"bank_file"`
}
