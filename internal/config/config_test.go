package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, validateConfig(Default()))
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
validation:
  min_chars: 20
languages:
  - English
  - Hindi
storage:
  base_dir: /tmp/records
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Validation.MinChars)
	// Untouched fields keep their defaults.
	assert.Equal(t, 5, cfg.Validation.MinTokens)
	assert.Equal(t, []string{"English", "Hindi"}, cfg.Languages)
	assert.Equal(t, "/tmp/records", cfg.Storage.BaseDir)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"zero min chars", "validation:\n  min_chars: 0\n"},
		{"repeat ratio above one", "validation:\n  max_repeat_ratio: 1.5\n"},
		{"no languages", "languages: []\n"},
		{"empty language", "languages:\n  - English\n  - \"\"\n"},
		{"empty base dir", "storage:\n  base_dir: \"\"\n"},
		{"not yaml", "{{{"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			assert.Error(t, err)
		})
	}
}
