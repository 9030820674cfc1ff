package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFailsWithoutAPIKey(t *testing.T) {
	// t.Setenv registers the restore; the key must then be truly unset
	t.Setenv("OPENAI_API_KEY", "placeholder")
	os.Unsetenv("OPENAI_API_KEY")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.InDelta(t, 0.7, cfg.Generation.Temperature, 1e-9)
	assert.EqualValues(t, 400, cfg.Generation.MaxTokens)
}
