package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:11434/v1", cfg.Host)
	assert.Equal(t, 160, cfg.MaxTokens)
	assert.False(t, cfg.Enabled())
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithHost("https://api.openai.com/v1"),
		WithModel("gpt-4o-mini"),
		WithAPIKey("sk-test"),
		WithMaxTokens(200),
	)

	assert.Equal(t, "https://api.openai.com/v1", cfg.Host)
	assert.Equal(t, "gpt-4o-mini", cfg.Model)
	assert.Equal(t, 200, cfg.MaxTokens)
	assert.True(t, cfg.Enabled())
}

func TestNormalize_AddsV1Suffix(t *testing.T) {
	tests := []struct {
		name string
		host string
		want string
	}{
		{"bare host", "http://localhost:11434", "http://localhost:11434/v1"},
		{"trailing slash", "http://localhost:11434/", "http://localhost:11434/v1"},
		{"already normalized", "http://localhost:11434/v1", "http://localhost:11434/v1"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Host: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.want, cfg.Host)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())

	cfg = &Config{Model: "m", MaxTokens: 10}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Host: "http://localhost:11434", MaxTokens: 10}
	assert.Error(t, cfg.Validate())

	cfg = &Config{Host: "http://localhost:11434", Model: "m"}
	assert.Error(t, cfg.Validate())
}
