package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) }) //nolint:errcheck
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "claude-haiku-4-5-20251001", cfg.LLM.AnthropicModel)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.GeminiModel)
	assert.Equal(t, 2000, cfg.LLM.MaxTokens)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 0.001)
	assert.Equal(t, 2, cfg.LLM.MaxRetries)
	assert.Equal(t, 120, cfg.LLM.TimeoutSecs)
	assert.False(t, cfg.Pipeline.LenientDecode)
	assert.Equal(t, 3, cfg.Policy.Concurrency)
	assert.Equal(t, 1500, cfg.Policy.MaxTokens)
	assert.Equal(t, 8, cfg.Procurement.MaxPlatforms)
	assert.Equal(t, 5, cfg.Procurement.ListingPlatforms)
	assert.Equal(t, 2, cfg.Procurement.Concurrency)
	assert.Equal(t, 4, cfg.Normalize.Concurrency)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
llm:
  provider: gemini
  max_retries: 4
pipeline:
  lenient_decode: true
log:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model())
	assert.Equal(t, 4, cfg.LLM.MaxRetries)
	assert.True(t, cfg.Pipeline.LenientDecode)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	chdirTemp(t)
	t.Setenv("INSIGHT_LLM_MAX_RETRIES", "7")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.LLM.MaxRetries)
	assert.Equal(t, "sk-test", cfg.LLM.AnthropicKey)
}

func TestLoadDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GEMINI_API_KEY=from-dotenv\n"), 0o600))
	t.Setenv("GEMINI_API_KEY", "")
	require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))
	t.Cleanup(func() { os.Unsetenv("GEMINI_API_KEY") }) //nolint:errcheck

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-dotenv", cfg.LLM.GeminiKey)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("llm: [unclosed"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{LLM: LLMConfig{Provider: "anthropic", MaxTokens: 100}}
	require.NoError(t, base.Validate())

	bad := base
	bad.LLM.Provider = "groq"
	assert.ErrorContains(t, bad.Validate(), "unknown llm.provider")

	bad = base
	bad.LLM.MaxRetries = -1
	assert.Error(t, bad.Validate())

	bad = base
	bad.LLM.MaxTokens = 0
	assert.Error(t, bad.Validate())
}

func TestInitLogger(t *testing.T) {
	orig := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(orig) })

	require.NoError(t, InitLogger(LogConfig{Level: "debug", Format: "console"}))
	assert.True(t, zap.L().Core().Enabled(zap.DebugLevel))

	require.NoError(t, InitLogger(LogConfig{Level: "warn", Format: "json"}))
	assert.False(t, zap.L().Core().Enabled(zap.InfoLevel))

	assert.Error(t, InitLogger(LogConfig{Level: "loud"}))
}
