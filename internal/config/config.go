package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Pipeline    PipelineConfig    `yaml:"pipeline" mapstructure:"pipeline"`
	Policy      PolicyConfig      `yaml:"policy" mapstructure:"policy"`
	Procurement ProcurementConfig `yaml:"procurement" mapstructure:"procurement"`
	Normalize   NormalizeConfig   `yaml:"normalize" mapstructure:"normalize"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// LLMConfig selects and tunes the text generator.
type LLMConfig struct {
	Provider          string  `yaml:"provider" mapstructure:"provider"`
	AnthropicKey      string  `yaml:"anthropic_api_key" mapstructure:"anthropic_api_key"`
	AnthropicModel    string  `yaml:"anthropic_model" mapstructure:"anthropic_model"`
	GeminiKey         string  `yaml:"gemini_api_key" mapstructure:"gemini_api_key"`
	GeminiModel       string  `yaml:"gemini_model" mapstructure:"gemini_model"`
	MaxTokens         int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature       float64 `yaml:"temperature" mapstructure:"temperature"`
	MaxRetries        int     `yaml:"max_retries" mapstructure:"max_retries"`
	InitialBackoffMs  int     `yaml:"initial_backoff_ms" mapstructure:"initial_backoff_ms"`
	MaxBackoffMs      int     `yaml:"max_backoff_ms" mapstructure:"max_backoff_ms"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
	TimeoutSecs       int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// Model returns the model name of the configured provider.
func (c LLMConfig) Model() string {
	if c.Provider == "gemini" {
		return c.GeminiModel
	}
	return c.AnthropicModel
}

// PipelineConfig tunes the repair and decode stages.
type PipelineConfig struct {
	LenientDecode      bool `yaml:"lenient_decode" mapstructure:"lenient_decode"`
	CollapseWhitespace bool `yaml:"collapse_whitespace" mapstructure:"collapse_whitespace"`
}

// PolicyConfig tunes policy generation.
type PolicyConfig struct {
	Concurrency int     `yaml:"concurrency" mapstructure:"concurrency"`
	MaxTokens   int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`
}

// ProcurementConfig bounds supplier discovery.
type ProcurementConfig struct {
	MaxPlatforms     int `yaml:"max_platforms" mapstructure:"max_platforms"`
	ListingPlatforms int `yaml:"listing_platforms" mapstructure:"listing_platforms"`
	Concurrency      int `yaml:"concurrency" mapstructure:"concurrency"`
}

// NormalizeConfig tunes the offline normalize command.
type NormalizeConfig struct {
	Concurrency int `yaml:"concurrency" mapstructure:"concurrency"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Validate checks the settings the generators depend on.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case "anthropic", "gemini":
	default:
		return eris.Errorf("config: unknown llm.provider %q", c.LLM.Provider)
	}
	if c.LLM.MaxRetries < 0 {
		return eris.New("config: llm.max_retries must be >= 0")
	}
	if c.LLM.MaxTokens <= 0 {
		return eris.New("config: llm.max_tokens must be > 0")
	}
	return nil
}

// Load reads configuration from .env, config.yaml and the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrap(err, "config: load .env")
	}

	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("INSIGHT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("llm.anthropic_api_key", "INSIGHT_LLM_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("llm.gemini_api_key", "INSIGHT_LLM_GEMINI_API_KEY", "GEMINI_API_KEY")

	// Defaults
	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.anthropic_model", "claude-haiku-4-5-20251001")
	v.SetDefault("llm.gemini_model", "gemini-2.5-flash")
	v.SetDefault("llm.max_tokens", 2000)
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_retries", 2)
	v.SetDefault("llm.initial_backoff_ms", 500)
	v.SetDefault("llm.max_backoff_ms", 10000)
	v.SetDefault("llm.requests_per_second", 2.0)
	v.SetDefault("llm.burst", 2)
	v.SetDefault("llm.timeout_secs", 120)
	v.SetDefault("pipeline.lenient_decode", false)
	v.SetDefault("pipeline.collapse_whitespace", false)
	v.SetDefault("policy.concurrency", 3)
	v.SetDefault("policy.max_tokens", 1500)
	v.SetDefault("policy.temperature", 0.3)
	v.SetDefault("procurement.max_platforms", 8)
	v.SetDefault("procurement.listing_platforms", 5)
	v.SetDefault("procurement.concurrency", 2)
	v.SetDefault("normalize.concurrency", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
