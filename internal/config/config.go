package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v9"
)

// Provider identifiers accepted in Config.Provider.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderAzure     = "azure"
)

type Config struct {
	Provider        string  `toml:"provider" env:"MASHCOOK_PROVIDER"`
	Model           string  `toml:"model" env:"MASHCOOK_MODEL"`
	Temperature     float64 `toml:"temperature" env:"MASHCOOK_TEMPERATURE"`
	MaxOutputTokens int64   `toml:"max_output_tokens" env:"MASHCOOK_MAX_OUTPUT_TOKENS"`
	MaxToolRounds   int     `toml:"max_tool_rounds" env:"MASHCOOK_MAX_TOOL_ROUNDS"`

	OpenAI    OpenAIConfig    `toml:"openai"`
	Anthropic AnthropicConfig `toml:"anthropic"`
	Azure     AzureConfig     `toml:"azure"`

	Gateway GatewayConfig `toml:"gateway"`
	Trace   TraceConfig   `toml:"trace"`
}

type OpenAIConfig struct {
	APIKey  string `toml:"api_key" env:"OPENAI_API_KEY"`
	BaseURL string `toml:"base_url" env:"OPENAI_BASE_URL"`
}

// AnthropicConfig points the OpenAI-compatible client at Anthropic's
// compatibility endpoint.
type AnthropicConfig struct {
	APIKey  string `toml:"api_key" env:"ANTHROPIC_API_KEY"`
	BaseURL string `toml:"base_url" env:"ANTHROPIC_BASE_URL"`
}

type AzureConfig struct {
	APIKey     string `toml:"api_key" env:"AZURE_OPENAI_API_KEY"`
	Endpoint   string `toml:"endpoint" env:"AZURE_OPENAI_ENDPOINT"`
	APIVersion string `toml:"api_version" env:"AZURE_OPENAI_API_VERSION"`
}

type GatewayConfig struct {
	Addr string `toml:"addr" env:"MASHCOOK_GATEWAY_ADDR"`
}

type TraceConfig struct {
	Endpoint string `toml:"endpoint" env:"MASHCOOK_TRACE_ENDPOINT"`
	URLPath  string `toml:"url_path" env:"MASHCOOK_TRACE_URL_PATH"`
	APIKey   string `toml:"api_key" env:"MASHCOOK_TRACE_API_KEY"`
}

// Default returns the built-in configuration before any file or
// environment override is applied.
func Default() *Config {
	return &Config{
		Provider:        ProviderOpenAI,
		Model:           "gpt-4o-mini",
		Temperature:     0.7,
		MaxOutputTokens: 4000,
		MaxToolRounds:   8,
		Anthropic: AnthropicConfig{
			BaseURL: "https://api.anthropic.com/v1",
		},
		Azure: AzureConfig{
			APIVersion: "2024-10-21",
		},
		Gateway: GatewayConfig{
			Addr: ":8585",
		},
	}
}

// Load builds the effective configuration: defaults, then the TOML file
// (if present), then environment variables. The result is validated; a
// *Error here means the process must not attempt any provider call.
func Load() (*Config, error) {
	return loadFrom(configPath())
}

func loadFrom(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, &Error{Reason: "parsing " + path + ": " + err.Error()}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, &Error{Reason: "parsing environment: " + err.Error()}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func configPath() string {
	dir, _ := os.UserConfigDir()
	return filepath.Join(dir, "mashcook", "config.toml")
}
