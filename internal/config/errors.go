package config

import "fmt"

// Error reports an invalid or incomplete configuration. It is always
// returned before any provider call is attempted.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "config: " + e.Reason
}

// Validate checks the effective configuration and fails fast on anything
// that would make a provider call impossible or out of contract.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return &Error{Reason: "provider is openai but OPENAI_API_KEY is not set"}
		}
	case ProviderAnthropic:
		if c.Anthropic.APIKey == "" {
			return &Error{Reason: "provider is anthropic but ANTHROPIC_API_KEY is not set"}
		}
	case ProviderAzure:
		if c.Azure.APIKey == "" {
			return &Error{Reason: "provider is azure but AZURE_OPENAI_API_KEY is not set"}
		}
		if c.Azure.Endpoint == "" {
			return &Error{Reason: "provider is azure but AZURE_OPENAI_ENDPOINT is not set"}
		}
		if c.Azure.APIVersion == "" {
			return &Error{Reason: "provider is azure but AZURE_OPENAI_API_VERSION is not set"}
		}
	default:
		return &Error{Reason: fmt.Sprintf("unknown provider %q (want openai, anthropic or azure)", c.Provider)}
	}

	if c.Model == "" {
		return &Error{Reason: "model must not be empty"}
	}
	if c.Temperature < 0 || c.Temperature > 1 {
		return &Error{Reason: fmt.Sprintf("temperature %v out of range [0, 1]", c.Temperature)}
	}
	if c.MaxOutputTokens <= 0 {
		return &Error{Reason: "max_output_tokens must be positive"}
	}
	if c.MaxToolRounds <= 0 {
		return &Error{Reason: "max_tool_rounds must be positive"}
	}
	return nil
}
