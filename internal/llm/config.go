package llm

import (
	"fmt"
	"os"
	"strconv"
)

// loadConfig loads generator configuration from environment variables
func loadConfig() (*Config, error) {
	provider := Provider(os.Getenv("GENERATOR_PROVIDER"))
	if provider == "" {
		provider = ProviderGemini // default
	}

	var apiKey string

	switch provider {
	case ProviderGemini:
		apiKey = os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
	case ProviderAnthropic:
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable is required")
		}
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", provider)
	}

	config := &Config{
		Provider:        provider,
		APIKey:          apiKey,
		Model:           os.Getenv("GENERATOR_MODEL"),
		SafetyThreshold: os.Getenv("GENERATOR_SAFETY_THRESHOLD"),
	}

	if maxTokensStr := os.Getenv("GENERATOR_MAX_TOKENS"); maxTokensStr != "" {
		if val, err := strconv.Atoi(maxTokensStr); err == nil {
			config.MaxTokens = val
		}
	}

	if tempStr := os.Getenv("GENERATOR_TEMPERATURE"); tempStr != "" {
		if val, err := strconv.ParseFloat(tempStr, 32); err == nil {
			config.Temperature = float32(val)
		}
	}

	if topKStr := os.Getenv("GENERATOR_TOP_K"); topKStr != "" {
		if val, err := strconv.Atoi(topKStr); err == nil {
			config.TopK = val
		}
	}

	if topPStr := os.Getenv("GENERATOR_TOP_P"); topPStr != "" {
		if val, err := strconv.ParseFloat(topPStr, 32); err == nil {
			config.TopP = float32(val)
		}
	}

	return config, nil
}
