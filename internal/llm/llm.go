package llm

import "fmt"

// NewGenerator creates a text generator auto-configured from environment
// variables.
func NewGenerator() (TextGenerator, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load generator config: %w", err)
	}

	return NewGeneratorWithConfig(config)
}

// NewGeneratorWithConfig creates a text generator with explicit
// configuration.
func NewGeneratorWithConfig(config *Config) (TextGenerator, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiGenerator(*config), nil
	case ProviderAnthropic:
		return NewAnthropicGenerator(*config), nil
	default:
		return nil, fmt.Errorf("unsupported generator provider: %s", config.Provider)
	}
}
