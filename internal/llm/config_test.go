package llm

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GENERATOR_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("GENERATOR_MODEL", "")
	t.Setenv("GENERATOR_MAX_TOKENS", "")
	t.Setenv("GENERATOR_TEMPERATURE", "")

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if config.Provider != ProviderGemini {
		t.Errorf("provider = %q, want gemini default", config.Provider)
	}

	if config.APIKey != "key-123" {
		t.Errorf("api key = %q", config.APIKey)
	}
}

func TestLoadConfigMissingKey(t *testing.T) {
	t.Setenv("GENERATOR_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for missing GEMINI_API_KEY")
	}
}

func TestLoadConfigParameters(t *testing.T) {
	t.Setenv("GENERATOR_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "key-123")
	t.Setenv("GENERATOR_MODEL", "gemini-2.5-pro")
	t.Setenv("GENERATOR_MAX_TOKENS", "3000")
	t.Setenv("GENERATOR_TEMPERATURE", "0.2")
	t.Setenv("GENERATOR_TOP_K", "16")
	t.Setenv("GENERATOR_TOP_P", "0.8")

	config, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}

	if config.Model != "gemini-2.5-pro" {
		t.Errorf("model = %q", config.Model)
	}

	if config.MaxTokens != 3000 {
		t.Errorf("max tokens = %d", config.MaxTokens)
	}

	if config.Temperature != 0.2 {
		t.Errorf("temperature = %v", config.Temperature)
	}

	if config.TopK != 16 || config.TopP != 0.8 {
		t.Errorf("topK/topP = %d/%v", config.TopK, config.TopP)
	}
}

func TestNewGeneratorWithConfig(t *testing.T) {
	generator, err := NewGeneratorWithConfig(&Config{Provider: ProviderGemini, APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := generator.(*GeminiGenerator); !ok {
		t.Errorf("expected GeminiGenerator, got %T", generator)
	}

	generator, err = NewGeneratorWithConfig(&Config{Provider: ProviderAnthropic, APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := generator.(*AnthropicGenerator); !ok {
		t.Errorf("expected AnthropicGenerator, got %T", generator)
	}

	if _, err := NewGeneratorWithConfig(&Config{Provider: "mystery"}); err == nil {
		t.Error("expected error for unknown provider")
	}

	if _, err := NewGeneratorWithConfig(nil); err == nil {
		t.Error("expected error for nil config")
	}
}
