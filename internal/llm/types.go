package llm

import "context"

// Provider identifies a text-generation API backend.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// TextGenerator produces text from a prompt. The pipeline treats this as
// a black box: one prompt in, one response (or classified failure) out.
// No retries happen at this level.
type TextGenerator interface {
	GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error)
	Model() string
}

// TextGenerationRequest carries one prompt plus per-request overrides.
// Zero-valued fields fall back to the generator's configured defaults.
type TextGenerationRequest struct {
	SystemPrompt string
	Prompt       string
	Temperature  float32 // 0.0 to 1.0
	MaxTokens    int
}

// TextGenerationResponse is the generated text with usage metadata.
type TextGenerationResponse struct {
	Text  string
	Usage Usage
}

// Usage reports token consumption for one generation call.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// Config holds generator configuration loaded once at process start and
// treated as immutable afterwards.
type Config struct {
	Provider Provider
	APIKey   string
	Model    string
	BaseURL  string // override for tests; empty means the provider default

	// generation parameters
	MaxTokens   int
	Temperature float32
	TopK        int
	TopP        float32

	// content-safety threshold applied to every harm category (Gemini)
	SafetyThreshold string
}
