package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	defaultGeminiModel     = "gemini-2.0-flash"
	defaultMaxOutputTokens = 2048
	defaultTemperature     = 0.7
	defaultTopK            = 40
	defaultTopP            = 0.95
	defaultSafetyThreshold = "BLOCK_MEDIUM_AND_ABOVE"
)

// harm categories the safety threshold is applied to
var geminiHarmCategories = []string{
	"HARM_CATEGORY_HARASSMENT",
	"HARM_CATEGORY_HATE_SPEECH",
	"HARM_CATEGORY_SEXUALLY_EXPLICIT",
	"HARM_CATEGORY_DANGEROUS_CONTENT",
}

// shared HTTP client for Gemini API calls
var geminiHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Gemini API calls (10 requests/second, burst of 5)
var geminiRateLimiter = rate.NewLimiter(10, 5)

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
	SafetySettings    []geminiSafetySetting   `json:"safetySettings,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float32 `json:"temperature"`
	TopK            int     `json:"topK,omitempty"`
	TopP            float32 `json:"topP,omitempty"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	UsageMetadata *struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
	} `json:"usageMetadata"`
}

// GeminiGenerator calls the Gemini generateContent API.
type GeminiGenerator struct {
	config     Config
	httpClient *http.Client
}

func NewGeminiGenerator(config Config) *GeminiGenerator {
	if config.Model == "" {
		config.Model = defaultGeminiModel
	}

	if config.BaseURL == "" {
		config.BaseURL = geminiBaseURL
	}

	if config.MaxTokens == 0 {
		config.MaxTokens = defaultMaxOutputTokens
	}

	if config.Temperature == 0 {
		config.Temperature = defaultTemperature
	}

	if config.TopK == 0 {
		config.TopK = defaultTopK
	}

	if config.TopP == 0 {
		config.TopP = defaultTopP
	}

	if config.SafetyThreshold == "" {
		config.SafetyThreshold = defaultSafetyThreshold
	}

	return &GeminiGenerator{
		config:     config,
		httpClient: geminiHTTPClient,
	}
}

func (g *GeminiGenerator) Model() string {
	return g.config.Model
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, req TextGenerationRequest) (*TextGenerationResponse, error) {
	temperature := req.Temperature
	if temperature == 0 {
		temperature = g.config.Temperature
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = g.config.MaxTokens
	}

	safetySettings := make([]geminiSafetySetting, 0, len(geminiHarmCategories))
	for _, category := range geminiHarmCategories {
		safetySettings = append(safetySettings, geminiSafetySetting{
			Category:  category,
			Threshold: g.config.SafetyThreshold,
		})
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: req.Prompt}},
			},
		},
		GenerationConfig: &geminiGenerationConfig{
			Temperature:     temperature,
			TopK:            g.config.TopK,
			TopP:            g.config.TopP,
			MaxOutputTokens: maxTokens,
		},
		SafetySettings: safetySettings,
	}

	if req.SystemPrompt != "" {
		reqBody.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemPrompt}},
		}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.config.BaseURL, g.config.Model, g.config.APIKey)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")

	// rate limiting
	if err := geminiRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, transportError(ProviderGemini, err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return nil, classifyStatus(ProviderGemini, resp.StatusCode, string(body))
	}

	var apiResp geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.PromptFeedback != nil && apiResp.PromptFeedback.BlockReason != "" {
		return nil, &UpstreamError{
			Kind:     KindUnknown,
			Provider: ProviderGemini,
			Message:  fmt.Sprintf("prompt blocked by safety filter: %s", apiResp.PromptFeedback.BlockReason),
		}
	}

	if len(apiResp.Candidates) == 0 {
		return nil, &UpstreamError{
			Kind:     KindUnknown,
			Provider: ProviderGemini,
			Message:  "no candidates in response",
		}
	}

	var text strings.Builder
	for _, part := range apiResp.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	result := &TextGenerationResponse{
		Text: strings.TrimSpace(text.String()),
	}

	if apiResp.UsageMetadata != nil {
		result.Usage = Usage{
			InputTokens:  apiResp.UsageMetadata.PromptTokenCount,
			OutputTokens: apiResp.UsageMetadata.CandidatesTokenCount,
		}
	}

	return result, nil
}
