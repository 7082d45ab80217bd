package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGemini(t *testing.T, handler http.HandlerFunc) (*GeminiGenerator, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	generator := NewGeminiGenerator(Config{
		Provider: ProviderGemini,
		APIKey:   "test-key",
		BaseURL:  server.URL,
	})

	return generator, server
}

func TestGeminiGenerateText(t *testing.T) {
	var captured geminiRequest

	generator, _ := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("failed to decode request: %v", err)
		}

		resp := map[string]any{
			"candidates": []map[string]any{
				{
					"content": map[string]any{
						"parts": []map[string]any{{"text": "graph TD\n A --> B"}},
					},
					"finishReason": "STOP",
				},
			},
			"usageMetadata": map[string]any{
				"promptTokenCount":     120,
				"candidatesTokenCount": 30,
			},
		}
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	})

	resp, err := generator.GenerateText(context.Background(), TextGenerationRequest{
		Prompt:      "draw something",
		Temperature: 0.4,
		MaxTokens:   1000,
	})
	if err != nil {
		t.Fatalf("GenerateText failed: %v", err)
	}

	if resp.Text != "graph TD\n A --> B" {
		t.Errorf("unexpected text: %q", resp.Text)
	}

	if resp.Usage.InputTokens != 120 || resp.Usage.OutputTokens != 30 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}

	// request overrides reach the wire
	if captured.GenerationConfig == nil {
		t.Fatal("generation config missing from request")
	}

	if captured.GenerationConfig.Temperature != 0.4 {
		t.Errorf("temperature = %v, want 0.4", captured.GenerationConfig.Temperature)
	}

	if captured.GenerationConfig.MaxOutputTokens != 1000 {
		t.Errorf("maxOutputTokens = %d, want 1000", captured.GenerationConfig.MaxOutputTokens)
	}

	// config defaults fill the rest
	if captured.GenerationConfig.TopK != defaultTopK {
		t.Errorf("topK = %d, want default %d", captured.GenerationConfig.TopK, defaultTopK)
	}

	if len(captured.SafetySettings) != len(geminiHarmCategories) {
		t.Errorf("expected %d safety settings, got %d", len(geminiHarmCategories), len(captured.SafetySettings))
	}

	for _, setting := range captured.SafetySettings {
		if setting.Threshold != defaultSafetyThreshold {
			t.Errorf("safety threshold = %q, want %q", setting.Threshold, defaultSafetyThreshold)
		}
	}
}

func TestGeminiErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, KindAuth},
		{"forbidden", http.StatusForbidden, KindAuth},
		{"rate limited", http.StatusTooManyRequests, KindQuota},
		{"server error", http.StatusInternalServerError, KindUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			generator, _ := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
			})

			_, err := generator.GenerateText(context.Background(), TextGenerationRequest{Prompt: "x"})

			upstream, ok := AsUpstream(err)
			if !ok {
				t.Fatalf("expected UpstreamError, got %v", err)
			}

			if upstream.Kind != tc.want {
				t.Errorf("kind = %q, want %q", upstream.Kind, tc.want)
			}

			if upstream.Status != tc.status {
				t.Errorf("status = %d, want %d", upstream.Status, tc.status)
			}
		})
	}
}

func TestGeminiTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	generator := NewGeminiGenerator(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	_, err := generator.GenerateText(context.Background(), TextGenerationRequest{Prompt: "x"})

	upstream, ok := AsUpstream(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}

	if upstream.Kind != KindTransport {
		t.Errorf("kind = %q, want %q", upstream.Kind, KindTransport)
	}
}

func TestGeminiBlockedPrompt(t *testing.T) {
	generator, _ := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"promptFeedback": map[string]any{"blockReason": "SAFETY"},
		})
	})

	_, err := generator.GenerateText(context.Background(), TextGenerationRequest{Prompt: "x"})

	upstream, ok := AsUpstream(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}

	if upstream.Kind != KindUnknown {
		t.Errorf("kind = %q, want %q", upstream.Kind, KindUnknown)
	}
}
