package agent

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/diagramforge/server/internal/llm"
	"codeberg.org/diagramforge/server/internal/logger"
	"codeberg.org/diagramforge/server/internal/mermaid"
)

// ErrInvalidSyntax indicates the generated diagram failed heuristic
// validation even after repair.
var ErrInvalidSyntax = errors.New("generated diagram failed syntax validation")

func New(generator llm.TextGenerator) *Agent {
	return &Agent{generator: generator}
}

// Generate runs one description through the full pipeline and returns
// validated Mermaid source. Upstream failures propagate verbatim;
// extraction and validation failures come back as classified errors so
// the HTTP layer can pick status codes. No retries happen here.
func (a *Agent) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	family := req.DiagramType
	reportedType := string(family)

	if family == mermaid.TypeAuto || family == "" {
		family = mermaid.Classify(req.Description)
		reportedType = AutoDetected

		logger.Debug("classified diagram description",
			"family", family,
		)
	}

	prompt := mermaid.BuildPrompt(req.Description, family)

	response, err := a.generator.GenerateText(ctx, llm.TextGenerationRequest{
		Prompt:      prompt,
		Temperature: clampTemperature(req.Temperature),
		MaxTokens:   clampMaxTokens(req.MaxTokens),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate diagram: %w", err)
	}

	code, err := mermaid.Extract(response.Text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract diagram from model output: %w", err)
	}

	if mermaid.IsER(code) {
		code = mermaid.RepairER(code)
	}

	if !mermaid.IsValid(code) {
		return nil, ErrInvalidSyntax
	}

	return &GenerateResponse{
		MermaidCode:  code,
		DiagramType:  reportedType,
		Model:        a.generator.Model(),
		InputTokens:  response.Usage.InputTokens,
		OutputTokens: response.Usage.OutputTokens,
	}, nil
}

// clamps to [0, 1]; zero passes through so the generator default applies
func clampTemperature(temperature float32) float32 {
	if temperature < MinTemperature {
		return MinTemperature
	}

	if temperature > MaxTemperature {
		return MaxTemperature
	}

	return temperature
}

// clamps to [100, 4000]; zero passes through so the generator default
// applies
func clampMaxTokens(maxTokens int) int {
	if maxTokens == 0 {
		return 0
	}

	if maxTokens < MinMaxTokens {
		return MinMaxTokens
	}

	if maxTokens > MaxMaxTokens {
		return MaxMaxTokens
	}

	return maxTokens
}
