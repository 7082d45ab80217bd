package agent

import (
	"codeberg.org/diagramforge/server/internal/llm"
	"codeberg.org/diagramforge/server/internal/mermaid"
)

// reported as the diagram type when the request asked for auto detection
const AutoDetected = "auto-detected"

// request option bounds, enforced before the generator is called
const (
	MinTemperature = 0.0
	MaxTemperature = 1.0
	MinMaxTokens   = 100
	MaxMaxTokens   = 4000
)

// Agent runs the diagram generation pipeline: classify, build the
// prompt, call the generator, extract, repair (ER only), validate.
type Agent struct {
	generator llm.TextGenerator
}

// GenerateRequest contains all inputs for one diagram generation. All
// fields are request-scoped; nothing here outlives the call.
type GenerateRequest struct {
	Description string
	DiagramType mermaid.DiagramType
	Temperature float32
	MaxTokens   int
}

// GenerateResponse contains the final diagram code and metadata.
type GenerateResponse struct {
	MermaidCode  string `json:"mermaid_code"`
	DiagramType  string `json:"diagram_type"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}
