package generate

// Options are per-request generation overrides.
type Options struct {
	Temperature float32 `json:"temperature" binding:"omitempty,gte=0,lte=1"`
	MaxTokens   int     `json:"max_tokens" binding:"omitempty,gte=100,lte=4000"`
}

// Request is the request body for diagram generation.
type Request struct {
	Description string  `json:"description" binding:"required,min=10,max=2000"`
	DiagramType string  `json:"diagram_type" binding:"omitempty,oneof=auto flowchart class sequence er state gantt"`
	Options     Options `json:"options"`
}

// Response is the response body for diagram generation.
type Response struct {
	MermaidCode  string `json:"mermaid_code"`
	DiagramType  string `json:"diagram_type"`
	Model        string `json:"model"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}
