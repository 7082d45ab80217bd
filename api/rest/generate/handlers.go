package generate

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strings"

	"codeberg.org/diagramforge/server/internal/agent"
	"codeberg.org/diagramforge/server/internal/llm"
	"codeberg.org/diagramforge/server/internal/logger"
	"codeberg.org/diagramforge/server/internal/mermaid"

	apierrors "codeberg.org/diagramforge/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// DiagramGenerator runs one description through the generation pipeline.
type DiagramGenerator interface {
	Generate(ctx context.Context, req agent.GenerateRequest) (*agent.GenerateResponse, error)
}

// strips markup so descriptions cannot smuggle script tags into prompts
// or, later, into rendered pages
var markupRe = regexp.MustCompile(`<[^>]*>`)

// creates a handler for diagram generation
func Handler(generator DiagramGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}

		diagramType, ok := mermaid.ParseType(req.DiagramType)
		if !ok {
			apierrors.BadRequest(c, "unknown diagram type", nil)
			return
		}

		resp, err := generator.Generate(c.Request.Context(), agent.GenerateRequest{
			Description: sanitizeDescription(req.Description),
			DiagramType: diagramType,
			Temperature: req.Options.Temperature,
			MaxTokens:   req.Options.MaxTokens,
		})
		if err != nil {
			respondGenerationError(c, err)
			return
		}

		logger.Debug("diagram generated",
			"diagram_type", resp.DiagramType,
			"output_tokens", resp.OutputTokens,
		)

		c.JSON(http.StatusOK, Response{
			MermaidCode:  resp.MermaidCode,
			DiagramType:  resp.DiagramType,
			Model:        resp.Model,
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
		})
	}
}

// maps pipeline failures to status codes: quota exhaustion to 429, other
// upstream failures to 502, unusable or invalid model output to 422
func respondGenerationError(c *gin.Context, err error) {
	if upstream, ok := llm.AsUpstream(err); ok {
		if upstream.Kind == llm.KindQuota {
			apierrors.TooManyRequests(c, "generation service quota exceeded, try again later")
			return
		}

		apierrors.UpstreamUnavailable(c, err)
		return
	}

	if errors.Is(err, mermaid.ErrNoDiagram) {
		apierrors.GenerationFailed(c, "the model did not return a diagram, try rephrasing the description")
		return
	}

	if errors.Is(err, agent.ErrInvalidSyntax) {
		apierrors.InvalidSyntax(c)
		return
	}

	apierrors.InternalError(c, "failed to generate diagram", err)
}

func sanitizeDescription(description string) string {
	return strings.TrimSpace(markupRe.ReplaceAllString(description, ""))
}
