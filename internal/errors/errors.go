package errors

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/diagramforge/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use the responders here for terminal errors; they handle both
//     logging and the HTTP response
//   - Use logger.ErrorErr() only for non-critical errors where
//     processing continues
//   - Never call both logger.ErrorErr() and InternalError() for the
//     same error
//
// For internal packages (llm, mermaid, agent):
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the handler decide how to log and respond

// ErrorResponse is the standardized error body.
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "generation_failed")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

// standard error codes
const (
	CodeBadRequest          = "bad_request"
	CodeValidationError     = "validation_error"
	CodeGenerationFailed    = "generation_failed"
	CodeInvalidSyntax       = "invalid_syntax"
	CodeUpstreamUnavailable = "upstream_unavailable"
	CodeTooManyRequests     = "too_many_requests"
	CodeServerError         = "server_error"
	CodeNotFound            = "not_found"
)

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 bad request error for binding failures
func ValidationError(c *gin.Context, err error) {
	message := "validation failed"
	details := ""

	if err != nil {
		details = sanitizeError(err)
		if strings.Contains(err.Error(), "binding") || strings.Contains(err.Error(), "validation") {
			message = "request validation failed"
		}
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
		Details: details,
	})
}

// returns a 422 error when the model produced no usable diagram
func GenerationFailed(c *gin.Context, message string) {
	if message == "" {
		message = "failed to generate a diagram, try rephrasing the description"
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   CodeGenerationFailed,
		Message: message,
	})
}

// returns a 422 error when the generated diagram failed validation
func InvalidSyntax(c *gin.Context) {
	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   CodeInvalidSyntax,
		Message: "the generated diagram did not pass syntax checks, try rephrasing the description",
	})
}

// returns a 502 error when the generation API cannot be used
func UpstreamUnavailable(c *gin.Context, err error) {
	logger.ErrorErr(err, "generation API unavailable",
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   CodeUpstreamUnavailable,
		Message: "the generation service is unavailable",
		Details: sanitizeError(err),
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if os.Getenv("ENVIRONMENT") != "production" {
		return errMsg
	}

	lower := strings.ToLower(errMsg)

	if strings.Contains(lower, "api key") || strings.Contains(lower, "auth") {
		return "generation service rejected credentials"
	}

	if strings.Contains(lower, "quota") || strings.Contains(lower, "rate") {
		return "generation service quota exceeded"
	}

	if strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline") {
		return "request timed out"
	}

	if strings.Contains(lower, "connection") || strings.Contains(lower, "network") {
		return "connection error occurred"
	}

	return "an error occurred"
}
