package llm

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an upstream generation API failure.
type ErrorKind string

const (
	KindAuth      ErrorKind = "auth"      // rejected credentials
	KindQuota     ErrorKind = "quota"     // rate limit or quota exhausted
	KindTransport ErrorKind = "transport" // could not reach the API
	KindUnknown   ErrorKind = "unknown"   // anything else
)

// UpstreamError is a classified failure from a generation API. It is
// surfaced verbatim to the boundary layer, which picks status codes and
// user messaging from Kind.
type UpstreamError struct {
	Kind     ErrorKind
	Provider Provider
	Status   int // HTTP status when available, 0 otherwise
	Message  string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s error (HTTP %d): %s", e.Provider, e.Kind, e.Status, e.Message)
	}

	return fmt.Sprintf("%s %s error: %s", e.Provider, e.Kind, e.Message)
}

// AsUpstream unwraps err to an UpstreamError if one is in the chain.
func AsUpstream(err error) (*UpstreamError, bool) {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream, true
	}

	return nil, false
}

// maps an API status code to a classified upstream error
func classifyStatus(provider Provider, status int, body string) *UpstreamError {
	kind := KindUnknown

	switch status {
	case 401, 403:
		kind = KindAuth
	case 429:
		kind = KindQuota
	}

	return &UpstreamError{
		Kind:     kind,
		Provider: provider,
		Status:   status,
		Message:  body,
	}
}

// wraps a network-level failure as a transport error
func transportError(provider Provider, err error) *UpstreamError {
	return &UpstreamError{
		Kind:     KindTransport,
		Provider: provider,
		Message:  err.Error(),
	}
}
