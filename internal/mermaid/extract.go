package mermaid

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoDiagram indicates the model response contained no recognized
// diagram declaration after fence stripping.
var ErrNoDiagram = errors.New("no recognized diagram header in model output")

// matches a markdown fence marker, with or without a language tag
// (e.g. ``` or ```mermaid)
var fenceMarkerRe = regexp.MustCompile("```[a-zA-Z]*")

// Extract strips markdown code fences from a raw model response and
// returns the cleaned diagram source. Order matters: fences are removed
// first, then the remaining text is trimmed and checked for a recognized
// declaration keyword. No further normalization happens here.
func Extract(raw string) (string, error) {
	cleaned := strings.TrimSpace(fenceMarkerRe.ReplaceAllString(raw, ""))

	if !HasRecognizedHeader(cleaned) {
		return "", ErrNoDiagram
	}

	return cleaned, nil
}
