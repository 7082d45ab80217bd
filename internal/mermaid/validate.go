package mermaid

import (
	"regexp"
	"strings"
)

// an identifier followed by an opening brace starts an entity attribute
// block, e.g. "CUSTOMER {"
var entityBlockRe = regexp.MustCompile(`(?m)^[ \t]*\w+[ \t]*\{`)

// IsValid heuristically checks that diagram source is structurally
// plausible: a recognized declaration keyword followed by at least one
// body line, and for ER diagrams either an entity attribute block or a
// relationship cardinality operator. This is a smoke test, not a
// grammar-complete parser: plenty of semantically broken diagrams pass,
// and only rendering the diagram confirms correctness.
func IsValid(code string) bool {
	trimmed := strings.TrimSpace(code)

	if trimmed == "" || !HasRecognizedHeader(trimmed) {
		return false
	}

	lines := nonBlankLines(trimmed)
	if len(lines) < 2 {
		return false
	}

	if IsER(trimmed) {
		body := strings.Join(lines[1:], "\n")

		if entityBlockRe.MatchString(body) {
			return true
		}

		for _, op := range []string{OpOneToMany, OpOneToOne, OpManyToMany} {
			if strings.Contains(body, op) {
				return true
			}
		}

		return false
	}

	return true
}

func nonBlankLines(code string) []string {
	var lines []string

	for _, line := range strings.Split(code, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	return lines
}
