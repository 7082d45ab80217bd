package mermaid

import "strings"

// DiagramType identifies one of the supported Mermaid diagram families.
type DiagramType string

const (
	TypeAuto      DiagramType = "auto"
	TypeFlowchart DiagramType = "flowchart"
	TypeClass     DiagramType = "class"
	TypeSequence  DiagramType = "sequence"
	TypeER        DiagramType = "er"
	TypeState     DiagramType = "state"
	TypeGantt     DiagramType = "gantt"
)

// declaration keywords accepted as the first token of generated output.
// broader than the six requestable families: models legitimately emit
// these even when the request was generic.
var recognizedHeaders = []string{
	"graph",
	"flowchart",
	"classdiagram",
	"sequencediagram",
	"erdiagram",
	"statediagram",
	"gantt",
	"pie",
	"journey",
	"gitgraph",
	"mindmap",
	"timeline",
}

// relationship cardinality operators for ER diagrams
const (
	OpOneToMany  = "||--o{"
	OpOneToOne   = "||--||"
	OpManyToMany = "}o--o{"
)

// parses a requested diagram type; empty input means auto
func ParseType(s string) (DiagramType, bool) {
	switch DiagramType(strings.ToLower(strings.TrimSpace(s))) {
	case "", TypeAuto:
		return TypeAuto, true
	case TypeFlowchart:
		return TypeFlowchart, true
	case TypeClass:
		return TypeClass, true
	case TypeSequence:
		return TypeSequence, true
	case TypeER:
		return TypeER, true
	case TypeState:
		return TypeState, true
	case TypeGantt:
		return TypeGantt, true
	}

	return TypeAuto, false
}

// reports whether the text begins with a recognized declaration keyword
func HasRecognizedHeader(code string) bool {
	lower := strings.ToLower(strings.TrimSpace(code))

	for _, header := range recognizedHeaders {
		if strings.HasPrefix(lower, header) {
			return true
		}
	}

	return false
}

// reports whether the first line declares an entity-relationship diagram
func IsER(code string) bool {
	firstLine, _, _ := strings.Cut(strings.TrimSpace(code), "\n")
	return strings.EqualFold(strings.TrimSpace(firstLine), "erDiagram")
}
