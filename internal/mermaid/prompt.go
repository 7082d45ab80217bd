package mermaid

import "strings"

// BuildPrompt assembles the generation prompt for a description and a
// diagram family. Deterministic: identical inputs produce identical
// prompts, and nothing is cached between calls.
func BuildPrompt(description string, family DiagramType) string {
	var builder strings.Builder

	builder.WriteString(baseInstructions)
	builder.WriteString("\n")

	switch family {
	case TypeER:
		builder.WriteString(erGuidance)
		builder.WriteString("\n")
	case TypeClass:
		builder.WriteString(classGuidance)
		builder.WriteString("\n")
	case TypeSequence:
		builder.WriteString(sequenceGuidance)
		builder.WriteString("\n")
	}

	builder.WriteString("Description:\n")
	builder.WriteString(description)

	return builder.String()
}

const baseInstructions = `You are a Mermaid.js diagram generator. Convert the description below into valid Mermaid diagram source.

Requirements:
- Return ONLY the Mermaid source. No prose, no explanations, no markdown code fences.
- The first line must be one of the supported declaration keywords:
  graph / flowchart -> flowchart syntax (nodes connected by arrows)
  classDiagram      -> UML class syntax (classes, members, relations)
  sequenceDiagram   -> interaction syntax (participants exchanging messages)
  erDiagram         -> entity-relationship syntax (entities and cardinalities)
  stateDiagram-v2   -> state transition syntax (states and transitions)
  gantt             -> schedule syntax (sections, tasks, dates)
- Pick the declaration that best fits the description unless one is mandated below.
`

const erGuidance = `This is an entity-relationship diagram. It MUST start with the erDiagram header.

Relationship cardinality operators (use these exact tokens):
  ||--o{  one-to-many
  ||--||  one-to-one
  }o--o{  many-to-many

Relationship labels MUST be a single verb from this list:
  places, contains, has, owns, creates, manages, categorizes, writes

NEVER use multi-word relationship labels such as "belongs to" or "written by".
NEVER use the keyword IDENTIFYING anywhere in the diagram.

Correct example:
erDiagram
    CUSTOMER ||--o{ ORDER : places
    ORDER ||--|| INVOICE : has
    AUTHOR ||--o{ BOOK : writes
    CUSTOMER {
        int id
        string name
    }

Wrong: PRODUCT ||--o{ CATEGORY : belongs to
Right: CATEGORY ||--o{ PRODUCT : categorizes

Wrong: BOOK ||--o{ AUTHOR : written by
Right: AUTHOR ||--o{ BOOK : writes
`

const classGuidance = `This is a class diagram. It MUST start with the classDiagram header.

Member visibility markers:
  +  public
  -  private
  #  protected

Relation operators:
  <|--  inheritance
  -->   association
  *--   composition
`

const sequenceGuidance = `This is a sequence diagram. It MUST start with the sequenceDiagram header.

Arrow variants:
  ->>   solid line with arrowhead (synchronous call)
  -->>  dashed line with arrowhead (response)
  -x    solid line with cross (lost/terminating message)
  --x   dashed line with cross (async terminating message)

When the description involves conditions or repetition, use block syntax:
  alt <condition> ... else ... end
  loop <label> ... end
`
