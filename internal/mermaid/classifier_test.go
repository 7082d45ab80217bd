package mermaid

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        DiagramType
	}{
		{
			name:        "er keywords",
			description: "Show the database tables for a shop with orders and customers",
			want:        TypeER,
		},
		{
			name:        "er phrase",
			description: "Draw an ER diagram of my blog",
			want:        TypeER,
		},
		{
			name:        "entity relationship phrase",
			description: "an entity relationship view of the warehouse",
			want:        TypeER,
		},
		{
			name:        "class keywords",
			description: "Model the inheritance between Animal, Dog and Cat",
			want:        TypeClass,
		},
		{
			name:        "uml phrase",
			description: "a UML view of the payment module",
			want:        TypeClass,
		},
		{
			name:        "sequence keywords",
			description: "The user sends a message to the server and waits for a reply",
			want:        TypeSequence,
		},
		{
			name:        "sequence phrase",
			description: "sequence diagram of the login handshake",
			want:        TypeSequence,
		},
		{
			name:        "no match falls back to auto",
			description: "Create a flowchart showing the process of making coffee: start, boil water, grind beans, brew coffee, serve",
			want:        TypeAuto,
		},
		{
			name:        "case insensitive",
			description: "DATABASE SCHEMA overview",
			want:        TypeER,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.description)
			if got != tc.want {
				t.Errorf("Classify(%q) = %q, want %q", tc.description, got, tc.want)
			}
		})
	}
}

// ER is checked before class and sequence, so a description that hits
// several keyword sets must resolve to ER.
func TestClassifyPrecedence(t *testing.T) {
	description := "database tables with a class for each entity and the message flow between them"

	if got := Classify(description); got != TypeER {
		t.Errorf("expected ER to win on mixed keywords, got %q", got)
	}

	classAndSequence := "class hierarchy and the messages the objects exchange"

	if got := Classify(classAndSequence); got != TypeClass {
		t.Errorf("expected class to win over sequence, got %q", got)
	}
}

func TestClassifyKeywordSetsDisjoint(t *testing.T) {
	seen := make(map[string]DiagramType)

	for _, rule := range classificationRules {
		for _, keyword := range rule.keywords {
			if family, ok := seen[keyword]; ok {
				t.Errorf("keyword %q appears in both %q and %q", keyword, family, rule.family)
			}
			seen[keyword] = rule.family
		}
	}
}
