package mermaid

import "strings"

// one classification rule: a diagram family with its indicator terms.
// rules are evaluated in declared order and the first hit wins, so the
// table encodes a fixed precedence (ER, then class, then sequence).
type classificationRule struct {
	family   DiagramType
	phrases  []string
	keywords []string
}

// indicator terms per family (source of truth). keyword sets are kept
// disjoint so precedence, not overlap, decides ambiguous descriptions.
var classificationRules = []classificationRule{
	{
		family:  TypeER,
		phrases: []string{"er diagram", "entity relationship"},
		keywords: []string{
			"entity", "database", "table", "schema", "foreign key",
			"one-to-many", "many-to-many",
		},
	},
	{
		family:  TypeClass,
		phrases: []string{"class diagram", "uml"},
		keywords: []string{
			"class", "inheritance", "interface", "method",
			"attribute", "object-oriented",
		},
	},
	{
		family:  TypeSequence,
		phrases: []string{"sequence diagram", "interaction diagram"},
		keywords: []string{
			"sequence", "interaction", "message", "actor", "participant",
		},
	},
}

// Classify guesses the diagram family for a free-text description using
// keyword heuristics. Returns TypeAuto when nothing matches, in which
// case the prompt builder falls back to its generic instructions.
func Classify(description string) DiagramType {
	text := strings.ToLower(description)

	for _, rule := range classificationRules {
		for _, phrase := range rule.phrases {
			if strings.Contains(text, phrase) {
				return rule.family
			}
		}

		for _, keyword := range rule.keywords {
			if strings.Contains(text, keyword) {
				return rule.family
			}
		}
	}

	return TypeAuto
}
