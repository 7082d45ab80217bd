package mermaid

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{
			name: "generic diagram with body",
			code: "graph TD\n A[Start] --> B[End]",
			want: true,
		},
		{
			name: "empty string",
			code: "",
			want: false,
		},
		{
			name: "whitespace only",
			code: "  \n\t\n",
			want: false,
		},
		{
			name: "prose without header",
			code: "this is not a diagram\nstill not one",
			want: false,
		},
		{
			name: "header alone has no body",
			code: "gantt",
			want: false,
		},
		{
			name: "header with only blank lines",
			code: "flowchart LR\n\n   \n",
			want: false,
		},
		{
			name: "er with entity block",
			code: "erDiagram\n  CUSTOMER {\n    int id\n  }",
			want: true,
		},
		{
			name: "er with one-to-many operator",
			code: "erDiagram\n  CUSTOMER ||--o{ ORDER : places",
			want: true,
		},
		{
			name: "er with many-to-many operator",
			code: "erDiagram\n  STUDENT }o--o{ COURSE : has",
			want: true,
		},
		{
			name: "er body without blocks or operators",
			code: "erDiagram\n  just some words",
			want: false,
		},
		{
			name: "state diagram body is not held to er rules",
			code: "stateDiagram-v2\n [*] --> Idle",
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValid(tc.code); got != tc.want {
				t.Errorf("IsValid(%q) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

// a relationship operator alone satisfies the ER check even with no
// entity block; this lenience tolerates partial diagrams and is pinned
// here so tightening it is a deliberate change.
func TestIsValidERRelationshipOnly(t *testing.T) {
	code := "erDiagram\n  A ||--|| B : has"

	if !IsValid(code) {
		t.Error("expected ER diagram with only a relationship line to validate")
	}
}
