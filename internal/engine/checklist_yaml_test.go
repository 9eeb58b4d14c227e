package engine

import (
	"strings"
	"testing"

	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
)

const validChecklistYAML = `
sections:
  - id: 1
    title: Desk
    weight: 60
    healthRisk: chair
    items:
      - id: d1
        text: Desk at elbow height
        weight: 30
        healthRisk: chair
      - id: d2
        text: Legs fit under the desk
        weight: 30
        healthRisk: chair
  - id: 2
    title: Standing desk
    weight: 40
    healthRisk: posture
    kind: optional
    applies: true
    items:
      - id: s1
        text: Alternating sitting and standing
        weight: 40
        healthRisk: posture
`

func TestLoadSectionsFromYAML(t *testing.T) {
	sections, err := LoadSections(strings.NewReader(validChecklistYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("sections=%d, want 2", len(sections))
	}
	if sections[0].Kind != storage.SectionRegular {
		t.Fatalf("kind=%s, want regular default", sections[0].Kind)
	}
	if sections[1].Kind != storage.SectionOptional || !sections[1].Applies {
		t.Fatalf("optional section not parsed: %+v", sections[1])
	}

	res := ComputeScore(sections)
	if res.Score != 0 {
		t.Fatalf("score=%d, want 0", res.Score)
	}
	if len(res.Unchecked) != 3 {
		t.Fatalf("unchecked=%d, want 3", len(res.Unchecked))
	}
}

func TestLoadSectionsRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty", "sections: []"},
		{"not yaml", ":\t:::"},
		{"duplicate item ids", `
sections:
  - id: 1
    title: A
    items:
      - {id: x, text: one, weight: 50}
      - {id: x, text: two, weight: 50}
`},
		{"duplicate section ids", `
sections:
  - id: 1
    title: A
    items: [{id: a1, text: one, weight: 100}]
  - id: 1
    title: B
    items: [{id: b1, text: two, weight: 100}]
`},
		{"unknown kind", `
sections:
  - id: 1
    title: A
    kind: weird
    items: [{id: a1, text: one, weight: 100}]
`},
		{"negative weight", `
sections:
  - id: 1
    title: A
    items: [{id: a1, text: one, weight: -5}]
`},
		{"moded with plain items", `
sections:
  - id: 1
    title: A
    kind: moded
    mode: sym
    items: [{id: a1, text: one, weight: 100}]
`},
		{"regular with variants", `
sections:
  - id: 1
    title: A
    items: [{id: a1, text: one, weight: 50}]
    symmetric: [{id: a2, text: two, weight: 50}]
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadSections(strings.NewReader(tc.yaml)); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestValidateSectionsAcceptsStockChecklist(t *testing.T) {
	if err := ValidateSections(DefaultSections()); err != nil {
		t.Fatalf("stock checklist invalid: %v", err)
	}
}
