package engine

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
)

type checklistFile struct {
	Sections []yamlSection `yaml:"sections"`
}

type yamlSection struct {
	ID         int         `yaml:"id"`
	Title      string      `yaml:"title"`
	Weight     float64     `yaml:"weight"`
	HealthRisk string      `yaml:"healthRisk"`
	Kind       string      `yaml:"kind"`
	Items      []yamlItem  `yaml:"items"`
	Applies    bool        `yaml:"applies"`
	Mode       string      `yaml:"mode"`
	Symmetric  []yamlItem  `yaml:"symmetric"`
	Mixed      []yamlItem  `yaml:"mixed"`
}

type yamlItem struct {
	ID         string  `yaml:"id"`
	Text       string  `yaml:"text"`
	Weight     float64 `yaml:"weight"`
	HealthRisk string  `yaml:"healthRisk"`
}

// LoadSections parses a custom checklist definition from YAML.
func LoadSections(r io.Reader) ([]storage.Section, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read checklist: %w", err)
	}

	var file checklistFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse checklist: %w", err)
	}
	if len(file.Sections) == 0 {
		return nil, fmt.Errorf("checklist has no sections")
	}

	sections := make([]storage.Section, 0, len(file.Sections))
	for _, ys := range file.Sections {
		sec := storage.Section{
			ID:         ys.ID,
			Title:      ys.Title,
			Weight:     ys.Weight,
			HealthRisk: ys.HealthRisk,
			Kind:       storage.SectionKind(ys.Kind),
			Items:      convertItems(ys.Items),
			Applies:    ys.Applies,
			Mode:       storage.DualMode(ys.Mode),
			Symmetric:  convertItems(ys.Symmetric),
			Mixed:      convertItems(ys.Mixed),
		}
		if sec.Kind == "" {
			sec.Kind = storage.SectionRegular
		}
		if sec.Kind == storage.SectionModed && sec.Mode == "" {
			sec.Mode = storage.ModeNotApplicable
		}
		sections = append(sections, sec)
	}

	if err := ValidateSections(sections); err != nil {
		return nil, err
	}
	return sections, nil
}

// LoadSectionsFile is LoadSections over a file path.
func LoadSectionsFile(path string) ([]storage.Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open checklist %s: %w", path, err)
	}
	defer f.Close()
	return LoadSections(f)
}

func convertItems(items []yamlItem) []storage.ChecklistItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]storage.ChecklistItem, len(items))
	for i, it := range items {
		out[i] = storage.ChecklistItem{ID: it.ID, Text: it.Text, Weight: it.Weight, HealthRisk: it.HealthRisk}
	}
	return out
}

// ValidateSections enforces the checklist shape rules: valid kinds, each
// section owning exactly the fields of its kind, non-negative weights and
// unique ids.
func ValidateSections(sections []storage.Section) error {
	sectionIDs := map[int]bool{}
	itemIDs := map[string]bool{}

	checkItems := func(secID int, items []storage.ChecklistItem) error {
		for _, it := range items {
			if it.ID == "" {
				return fmt.Errorf("section %d: item with empty id", secID)
			}
			if itemIDs[it.ID] {
				return fmt.Errorf("duplicate item id: %s", it.ID)
			}
			itemIDs[it.ID] = true
			if it.Weight < 0 {
				return fmt.Errorf("item %s: negative weight %v", it.ID, it.Weight)
			}
		}
		return nil
	}

	for i := range sections {
		sec := &sections[i]
		if sectionIDs[sec.ID] {
			return fmt.Errorf("duplicate section id: %d", sec.ID)
		}
		sectionIDs[sec.ID] = true
		if sec.Title == "" {
			return fmt.Errorf("section %d: empty title", sec.ID)
		}

		switch sec.Kind {
		case storage.SectionRegular:
			if len(sec.Symmetric) > 0 || len(sec.Mixed) > 0 {
				return fmt.Errorf("section %d: regular sections own items only", sec.ID)
			}
			if len(sec.Items) == 0 {
				return fmt.Errorf("section %d: regular section has no items", sec.ID)
			}
			if err := checkItems(sec.ID, sec.Items); err != nil {
				return err
			}
		case storage.SectionModed:
			if len(sec.Items) > 0 {
				return fmt.Errorf("section %d: moded sections own variant lists, not items", sec.ID)
			}
			if !sec.Mode.IsValid() {
				return fmt.Errorf("section %d: invalid mode %q", sec.ID, sec.Mode)
			}
			if len(sec.Symmetric) == 0 && len(sec.Mixed) == 0 {
				return fmt.Errorf("section %d: moded section has no variants", sec.ID)
			}
			if err := checkItems(sec.ID, sec.Symmetric); err != nil {
				return err
			}
			if err := checkItems(sec.ID, sec.Mixed); err != nil {
				return err
			}
		case storage.SectionOptional:
			if len(sec.Symmetric) > 0 || len(sec.Mixed) > 0 {
				return fmt.Errorf("section %d: optional sections own items only", sec.ID)
			}
			if len(sec.Items) == 0 {
				return fmt.Errorf("section %d: optional section has no items", sec.ID)
			}
			if err := checkItems(sec.ID, sec.Items); err != nil {
				return err
			}
		default:
			return fmt.Errorf("section %d: invalid kind %q", sec.ID, sec.Kind)
		}
	}
	return nil
}
