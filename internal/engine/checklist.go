package engine

import (
	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
)

// DefaultSections returns the built-in audit checklist: seven sections with
// the stock item weights. Section weights are informational; scoring always
// sums the per-item weights of applicable sections.
func DefaultSections() []storage.Section {
	return []storage.Section{
		{
			ID: 1, Title: "Chair and body position", Weight: 25, HealthRisk: RiskChair, Kind: storage.SectionRegular,
			Items: []storage.ChecklistItem{
				{ID: "k1", Text: "Feet fully supported on the floor; use a footrest if needed", Weight: 6.25, HealthRisk: RiskChair},
				{ID: "k2", Text: "Thighs parallel to the floor; knees at roughly 90°", Weight: 6.25, HealthRisk: RiskChair},
				{ID: "k3", Text: "Backrest gives noticeable lumbar support", Weight: 6.25, HealthRisk: RiskChair},
				{ID: "k4", Text: "Armrests level with the desk; shoulders relaxed; wrists straight", Weight: 6.25, HealthRisk: RiskChair},
			},
		},
		{
			ID: 2, Title: "Monitor", Weight: 20, HealthRisk: RiskMonitor, Kind: storage.SectionRegular,
			Items: []storage.ChecklistItem{
				{ID: "m1", Text: "Top edge of the screen at eye level (or slightly below), 50–70 cm away", Weight: 6.67, HealthRisk: RiskMonitor},
				{ID: "m2", Text: "Screen tilted slightly back (10–20°) and directly in front", Weight: 6.67, HealthRisk: RiskMonitor},
				{ID: "m3", Text: "Daylight falls from the side (no glare or reflections)", Weight: 6.66, HealthRisk: RiskMonitor},
			},
		},
		{
			ID: 3, Title: "Keyboard and mouse", Weight: 15, HealthRisk: RiskKeyboardMouse, Kind: storage.SectionRegular,
			Items: []storage.ChecklistItem{
				{ID: "km1", Text: "Keyboard at elbow height; wrists straight", Weight: 7.5, HealthRisk: RiskKeyboardMouse},
				{ID: "km2", Text: "Mouse close to the keyboard, at the same height", Weight: 7.5, HealthRisk: RiskKeyboardMouse},
			},
		},
		{
			ID: 4, Title: "Posture", Weight: 10, HealthRisk: RiskPosture, Kind: storage.SectionRegular,
			Items: []storage.ChecklistItem{
				{ID: "p1", Text: "Back straight; shoulders relaxed", Weight: 5, HealthRisk: RiskPosture},
				{ID: "p2", Text: "Head in a neutral position (not pushed forward)", Weight: 5, HealthRisk: RiskPosture},
			},
		},
		{
			ID: 5, Title: "Working with two monitors", Weight: 10, HealthRisk: RiskDualMonitors, Kind: storage.SectionModed,
			Mode: storage.ModeNotApplicable,
			Symmetric: []storage.ChecklistItem{
				{ID: "2m_s1", Text: "Monitor edges meet at the center of your field of view", Weight: 2.5, HealthRisk: RiskDualMonitors},
				{ID: "2m_s2", Text: "Same height; top edges at or slightly below eye level", Weight: 2.5, HealthRisk: RiskDualMonitors},
				{ID: "2m_s3", Text: "Tilted 10–20° and angled slightly inward (like book wings)", Weight: 2.5, HealthRisk: RiskDualMonitors},
				{ID: "2m_s4", Text: "Chair centered between the monitors", Weight: 2.5, HealthRisk: RiskDualMonitors},
			},
			Mixed: []storage.ChecklistItem{
				{ID: "2m_m1", Text: "Primary monitor directly in front", Weight: 3.34, HealthRisk: RiskDualMonitors},
				{ID: "2m_m2", Text: "Secondary to the side, angled; no torso twisting", Weight: 3.33, HealthRisk: RiskDualMonitors},
				{ID: "2m_m3", Text: "Secondary monitor side swapped every few days", Weight: 3.33, HealthRisk: RiskDualMonitors},
			},
		},
		{
			ID: 6, Title: "Working with a laptop", Weight: 10, HealthRisk: RiskLaptop, Kind: storage.SectionOptional,
			Applies: false,
			Items: []storage.ChecklistItem{
				{ID: "l1", Text: "Laptop on a stand, with an external keyboard and mouse", Weight: 5, HealthRisk: RiskLaptop},
				{ID: "l2", Text: "Laptop vents are not blocked", Weight: 5, HealthRisk: RiskLaptop},
			},
		},
		{
			ID: 7, Title: "Microbreaks and pro tips", Weight: 10, HealthRisk: RiskMicrobreaks, Kind: storage.SectionRegular,
			Items: []storage.ChecklistItem{
				{ID: "mp1", Text: "Short active breaks every 30–40 minutes", Weight: 3.34, HealthRisk: RiskMicrobreaks},
				{ID: "mp2", Text: "Trash bin placed away from the desk (encourages standing up)", Weight: 3.33, HealthRisk: RiskMicrobreaks},
				{ID: "mp3", Text: "Phone calls without the computer taken standing or walking", Weight: 3.33, HealthRisk: RiskMicrobreaks},
			},
		},
	}
}

// CopySections returns a deep copy, used to freeze audit snapshots.
func CopySections(sections []storage.Section) []storage.Section {
	out := make([]storage.Section, len(sections))
	for i, s := range sections {
		s.Items = copyItems(s.Items)
		s.Symmetric = copyItems(s.Symmetric)
		s.Mixed = copyItems(s.Mixed)
		out[i] = s
	}
	return out
}

func copyItems(items []storage.ChecklistItem) []storage.ChecklistItem {
	if items == nil {
		return nil
	}
	out := make([]storage.ChecklistItem, len(items))
	copy(out, items)
	return out
}

// activeItems returns the items that currently count toward scoring for the
// section, and whether the section is applicable at all.
func activeItems(s *storage.Section) ([]storage.ChecklistItem, bool) {
	switch s.Kind {
	case storage.SectionRegular:
		return s.Items, true
	case storage.SectionModed:
		switch s.Mode {
		case storage.ModeSymmetric:
			return s.Symmetric, true
		case storage.ModeMixed:
			return s.Mixed, true
		default:
			return nil, false
		}
	case storage.SectionOptional:
		if s.Applies {
			return s.Items, true
		}
		return nil, false
	default:
		return nil, false
	}
}

// allItems returns every item list the section owns, applicable or not.
// Used by item lookup so toggling works on inactive variants too.
func allItems(s *storage.Section) []*storage.ChecklistItem {
	var out []*storage.ChecklistItem
	for i := range s.Items {
		out = append(out, &s.Items[i])
	}
	for i := range s.Symmetric {
		out = append(out, &s.Symmetric[i])
	}
	for i := range s.Mixed {
		out = append(out, &s.Mixed[i])
	}
	return out
}

func findSection(sections []storage.Section, id int) *storage.Section {
	for i := range sections {
		if sections[i].ID == id {
			return &sections[i]
		}
	}
	return nil
}

func findItem(sections []storage.Section, itemID string) (*storage.Section, *storage.ChecklistItem) {
	for i := range sections {
		for _, item := range allItems(&sections[i]) {
			if item.ID == itemID {
				return &sections[i], item
			}
		}
	}
	return nil, nil
}
