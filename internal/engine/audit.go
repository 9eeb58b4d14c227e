package engine

import (
	"context"
	"fmt"

	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
)

// Sections exposes the live checklist for rendering.
func (s *Service) Sections() []storage.Section { return s.rec.Sections }

// ToggleItem flips one checklist item and persists the checklist. Items in
// inactive variants can be toggled too; they just do not count until their
// variant is active. Returns the new checked state.
func (s *Service) ToggleItem(ctx context.Context, itemID string) (bool, []Event, error) {
	_, item := findItem(s.rec.Sections, itemID)
	if item == nil {
		return false, nil, fmt.Errorf("unknown checklist item: %s", itemID)
	}
	item.Checked = !item.Checked
	return item.Checked, s.persist(ctx), nil
}

// SetSectionMode switches the active variant of a moded section.
func (s *Service) SetSectionMode(ctx context.Context, sectionID int, mode storage.DualMode) ([]Event, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("invalid mode: %s", mode)
	}
	sec := findSection(s.rec.Sections, sectionID)
	if sec == nil {
		return nil, fmt.Errorf("unknown section: %d", sectionID)
	}
	if sec.Kind != storage.SectionModed {
		return nil, fmt.Errorf("section %d has no mode selector", sectionID)
	}
	sec.Mode = mode
	return s.persist(ctx), nil
}

// SetSectionApplies toggles an optional section on or off.
func (s *Service) SetSectionApplies(ctx context.Context, sectionID int, applies bool) ([]Event, error) {
	sec := findSection(s.rec.Sections, sectionID)
	if sec == nil {
		return nil, fmt.Errorf("unknown section: %d", sectionID)
	}
	if sec.Kind != storage.SectionOptional {
		return nil, fmt.Errorf("section %d has no applies toggle", sectionID)
	}
	sec.Applies = applies
	return s.persist(ctx), nil
}

// ReplaceChecklist swaps in a custom checklist (e.g. loaded from YAML) and
// persists it. The audit history keeps its frozen snapshots of the old one.
func (s *Service) ReplaceChecklist(ctx context.Context, sections []storage.Section) ([]Event, error) {
	if err := ValidateSections(sections); err != nil {
		return nil, err
	}
	s.rec.Sections = sections
	return s.persist(ctx), nil
}

// LiveScore scores the checklist as it currently stands.
func (s *Service) LiveScore() ScoreResult {
	return ComputeScore(s.rec.Sections)
}

// LiveFindings is the continuously-updating findings view: ranked unmet
// risks derived purely from the current checklist state.
func (s *Service) LiveFindings() []Finding {
	return Findings(ComputeScore(s.rec.Sections).Unchecked)
}

// CompleteAudit scores the live checklist, freezes the result into the
// append-only history, runs the audit badge checks and grants the completion
// points.
//
// Badge rules: the first audit always counts; from the second audit on, a
// score at least 30% above the first audit's earns the transformation badge
// (a zero first score qualifies once the new score clears 30); a re-audit at
// 85+ with all ten challenge days done earns the legend badge.
func (s *Service) CompleteAudit(ctx context.Context) (*storage.AuditResult, []Event, error) {
	res := ComputeScore(s.rec.Sections)

	result := storage.AuditResult{
		Date:      s.now().UTC(),
		Score:     res.Score,
		Sections:  CopySections(s.rec.Sections),
		Unchecked: res.Unchecked,
	}
	s.rec.AuditHistory = append(s.rec.AuditHistory, result)

	events, err := s.unlockBadge(BadgeFirstAudit)
	if err != nil {
		return nil, nil, err
	}

	if len(s.rec.AuditHistory) > 1 {
		firstScore := s.rec.AuditHistory[0].Score
		qualifies := false
		if firstScore > 0 {
			improvement := float64(res.Score-firstScore) / float64(firstScore) * 100
			qualifies = improvement >= 30
		} else {
			qualifies = res.Score > 30
		}
		if qualifies {
			ev, err := s.unlockBadge(BadgeTransformation)
			if err != nil {
				return nil, nil, err
			}
			events = append(events, ev...)
		}
	}

	if s.rec.CompletedDays() >= PlanLength && res.Score >= 85 {
		ev, err := s.unlockBadge(BadgeLegend)
		if err != nil {
			return nil, nil, err
		}
		events = append(events, ev...)
	}

	pts, err := s.awardPoints(50)
	if err != nil {
		return nil, nil, err
	}
	events = append(events, pts...)

	return &result, append(events, s.persist(ctx)...), nil
}
