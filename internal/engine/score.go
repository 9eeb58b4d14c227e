package engine

import (
	"math"

	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
)

// ScoreResult is the outcome of one scoring pass.
type ScoreResult struct {
	Score     int
	Unchecked []storage.UncheckedItem
}

// ComputeScore walks the checklist and produces the 0–100 compliance score
// plus the applicable items that are still unchecked. Inapplicable sections
// and variants contribute to neither side of the ratio. A checklist with no
// applicable items scores 100 (vacuous full compliance). Pure function.
func ComputeScore(sections []storage.Section) ScoreResult {
	var totalWeight, achievedWeight float64
	var unchecked []storage.UncheckedItem

	for i := range sections {
		items, applicable := activeItems(&sections[i])
		if !applicable {
			continue
		}
		for _, item := range items {
			totalWeight += item.Weight
			if item.Checked {
				achievedWeight += item.Weight
			} else {
				unchecked = append(unchecked, storage.UncheckedItem{
					Section:    sections[i].Title,
					Item:       item.Text,
					HealthRisk: item.HealthRisk,
				})
			}
		}
	}

	score := 100
	if totalWeight > 0 {
		score = int(math.Round(achievedWeight / totalWeight * 100))
	}
	return ScoreResult{Score: score, Unchecked: unchecked}
}
