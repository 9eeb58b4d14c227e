package engine

import (
	"sort"

	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
)

// IssueStat counts the unmet items of one health-risk category.
type IssueStat struct {
	Urgency Urgency
	Count   int
}

// RankedIssue is one entry of the ordered findings view.
type RankedIssue struct {
	RiskKey string
	Urgency Urgency
	Count   int
}

// Finding joins a ranked issue with its catalog entry for presentation.
type Finding struct {
	RiskKey     string
	Urgency     Urgency
	Count       int
	Name        string
	Effects     []string
	ActionItems []string
}

// Aggregate groups unchecked items by health-risk category. It is derived
// purely from its input and can be recomputed at any time.
func Aggregate(unchecked []storage.UncheckedItem) map[string]IssueStat {
	catalog := RiskCatalog()
	issues := make(map[string]IssueStat)
	for _, u := range unchecked {
		if u.HealthRisk == "" {
			continue
		}
		stat, ok := issues[u.HealthRisk]
		if !ok {
			stat = IssueStat{Urgency: riskUrgency(catalog, u.HealthRisk)}
		}
		stat.Count++
		issues[u.HealthRisk] = stat
	}
	return issues
}

// Rank orders the aggregated issues by urgency (critical first), breaking
// ties by descending count and then by key for a stable order.
func Rank(issues map[string]IssueStat) []RankedIssue {
	out := make([]RankedIssue, 0, len(issues))
	for key, stat := range issues {
		out = append(out, RankedIssue{RiskKey: key, Urgency: stat.Urgency, Count: stat.Count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Urgency.Rank() != out[j].Urgency.Rank() {
			return out[i].Urgency.Rank() < out[j].Urgency.Rank()
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].RiskKey < out[j].RiskKey
	})
	return out
}

// Findings builds the presentation-ready findings list for a set of
// unchecked items: aggregated, ranked and joined against the risk catalog.
func Findings(unchecked []storage.UncheckedItem) []Finding {
	catalog := RiskCatalog()
	ranked := Rank(Aggregate(unchecked))

	out := make([]Finding, 0, len(ranked))
	for _, r := range ranked {
		f := Finding{RiskKey: r.RiskKey, Urgency: r.Urgency, Count: r.Count, Name: r.RiskKey}
		if entry, ok := catalog[r.RiskKey]; ok {
			f.Name = entry.Name
			f.Effects = entry.Effects
			f.ActionItems = entry.ActionItems
		}
		out = append(out, f)
	}
	return out
}
