package storage

import "time"

// SectionKind distinguishes the three checklist section shapes. Exactly one
// shape applies per section; scoring switches on the kind exhaustively.
type SectionKind string

const (
	SectionRegular  SectionKind = "regular"
	SectionModed    SectionKind = "moded"
	SectionOptional SectionKind = "optional"
)

func (k SectionKind) IsValid() bool {
	switch k {
	case SectionRegular, SectionModed, SectionOptional:
		return true
	default:
		return false
	}
}

// DualMode selects the active variant of a moded section.
type DualMode string

const (
	ModeNotApplicable DualMode = "na"
	ModeSymmetric     DualMode = "sym"
	ModeMixed         DualMode = "mixed"
)

func (m DualMode) IsValid() bool {
	switch m {
	case ModeNotApplicable, ModeSymmetric, ModeMixed:
		return true
	default:
		return false
	}
}

// ChecklistItem is a single weighted audit question. Weight must be >= 0 and
// only counts toward the score while the containing section is applicable.
type ChecklistItem struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Checked    bool    `json:"checked"`
	Weight     float64 `json:"weight"`
	HealthRisk string  `json:"healthRisk"`
}

// Section is a checklist section. The Kind tag decides which fields are live:
// regular and optional sections own Items (optional ones gated by Applies),
// moded sections own Symmetric/Mixed variant lists selected by Mode.
type Section struct {
	ID         int         `json:"id"`
	Title      string      `json:"title"`
	Weight     float64     `json:"weight"` // informational; scoring uses item weights
	HealthRisk string      `json:"healthRisk"`
	Kind       SectionKind `json:"kind"`

	Items   []ChecklistItem `json:"items,omitempty"`
	Applies bool            `json:"applies,omitempty"`

	Mode      DualMode        `json:"mode,omitempty"`
	Symmetric []ChecklistItem `json:"symmetric,omitempty"`
	Mixed     []ChecklistItem `json:"mixed,omitempty"`
}

// UncheckedItem tags an unmet item with its source section and risk key.
type UncheckedItem struct {
	Section    string `json:"section"`
	Item       string `json:"item"`
	HealthRisk string `json:"healthRisk"`
}

// AuditResult is an immutable snapshot taken when an audit completes.
// Sections is a frozen deep copy of the checklist as it stood.
type AuditResult struct {
	Date      time.Time       `json:"date"`
	Score     int             `json:"score"`
	Sections  []Section       `json:"sections"`
	Unchecked []UncheckedItem `json:"uncheckedItems"`
}

// ChallengeDay is one entry of the 10-day plan. Awarded stays true once the
// day's points were granted so a later re-completion cannot grant them again.
type ChallengeDay struct {
	Day           int    `json:"day"`
	Title         string `json:"title"`
	Task          string `json:"task"`
	Type          string `json:"type"` // audit | action | exercise | education | habit
	Completed     bool   `json:"completed"`
	CompletedDate string `json:"completedDate,omitempty"` // YYYY-MM-DD, "" = never
	Awarded       bool   `json:"awarded,omitempty"`
}

// BadgeState is the persisted unlock flag for one badge.
type BadgeState struct {
	ID       string `json:"id"`
	Unlocked bool   `json:"unlocked"`
}

// Record is the full per-user state. Every committed mutation overwrites the
// stored copy of the whole record; Version on the row guards lost updates.
type Record struct {
	UserName           string         `json:"userName"`
	Sections           []Section      `json:"auditSections"`
	AuditHistory       []AuditResult  `json:"auditHistory"`
	Plan               []ChallengeDay `json:"plan10Days"`
	CompletedExercises []string       `json:"completedExercises"`
	ReadArticles       []int          `json:"readArticles"`
	Badges             []BadgeState   `json:"badges"`
	Points             int            `json:"points"`
	Streak             int            `json:"streak"`
	LastActivityDate   string         `json:"lastActivityDate,omitempty"` // YYYY-MM-DD
	QuizCompleted      bool           `json:"quizCompleted"`
	QuizBonusAwarded   bool           `json:"quizBonusAwarded"`
}

// Badge returns the state entry for id, or nil if the record does not know it.
func (r *Record) Badge(id string) *BadgeState {
	for i := range r.Badges {
		if r.Badges[i].ID == id {
			return &r.Badges[i]
		}
	}
	return nil
}

// CompletedDays counts the challenge days marked complete.
func (r *Record) CompletedDays() int {
	n := 0
	for i := range r.Plan {
		if r.Plan[i].Completed {
			n++
		}
	}
	return n
}
