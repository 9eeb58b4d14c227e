package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ERGONOMIA7 theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconDesk    = "🪑"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconFire    = "🔥"
	IconBook    = "📖"
	IconMuscle  = "💪"
	IconBrain   = "🧠"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconLock    = "🔒"
	IconChart   = "📊"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	SelectedRow = lipgloss.NewStyle().Bold(true).Foreground(cGold)
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// UrgencyText colors an urgency label.
func UrgencyText(urgency string) string {
	switch strings.ToLower(strings.TrimSpace(urgency)) {
	case "critical":
		return Bad.Render("critical")
	case "high":
		return Warn.Render("high")
	default:
		return Muted.Render("medium")
	}
}

// ScoreText colors a 0–100 audit score.
func ScoreText(score int) string {
	s := fmt.Sprintf("%d%%", score)
	switch {
	case score >= 85:
		return Good.Render(s)
	case score >= 60:
		return Warn.Render(s)
	default:
		return Bad.Render(s)
	}
}

func CheckMark(checked bool) string {
	if checked {
		return Good.Render("[x]")
	}
	return Muted.Render("[ ]")
}
