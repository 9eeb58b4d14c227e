package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/planszokwariat/ERGONOMIA7/internal/engine"
	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
	"github.com/planszokwariat/ERGONOMIA7/internal/ui"
)

type auditModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	selected int
	lastLog  string
	done     bool
}

type mutatedMsg struct {
	log string
	err error
}

type auditDoneMsg struct {
	result *storage.AuditResult
	events []engine.Event
	err    error
}

func newAuditModel(ctx context.Context, svc *engine.Service) auditModel {
	return auditModel{ctx: ctx, svc: svc, lastLog: "Space toggles, m cycles modes, c completes the audit."}
}

func (m auditModel) Init() tea.Cmd {
	return nil
}

func (m auditModel) toggleCmd(itemID string) tea.Cmd {
	return func() tea.Msg {
		checked, _, err := m.svc.ToggleItem(m.ctx, itemID)
		if err != nil {
			return mutatedMsg{err: err}
		}
		state := "unchecked"
		if checked {
			state = "checked"
		}
		return mutatedMsg{log: fmt.Sprintf("%s %s", itemID, state)}
	}
}

func (m auditModel) cycleModeCmd(sec *storage.Section) tea.Cmd {
	var next storage.DualMode
	switch sec.Mode {
	case storage.ModeNotApplicable:
		next = storage.ModeSymmetric
	case storage.ModeSymmetric:
		next = storage.ModeMixed
	default:
		next = storage.ModeNotApplicable
	}
	id := sec.ID
	return func() tea.Msg {
		if _, err := m.svc.SetSectionMode(m.ctx, id, next); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{log: fmt.Sprintf("section %d mode → %s", id, next)}
	}
}

func (m auditModel) toggleAppliesCmd(sec *storage.Section) tea.Cmd {
	id, next := sec.ID, !sec.Applies
	return func() tea.Msg {
		if _, err := m.svc.SetSectionApplies(m.ctx, id, next); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{log: fmt.Sprintf("section %d applies → %v", id, next)}
	}
}

func (m auditModel) completeCmd() tea.Cmd {
	return func() tea.Msg {
		result, events, err := m.svc.CompleteAudit(m.ctx)
		return auditDoneMsg{result: result, events: events, err: err}
	}
}

func (m auditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case mutatedMsg:
		if msg.err != nil {
			m.lastLog = "Error: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = msg.log
		return m, nil
	case auditDoneMsg:
		if msg.err != nil {
			m.lastLog = "Audit failed: " + msg.err.Error()
			return m, nil
		}
		m.lastLog = fmt.Sprintf("Audit complete: %d%%. %s", msg.result.Score, renderEventLog(msg.events))
		m.done = true
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if lines := m.auditLines(); m.selected < len(lines)-1 {
				m.selected++
			}
			return m, nil
		case " ", "enter":
			lines := m.auditLines()
			if m.selected < 0 || m.selected >= len(lines) {
				return m, nil
			}
			line := lines[m.selected]
			if line.itemID != "" {
				return m, m.toggleCmd(line.itemID)
			}
			if sec := line.section; sec != nil {
				switch sec.Kind {
				case storage.SectionModed:
					return m, m.cycleModeCmd(sec)
				case storage.SectionOptional:
					return m, m.toggleAppliesCmd(sec)
				}
			}
			return m, nil
		case "m":
			lines := m.auditLines()
			if m.selected >= 0 && m.selected < len(lines) {
				if sec := lines[m.selected].section; sec != nil && sec.Kind == storage.SectionModed {
					return m, m.cycleModeCmd(sec)
				}
			}
			return m, nil
		case "c":
			return m, m.completeCmd()
		}
	}
	return m, nil
}

type auditLine struct {
	section *storage.Section
	itemID  string
	text    string
	checked bool
	dim     bool
}

func (m auditModel) auditLines() []auditLine {
	sections := m.svc.Sections()

	var out []auditLine
	for i := range sections {
		sec := &sections[i]
		header := auditLine{section: sec, text: sec.Title}
		out = append(out, header)

		appendItems := func(items []storage.ChecklistItem, dim bool) {
			for _, it := range items {
				out = append(out, auditLine{itemID: it.ID, text: it.Text, checked: it.Checked, dim: dim})
			}
		}

		switch sec.Kind {
		case storage.SectionRegular:
			appendItems(sec.Items, false)
		case storage.SectionModed:
			switch sec.Mode {
			case storage.ModeSymmetric:
				appendItems(sec.Symmetric, false)
			case storage.ModeMixed:
				appendItems(sec.Mixed, false)
			}
		case storage.SectionOptional:
			appendItems(sec.Items, !sec.Applies)
		}
	}
	return out
}

func (m auditModel) View() string {
	header := m.renderHeader()
	checklist := m.renderChecklist()
	findings := m.renderFindings()

	leftW := 64
	if m.width > 0 && m.width/2 < leftW {
		leftW = m.width / 2
	}
	if leftW < 30 {
		leftW = 30
	}

	linesLeft := strings.Split(checklist, "\n")
	linesRight := strings.Split(findings, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l, r := "", ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + "\n" + m.lastLog
}

func (m auditModel) renderHeader() string {
	res := m.svc.LiveScore()
	rec := m.svc.Record()
	level := engine.LevelForPoints(rec.Points)
	return fmt.Sprintf("ERGONOMIA7 | Live score %s | %d pts (%s) | streak %d",
		ui.ScoreText(res.Score), rec.Points, level.Name, rec.Streak)
}

func (m auditModel) renderChecklist() string {
	var out []string
	for i, line := range m.auditLines() {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		if line.section != nil {
			sec := line.section
			label := sec.Title
			switch sec.Kind {
			case storage.SectionModed:
				label += fmt.Sprintf(" (mode: %s)", sec.Mode)
			case storage.SectionOptional:
				if sec.Applies {
					label += " (applies)"
				} else {
					label += " (not applicable)"
				}
			}
			out = append(out, cursor+ui.H2.Render(label))
			continue
		}
		text := line.text
		if line.dim {
			text = ui.Muted.Render(text)
		}
		row := fmt.Sprintf("%s  %s %s", cursor, ui.CheckMark(line.checked), text)
		if i == m.selected {
			row = ui.SelectedRow.Render(row)
		}
		out = append(out, row)
	}
	return strings.Join(out, "\n")
}

func (m auditModel) renderFindings() string {
	findings := m.svc.LiveFindings()
	out := []string{ui.H2.Render("Findings")}
	if len(findings) == 0 {
		out = append(out, ui.Good.Render("All applicable items in order."))
	}
	for _, f := range findings {
		out = append(out, fmt.Sprintf("%s %s (%d)", ui.UrgencyText(string(f.Urgency)), f.Name, f.Count))
		for _, action := range f.ActionItems {
			out = append(out, ui.Muted.Render("  - "+action))
		}
	}
	out = append(out, "")
	out = append(out, ui.Muted.Render("Keys: j/k move · space toggle · m mode · c complete · q quit"))
	return strings.Join(out, "\n")
}

func renderEventLog(events []engine.Event) string {
	var parts []string
	for _, ev := range events {
		switch ev := ev.(type) {
		case engine.PointsAwarded:
			parts = append(parts, fmt.Sprintf("+%d pts", ev.Amount))
		case engine.BadgeUnlocked:
			parts = append(parts, "badge: "+ev.Badge.Name)
		case engine.LevelUp:
			parts = append(parts, "level up: "+ev.To.Name)
		case engine.TierUnlocked:
			parts = append(parts, "Platinum unlocked")
		case engine.SaveFailed:
			parts = append(parts, "progress not saved")
		}
	}
	return strings.Join(parts, ", ")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
