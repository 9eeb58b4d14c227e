package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/planszokwariat/ERGONOMIA7/internal/storage"
)

// BuildReport renders an audit result as a plaintext report: score, date,
// and the ranked findings with their recommended actions.
func BuildReport(result *storage.AuditResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "WORKSTATION ERGONOMICS AUDIT\n")
	fmt.Fprintf(&b, "Date: %s\n", result.Date.Format(time.RFC3339))
	fmt.Fprintf(&b, "Score: %d%%\n\n", result.Score)

	findings := Findings(result.Unchecked)
	if len(findings) == 0 {
		b.WriteString("No issues found. Every applicable item is in order.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Findings (%d unmet items):\n\n", len(result.Unchecked))
	for i, f := range findings {
		fmt.Fprintf(&b, "%d. [%s] %s — %d item(s)\n", i+1, strings.ToUpper(string(f.Urgency)), f.Name, f.Count)
		for _, action := range f.ActionItems {
			fmt.Fprintf(&b, "   - %s\n", action)
		}
		b.WriteString("\n")
	}

	b.WriteString("Unmet items:\n")
	for _, u := range result.Unchecked {
		fmt.Fprintf(&b, "- [%s] %s\n", u.Section, u.Item)
	}
	return b.String()
}
