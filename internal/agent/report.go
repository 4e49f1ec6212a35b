package agent

import (
	"fmt"
	"strings"
	"time"
)

const reportDivider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// renderReport produces the human-facing wrapper around canonical test-case
// text. The timestamp is the only non-deterministic input and is injected by
// the caller.
func renderReport(prof profile, body string, ts time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", prof.reportHeader, reportDivider)
	fmt.Fprintf(&b, "Source: Text Requirements\n")
	fmt.Fprintf(&b, "Test Type: %s\n", prof.testTypeName)
	fmt.Fprintf(&b, "Generated: %s\n\n", ts.Format("2006-01-02 15:04:05"))
	b.WriteString(body)
	fmt.Fprintf(&b, "\n\n%s\n", reportDivider)
	b.WriteString("Enforcement: English only, asterisks removed\n")
	b.WriteString("Ready for export/use")
	return b.String()
}
