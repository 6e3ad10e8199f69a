package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/readiness/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		DisableColor()
	}
}

// DisableColor turns off ANSI styling for all subsequent output.
func DisableColor() {
	green, red, yellow, cyan, reset = "", "", "", "", ""
}

func colorFor(s check.Status) string {
	switch s {
	case check.StatusOK:
		return green
	case check.StatusFail:
		return red
	case check.StatusWarn, check.StatusSkip:
		return yellow
	default:
		return cyan
	}
}

// PrintResult outputs a check result as "[STATUS] name - detail".
// Details after the first are printed on their own lines, aligned under the name.
func PrintResult(w io.Writer, r check.Result) {
	tag := "[" + string(r.Status) + "]"
	line := fmt.Sprintf("%s%s%s %s", colorFor(r.Status), tag, reset, r.Name)
	if len(r.Details) > 0 {
		line += " - " + r.Details[0]
	}
	_, _ = fmt.Fprintln(w, line)

	indent := strings.Repeat(" ", len(tag)+1)
	for _, d := range r.Details[min(1, len(r.Details)):] {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, d)
	}
}

// PrintBanner outputs a section header.
func PrintBanner(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "%s=== %s ===%s\n", cyan, title, reset)
}

// PrintVerdict outputs the final aggregate verdict block.
func PrintVerdict(w io.Writer, ready bool) {
	_, _ = fmt.Fprintln(w)
	if ready {
		_, _ = fmt.Fprintf(w, "%sOverall readiness: PASS%s\n", green, reset)
		_, _ = fmt.Fprintln(w, "This machine is ready to run the workload.")
		return
	}
	_, _ = fmt.Fprintf(w, "%sOverall readiness: FAIL%s\n", red, reset)
	_, _ = fmt.Fprintln(w, "Review the [FAIL] lines above and fix them before continuing.")
}
