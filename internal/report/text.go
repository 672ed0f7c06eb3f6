package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/andyballingall/curvecheck/internal/runner"
	"github.com/andyballingall/curvecheck/internal/schema"
)

// TextReporter implements Reporter for plain text output.
type TextReporter struct {
	Verbose   bool
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colWhite     = "\033[37m"
	colBoldRed   = "\033[1;31m"
	colBoldGreen = "\033[1;32m"
	colBoldWhite = "\033[1;37m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, r *runner.Report) error {
	divider := strings.Repeat("-", 40)

	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprint(w, tr.cs(colBoldWhite, "CURVECHECK REPORT\n\n"))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Started: "), tr.cs(colWhite, r.StartTime.Format("15:04:05")))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Duration:"), tr.cs(colWhite, r.Duration().String()))
	fmt.Fprintf(w, "%s\n", divider)

	totalPassed, totalFailed := 0, 0

	for _, res := range r.Results() {
		if res.Passed() {
			totalPassed++
			if tr.Verbose {
				fmt.Fprintf(w, "%s %s %s\n",
					tr.cs(colGreen, "[PASS]"), tr.cs(colWhite, res.Path), tr.cs(colGrey, classLabel(res)))
			}
			continue
		}

		totalFailed++
		fmt.Fprintf(w, "%s %s %s\n",
			tr.cs(colRed, "[FAIL]"), tr.cs(colRed, res.Path), tr.cs(colGrey, classLabel(res)))
		for depth, link := range schema.Chain(res.Err) {
			indent := strings.Repeat("  ", depth+1)
			if tr.Verbose {
				fmt.Fprintf(w, "%s%s %s\n", indent, tr.cs(colGrey, link.Kind+":"), link.Message)
			} else {
				fmt.Fprintf(w, "%s%s\n", indent, link.Message)
			}
		}
	}

	fmt.Fprintf(w, "%s\n", divider)
	summaryLabel := tr.cs(colBoldWhite, "Validation summary: ")
	summaryStats := fmt.Sprintf("%d passed, %d failed", totalPassed, totalFailed)
	statsColor := colBoldGreen
	if totalFailed > 0 {
		statsColor = colBoldRed
	}
	fmt.Fprintf(w, "%s%s\n", summaryLabel, tr.cs(statsColor, summaryStats))
	fmt.Fprintf(w, "%s\n", divider)

	return nil
}

func classLabel(res runner.Result) string {
	if res.Class == "" {
		return "(unknown)"
	}
	return "(" + string(res.Class) + ")"
}
