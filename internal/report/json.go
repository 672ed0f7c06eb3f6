package report

import (
	"io"
	"time"

	"github.com/goccy/go-json"

	"github.com/andyballingall/curvecheck/internal/runner"
	"github.com/andyballingall/curvecheck/internal/schema"
)

// JSONReporter implements Reporter for JSON output.
type JSONReporter struct{}

type jsonResult struct {
	Path   string        `json:"path"`
	Class  string        `json:"class,omitempty"`
	Passed bool          `json:"passed"`
	Kind   string        `json:"kind,omitempty"`
	Error  string        `json:"error,omitempty"`
	Chain  []schema.Link `json:"chain,omitempty"`
}

type jsonOutput struct {
	RunID     string `json:"runId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  string `json:"duration"`
	Stats     struct {
		TotalPassed int `json:"totalPassed"`
		TotalFailed int `json:"totalFailed"`
	} `json:"stats"`
	Results []jsonResult `json:"results"`
}

func (jr *JSONReporter) Write(w io.Writer, r *runner.Report) error {
	results := r.Results()
	out := jsonOutput{
		RunID:     r.ID,
		StartTime: r.StartTime.Format(time.RFC3339),
		EndTime:   r.EndTime.Format(time.RFC3339),
		Duration:  r.Duration().String(),
		Results:   make([]jsonResult, 0, len(results)),
	}

	for _, res := range results {
		entry := jsonResult{
			Path:   res.Path,
			Class:  string(res.Class),
			Passed: res.Passed(),
		}
		if res.Err != nil {
			entry.Kind = schema.KindOf(res.Err)
			entry.Error = res.Err.Error()
			entry.Chain = schema.Chain(res.Err)
			out.Stats.TotalFailed++
		} else {
			out.Stats.TotalPassed++
		}
		out.Results = append(out.Results, entry)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
