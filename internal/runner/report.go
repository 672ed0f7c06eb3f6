package runner

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/andyballingall/curvecheck/internal/curve"
)

// Result is the outcome of validating one document file.
type Result struct {
	Path string
	// Class is the document class the file was validated as, or "" when it could not be told.
	Class curve.Class
	Err   error
}

// Passed reports whether the document was valid.
func (r Result) Passed() bool {
	return r.Err == nil
}

// Report collects the results of a validation run. It is safe for concurrent use.
type Report struct {
	mu sync.Mutex

	// ID identifies the run in the log file and in JSON reports.
	ID        string
	StartTime time.Time
	EndTime   time.Time

	results []Result
}

// NewReport creates an empty Report with a fresh run ID.
func NewReport() *Report {
	return &Report{ID: uuid.NewString()}
}

// Add records a result.
func (r *Report) Add(res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

// Results returns the recorded results sorted by path.
func (r *Report) Results() []Result {
	r.mu.Lock()
	out := slices.Clone(r.results)
	r.mu.Unlock()

	slices.SortFunc(out, func(a, b Result) int {
		return strings.Compare(a.Path, b.Path)
	})
	return out
}

// Counts returns the number of passed and failed results.
func (r *Report) Counts() (passed, failed int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, res := range r.results {
		if res.Passed() {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// Failed reports whether any document failed validation.
func (r *Report) Failed() bool {
	_, failed := r.Counts()
	return failed > 0
}

// Duration is the wall time of the run.
func (r *Report) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
