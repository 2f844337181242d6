package convert

import "time"

// Format identifies a derivative encoding.
type Format string

// Derivative formats, in per-group pass order.
const (
	FormatWebP Format = "webp"
	FormatAVIF Format = "avif"
)

// Outcome records a single encoder invocation against a single source file.
type Outcome struct {
	Source   string
	Output   string
	Format   Format
	Duration time.Duration
	Err      error
}

// Result aggregates a batch run.
type Result struct {
	RunID      string
	Directory  string
	StartedAt  time.Time
	FinishedAt time.Time
	Outcomes   []Outcome
}

// Failed counts outcomes whose encoder invocation returned an error.
func (r *Result) Failed() int {
	failed := 0
	for _, outcome := range r.Outcomes {
		if outcome.Err != nil {
			failed++
		}
	}
	return failed
}

// Succeeded counts outcomes that completed without error.
func (r *Result) Succeeded() int {
	return len(r.Outcomes) - r.Failed()
}
