package component

import (
	"bytes"
	"context"
	"io"
	"sort"
	"time"

	"github.com/thoreinstein/motd/internal/logging"
	"github.com/thoreinstein/motd/internal/ordered"
	"github.com/thoreinstein/motd/internal/section"
)

// Status is the outcome of rendering one section.
type Status int

const (
	// StatusRendered indicates the section was written.
	StatusRendered Status = iota

	// StatusFailed indicates the section produced an error and wrote nothing.
	StatusFailed
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusRendered:
		return "rendered"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one section.
type Result struct {
	Kind     section.Kind
	Section  string
	Position int
	Status   Status
	Err      error
	Message  string
	Duration time.Duration
}

// Summary counts results by status.
type Summary struct {
	Rendered int
	Failed   int
}

// Report aggregates one dashboard render.
type Report struct {
	Results []*Result
	Summary Summary
}

// HasFailures returns true if any section failed.
func (r *Report) HasFailures() bool {
	return r.Summary.Failed > 0
}

// Failed returns the failed results in render order.
func (r *Report) Failed() []*Result {
	var out []*Result
	for _, res := range r.Results {
		if res.Status == StatusFailed {
			out = append(out, res)
		}
	}
	return out
}

// Runner renders sections in position order.
type Runner struct {
	env      *Env
	sections []ordered.Section
}

// NewRunner creates a runner that renders with env.
func NewRunner(env *Env) *Runner {
	return &Runner{
		env:      env,
		sections: make([]ordered.Section, 0),
	}
}

// Add registers sections with the runner.
func (r *Runner) Add(sections ...ordered.Section) {
	r.sections = append(r.sections, sections...)
}

// Run renders every registered section to w, separated by blank lines.
// Each section is buffered so a failure leaves no partial output.
func (r *Runner) Run(ctx context.Context, w io.Writer) *Report {
	logger := logging.FromContext(ctx)

	sections := append([]ordered.Section(nil), r.sections...)
	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].Position < sections[j].Position
	})

	report := &Report{Results: make([]*Result, 0, len(sections))}
	wrote := false
	for _, s := range sections {
		res := &Result{Kind: s.Kind, Section: s.Kind.String(), Position: s.Position}
		report.Results = append(report.Results, res)

		var buf bytes.Buffer
		start := time.Now()
		err := Render(ctx, &buf, r.env, s.Value)
		res.Duration = time.Since(start)

		if err != nil {
			res.Status = StatusFailed
			res.Err = err
			res.Message = err.Error()
			report.Summary.Failed++
			logger.Error("section failed", "section", res.Section, "position", res.Position, "error", err)
			continue
		}

		res.Status = StatusRendered
		report.Summary.Rendered++
		logger.Debug("section rendered", "section", res.Section, "position", res.Position, "duration", res.Duration)

		if buf.Len() == 0 {
			continue
		}
		if wrote {
			_, _ = io.WriteString(w, "\n")
		}
		_, _ = buf.WriteTo(w)
		wrote = true
	}
	return report
}
