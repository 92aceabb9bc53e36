package entity

import (
	"fmt"
	"strings"
)

type ItemFailure struct {
	Index    int
	Filename string
	Message  string
}

func (f ItemFailure) String() string {
	return fmt.Sprintf("%s: %s", f.Filename, f.Message)
}

// BatchReport counts attempted and successful images of one request.
type BatchReport struct {
	Total     int
	Processed int
	Failures  []ItemFailure
}

func NewBatchReport(total int) *BatchReport {
	return &BatchReport{Total: total}
}

func (r *BatchReport) RecordSuccess() {
	r.Processed++
}

func (r *BatchReport) RecordFailure(index int, filename string, err error) {
	r.Failures = append(r.Failures, ItemFailure{
		Index:    index,
		Filename: filename,
		Message:  err.Error(),
	})
}

func (r *BatchReport) HasFailures() bool {
	return len(r.Failures) > 0
}

// Text renders the report entry stored alongside the archived photos.
func (r *BatchReport) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Procesadas: %d/%d\n", r.Processed, r.Total)
	if r.HasFailures() {
		b.WriteString("\nErrores:\n")
		for i, f := range r.Failures {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(f.String())
		}
	}
	return b.String()
}

// ErrorSummary joins at most limit failure messages.
func (r *BatchReport) ErrorSummary(limit int) string {
	n := len(r.Failures)
	if limit > 0 && n > limit {
		n = limit
	}
	msgs := make([]string, 0, n)
	for _, f := range r.Failures[:n] {
		msgs = append(msgs, f.String())
	}
	return strings.Join(msgs, "; ")
}
